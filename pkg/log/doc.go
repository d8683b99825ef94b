// Package log provides structured event logging for the LLDP watcher.
//
// This package defines the Logger interface and Event types for capturing
// watcher activity: session state transitions, neighbor changes, and log
// lines forwarded from the discovery backend. It is separate from
// operational logging (slog) - event capture provides a complete
// machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	w.SetEventLogger(log.NewSlogAdapter(slog.Default()))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/lldpy/events.cbor")
//	w.SetEventLogger(fl)
//
//	// Both: use MultiLogger
//	w.SetEventLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fl,
//	))
//
// # Severities
//
// Backend log lines carry the daemon's numeric severity scheme;
// SeverityFromCode maps it onto {error, warning, info, debug}.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events; Reader iterates a
// capture file with optional filtering, and cmd/lldplog analyzes one.
package log
