// Package commands implements the lldplog CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jta/lldpy/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	Severity  *log.Severity
	SessionID string
	Interface string
}

// RunView reads the log file and prints matching events in human-readable
// format.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		SessionID: filter.SessionID,
		Category:  filter.Category,
		Severity:  filter.Severity,
		Interface: filter.Interface,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] SEVERITY CATEGORY
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sid := shortenSessionID(event.SessionID)

	fmt.Fprintf(w, "%s [session:%s] %-7s %s\n", ts, sid, event.Severity.String(), event.Category.String())

	// Type-specific details
	switch {
	case event.State != nil:
		formatStateDetails(w, event.State)
	case event.Change != nil:
		formatChangeDetails(w, event.Change)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	if event.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", event.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatStateDetails writes state-transition details.
func formatStateDetails(w io.Writer, state *log.StateChangeEvent) {
	if state.OldState != "" {
		fmt.Fprintf(w, "  Transition: %s -> %s\n", state.OldState, state.NewState)
	} else {
		fmt.Fprintf(w, "  State: %s\n", state.NewState)
	}
	if state.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", state.Reason)
	}
}

// formatChangeDetails writes neighbor-change details.
func formatChangeDetails(w io.Writer, change *log.ChangeEvent) {
	fmt.Fprintf(w, "  Change: %s\n", change.Kind)
	if change.Interface != "" {
		fmt.Fprintf(w, "  Interface: %s\n", change.Interface)
	}
	if change.ChassisName != "" {
		fmt.Fprintf(w, "  Chassis: %s\n", change.ChassisName)
	}
	if change.PortID != "" {
		fmt.Fprintf(w, "  Port: %s\n", change.PortID)
	}
}

// formatErrorDetails writes backend-error details.
func formatErrorDetails(w io.Writer, errData *log.ErrorEventData) {
	if errData.Code != 0 {
		fmt.Fprintf(w, "  Code: %d\n", errData.Code)
	}
	if errData.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", errData.Context)
	}
}

// ParseCategoryFlag parses a category name from the command line.
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "change":
		return log.CategoryChange, nil
	case "backend":
		return log.CategoryBackend, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (supported: state, change, backend, error)", s)
	}
}

// ParseSeverityFlag parses a severity name from the command line.
func ParseSeverityFlag(s string) (log.Severity, error) {
	switch strings.ToLower(s) {
	case "error":
		return log.SeverityError, nil
	case "warning":
		return log.SeverityWarning, nil
	case "info":
		return log.SeverityInfo, nil
	case "debug":
		return log.SeverityDebug, nil
	default:
		return 0, fmt.Errorf("unknown severity: %s (supported: error, warning, info, debug)", s)
	}
}
