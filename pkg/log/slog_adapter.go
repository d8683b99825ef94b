package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes watcher events to an slog.Logger.
// Useful for development when you want to see events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger, at the level matching the
// event's severity.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("category", event.Category.String()),
	}

	if event.SessionID != "" {
		attrs = append(attrs, slog.String("session_id", event.SessionID))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("message", event.Message))
	}

	// Add type-specific attributes
	switch {
	case event.State != nil:
		attrs = append(attrs,
			slog.String("old_state", event.State.OldState),
			slog.String("new_state", event.State.NewState),
		)
		if event.State.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.State.Reason))
		}
	case event.Change != nil:
		attrs = append(attrs, slog.String("kind", event.Change.Kind))
		if event.Change.Interface != "" {
			attrs = append(attrs, slog.String("interface", event.Change.Interface))
		}
		if event.Change.ChassisName != "" {
			attrs = append(attrs, slog.String("chassis_name", event.Change.ChassisName))
		}
		if event.Change.PortID != "" {
			attrs = append(attrs, slog.String("port_id", event.Change.PortID))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.Int("error_code", event.Error.Code))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slogLevel(event.Severity), "lldp", attrs...)
}

// slogLevel maps an event severity to an slog level.
func slogLevel(s Severity) slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
