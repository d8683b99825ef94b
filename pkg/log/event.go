package log

import "time"

// Event represents one watcher log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the backend session (UUID). A fresh
	// ID is assigned on every (re)connect.
	SessionID string `cbor:"2,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Severity of the event.
	Severity Severity `cbor:"4,keyasint"`

	// Message is free-form text; for backend events it is the daemon's
	// log line verbatim.
	Message string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (at most one of these is set).
	State  *StateChangeEvent `cbor:"6,keyasint,omitempty"` // watcher state transitions
	Change *ChangeEvent      `cbor:"7,keyasint,omitempty"` // neighbor changes
	Error  *ErrorEventData   `cbor:"8,keyasint,omitempty"` // backend errors
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryState indicates a watcher state transition.
	CategoryState Category = 0
	// CategoryChange indicates a neighbor change notification.
	CategoryChange Category = 1
	// CategoryBackend indicates a log line forwarded from the backend.
	CategoryBackend Category = 2
	// CategoryError indicates a backend failure observed by the watcher.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryChange:
		return "CHANGE"
	case CategoryBackend:
		return "BACKEND"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Severity grades an event.
type Severity uint8

const (
	// SeverityError indicates a failure.
	SeverityError Severity = 0
	// SeverityWarning indicates a recoverable problem.
	SeverityWarning Severity = 1
	// SeverityInfo indicates normal operation.
	SeverityInfo Severity = 2
	// SeverityDebug indicates diagnostic detail.
	SeverityDebug Severity = 3
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// SeverityFromCode maps the backend's numeric log severities onto Severity:
// 5 is info, 4 is warning, anything lower is an error, anything higher is
// debug detail.
func SeverityFromCode(code int) Severity {
	switch {
	case code == 5:
		return SeverityInfo
	case code == 4:
		return SeverityWarning
	case code < 4:
		return SeverityError
	default:
		return SeverityDebug
	}
}

// StateChangeEvent captures a watcher or session state transition.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ChangeEvent captures one neighbor change notification.
type ChangeEvent struct {
	// Kind is the change kind name (ADDED, DELETED, UPDATED). Load-time
	// snapshot reconciliation reports ADDED.
	Kind string `cbor:"1,keyasint"`

	// Interface is the local interface name.
	Interface string `cbor:"2,keyasint,omitempty"`

	// ChassisName is the neighbor's advertised system name.
	ChassisName string `cbor:"3,keyasint,omitempty"`

	// PortID is the neighbor's advertised port identifier.
	PortID string `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures a backend failure.
type ErrorEventData struct {
	// Code is the backend error code.
	Code int `cbor:"1,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
