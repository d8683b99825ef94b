package log

// MultiLogger fans each event out to several sinks, typically a
// FileLogger for capture alongside a SlogAdapter for console visibility.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger builds a MultiLogger over the given sinks.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log hands the event to every sink, in registration order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
