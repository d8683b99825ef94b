package log

// SafeLogger wraps another Logger and swallows panics from its Log method.
// The watcher delivers events from inside backend-driven control flow,
// where a panicking user sink must not abort discovery.
type SafeLogger struct {
	inner Logger
}

// Safe returns l wrapped in a SafeLogger. A nil l yields a logger that
// discards everything.
func Safe(l Logger) *SafeLogger {
	return &SafeLogger{inner: l}
}

// Log forwards the event to the wrapped logger, recovering any panic.
func (s *SafeLogger) Log(event Event) {
	if s.inner == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.inner.Log(event)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SafeLogger)(nil)
