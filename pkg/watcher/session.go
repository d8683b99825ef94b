package watcher

import (
	"github.com/google/uuid"

	"github.com/jta/lldpy/pkg/lldpctl"
)

// session owns one backend connection for the span of a single
// connect-load-watch cycle.
type session struct {
	backend lldpctl.Backend
	conn    lldpctl.Conn
	id      string

	released bool
}

// openSession establishes a backend connection and registers the watcher's
// change and log callbacks on it. Returns ErrConnectionFailed when the
// backend yields no connection (daemon not running, socket missing).
func openSession(b lldpctl.Backend, w *Watcher) (*session, error) {
	conn := b.NewConnection()
	if conn == nil {
		return nil, ErrConnectionFailed
	}
	s := &session{
		backend: b,
		conn:    conn,
		id:      uuid.NewString(),
	}
	b.OnChange(conn, w.dispatchChange)
	b.OnLog(w.forwardBackendLog)
	return s, nil
}

// close returns the connection to the backend. Safe to call more than once;
// the connection is released exactly once.
func (s *session) close() {
	if s.released {
		return
	}
	s.released = true
	s.backend.Release(s.conn)
}
