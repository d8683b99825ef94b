package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jta/lldpy/pkg/atom"
	"github.com/jta/lldpy/pkg/lldpctl"
	"github.com/jta/lldpy/pkg/log"
)

// Watcher errors.
var (
	// ErrConnectionFailed indicates the backend refused a connection,
	// typically because the LLDP daemon is not running.
	ErrConnectionFailed = errors.New("lldp backend connection failed")

	// ErrAlreadyRunning indicates Start was called on a running watcher.
	ErrAlreadyRunning = errors.New("watcher already running")
)

// State represents the watcher lifecycle state.
type State uint8

const (
	// StateStopped - not running. The initial state, and the state after
	// Stop completes.
	StateStopped State = iota

	// StateRunning - background discovery loop active.
	StateRunning

	// StateStopping - Stop requested, waiting for the loop to exit.
	StateStopping
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Watcher maintains a connection to an LLDP neighbor-discovery backend
// and delivers neighbor changes to a Handler. Create one with New or
// NewWithConfig, then call Start.
type Watcher struct {
	backend lldpctl.Backend
	handler Handler
	backoff *Backoff

	logger  *slog.Logger
	events  log.Logger
	fileLog *log.FileLogger

	mu        sync.Mutex
	state     State
	sessionID string
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a watcher with default configuration. A nil handler
// discards all callbacks.
func New(backend lldpctl.Backend, handler Handler) *Watcher {
	w, err := NewWithConfig(backend, handler, DefaultConfig())
	if err != nil {
		// DefaultConfig carries no event log path, so construction
		// cannot fail.
		panic(err)
	}
	return w
}

// NewWithConfig creates a watcher with the given configuration. When
// cfg.EventLog is set, the event log file is opened (or created) here
// and closed by Close.
func NewWithConfig(backend lldpctl.Backend, handler Handler, cfg Config) (*Watcher, error) {
	if handler == nil {
		handler = NoopHandler{}
	}
	w := &Watcher{
		backend: backend,
		handler: handler,
		backoff: NewBackoffWithConfig(cfg.Backoff),
		logger:  slog.Default(),
		events:  log.Safe(nil),
	}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("open event log: %w", err)
		}
		w.fileLog = fl
		w.events = log.Safe(fl)
	}
	return w, nil
}

// SetLogger replaces the diagnostic logger. Call before Start.
func (w *Watcher) SetLogger(l *slog.Logger) {
	if l != nil {
		w.logger = l
	}
}

// SetEventLogger replaces the event sink. When the configuration also
// named an event log file, both receive every event. Call before Start.
func (w *Watcher) SetEventLogger(l log.Logger) {
	if l == nil {
		return
	}
	if w.fileLog != nil {
		w.events = log.Safe(log.NewMultiLogger(w.fileLog, l))
		return
	}
	w.events = log.Safe(l)
}

// Start launches the background discovery loop.
// Returns ErrAlreadyRunning if the watcher is running or stopping.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.state != StateStopped {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}

	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.done = make(chan struct{})
	w.state = StateRunning
	w.backoff.Reset()
	w.mu.Unlock()

	// Emit outside the lock: the sink may call back into the watcher.
	w.emitState(StateStopped, StateRunning, "start requested")
	go w.run()
	return nil
}

// Stop requests termination and waits for the discovery loop to exit, or
// for ctx to expire. Cancellation is cooperative: a loop blocked in the
// backend's wait primitive keeps blocking until the next notification or
// wait error, and termination is observed at the following loop boundary.
func (w *Watcher) Stop(ctx context.Context) error {
	w.mu.Lock()
	state := w.state
	switch state {
	case StateStopped:
		w.mu.Unlock()
		return nil
	case StateRunning:
		w.state = StateStopping
		w.cancel()
	case StateStopping:
		// Another Stop is in flight; just wait alongside it.
	}
	done := w.done
	w.mu.Unlock()

	if state == StateRunning {
		w.emitState(StateRunning, StateStopping, "stop requested")
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases resources held by the watcher, including the event log
// file if one was configured. Call after Stop.
func (w *Watcher) Close() error {
	if w.fileLog != nil {
		return w.fileLog.Close()
	}
	return nil
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SessionID returns the UUID of the current backend session, or "" when
// disconnected. Each successful connection gets a fresh UUID.
func (w *Watcher) SessionID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sessionID
}

// run is the discovery loop. Each iteration is one session: connect, load
// the existing neighbor inventory as synthetic adds, then block dispatching
// change notifications until the wait fails.
func (w *Watcher) run() {
	defer close(w.done)
	defer w.setStopped()

	for w.ctx.Err() == nil {
		sess, err := openSession(w.backend, w)
		if err != nil {
			delay := w.backoff.Next()
			w.logger.Warn("lldp connection failed",
				"error", err,
				"attempt", w.backoff.Attempts(),
				"retry_in", delay)
			w.emit(log.Event{
				Category: log.CategoryError,
				Severity: log.SeverityWarning,
				Message:  err.Error(),
				Error:    &log.ErrorEventData{Context: "connect"},
			})
			if !w.sleep(delay) {
				return
			}
			continue
		}

		w.setSession(sess.id)
		w.backoff.Reset()
		w.logger.Info("lldp session established", "session_id", sess.id)
		w.emit(log.Event{
			Category: log.CategoryState,
			Severity: log.SeverityInfo,
			State:    &log.StateChangeEvent{NewState: "connected"},
		})

		w.load(sess)
		w.watch(sess)

		sess.close()
		w.setSession("")
		w.emit(log.Event{
			Category: log.CategoryState,
			Severity: log.SeverityInfo,
			State:    &log.StateChangeEvent{OldState: "connected", NewState: "disconnected"},
		})

		// Pause before reconnecting; the daemon that just dropped us is
		// likely restarting.
		if !w.sleep(w.backoff.Next()) {
			return
		}
	}
}

// load walks the interface list and replays every existing neighbor as an
// add callback, so handlers see the full inventory before live changes.
func (w *Watcher) load(s *session) {
	atom.EachInterface(w.backend, s.conn, func(iface *atom.Interface) bool {
		if w.ctx.Err() != nil {
			return false
		}
		for _, neighbor := range iface.Neighbors() {
			w.emitChange(lldpctl.ChangeAdded, iface, neighbor)
			w.handler.OnAdd(iface, neighbor)
		}
		return true
	})
}

// watch blocks in the backend's wait primitive until it reports an error
// or the watcher is cancelled. Change notifications arrive through
// dispatchChange while blocked.
func (w *Watcher) watch(s *session) {
	for w.ctx.Err() == nil {
		code := w.backend.Watch(s.conn)
		if code == 0 {
			continue
		}
		msg := w.backend.StrError(code)
		w.logger.Error("lldp watch failed", "code", code, "error", msg)
		w.emit(log.Event{
			Category: log.CategoryError,
			Severity: log.SeverityError,
			Message:  msg,
			Error:    &log.ErrorEventData{Code: code, Context: "watch"},
		})
		return
	}
}

// dispatchChange is the backend change callback. It decodes both atoms
// into snapshots before the backend reclaims them, then routes to the
// handler by change kind. Unknown kinds are dropped.
func (w *Watcher) dispatchChange(_ lldpctl.Conn, kind lldpctl.ChangeKind, local, remote lldpctl.Atom) {
	iface := atom.DecodeInterface(w.backend, local)
	neighbor := atom.DecodeNeighbor(w.backend, remote)

	w.emitChange(kind, iface, neighbor)

	switch kind {
	case lldpctl.ChangeAdded:
		w.handler.OnAdd(iface, neighbor)
	case lldpctl.ChangeDeleted:
		w.handler.OnDelete(iface, neighbor)
	case lldpctl.ChangeUpdated:
		w.handler.OnUpdate(iface, neighbor)
	}
}

// forwardBackendLog is the backend log callback. Backend severity codes
// map onto event severities; the line goes to the event sink only.
func (w *Watcher) forwardBackendLog(severity int, msg string) {
	w.emit(log.Event{
		Category: log.CategoryBackend,
		Severity: log.SeverityFromCode(severity),
		Message:  msg,
	})
}

// sleep waits for d, returning false if cancellation cut the wait short.
func (w *Watcher) sleep(d time.Duration) bool {
	select {
	case <-w.ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func (w *Watcher) setSession(id string) {
	w.mu.Lock()
	w.sessionID = id
	w.mu.Unlock()
}

func (w *Watcher) setStopped() {
	w.mu.Lock()
	old := w.state
	w.state = StateStopped
	w.sessionID = ""
	w.mu.Unlock()
	w.emitState(old, StateStopped, "loop exited")
}

// emit stamps and records an event. The sink is panic-safe, so this is
// callable from backend-driven control flow.
func (w *Watcher) emit(e log.Event) {
	e.Timestamp = time.Now()
	if e.SessionID == "" {
		e.SessionID = w.SessionID()
	}
	w.events.Log(e)
}

func (w *Watcher) emitChange(kind lldpctl.ChangeKind, iface *atom.Interface, neighbor atom.Neighbor) {
	w.emit(log.Event{
		Category: log.CategoryChange,
		Severity: log.SeverityInfo,
		Change: &log.ChangeEvent{
			Kind:        kind.String(),
			Interface:   iface.Name(),
			ChassisName: neighbor.FieldOr("chassis_name", ""),
			PortID:      neighbor.FieldOr("port_id", ""),
		},
	})
}

// emitState records a lifecycle transition. Callers must not hold w.mu:
// the sink is user code and may query the watcher.
func (w *Watcher) emitState(old, next State, reason string) {
	w.emit(log.Event{
		Category: log.CategoryState,
		Severity: log.SeverityInfo,
		State: &log.StateChangeEvent{
			OldState: old.String(),
			NewState: next.String(),
			Reason:   reason,
		},
	})
}
