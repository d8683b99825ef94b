package lldpctl

// Conn is an opaque handle to one daemon connection. A Conn is exclusively
// owned by the session that opened it and must be returned to the backend
// with Release exactly once.
type Conn interface{}

// Atom is an opaque, reference-counted handle to one backend-side attribute
// object (an interface, a neighbor port, a management address, or a list of
// such objects). Atoms produced by the cursor protocol are transient: they
// must not be retained past the iteration step that produced them unless
// decoded into an owned record first.
type Atom interface{}

// Iter is an opaque cursor over a backend list Atom. A nil Iter is the
// terminal condition.
type Iter interface{}

// ChangeKind identifies the kind of neighbor change delivered by the
// backend's wait primitive.
type ChangeKind uint8

const (
	// ChangeAdded indicates a neighbor appeared.
	ChangeAdded ChangeKind = iota

	// ChangeDeleted indicates a neighbor disappeared.
	ChangeDeleted

	// ChangeUpdated indicates a neighbor's advertised attributes changed.
	ChangeUpdated
)

// String returns the change kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "ADDED"
	case ChangeDeleted:
		return "DELETED"
	case ChangeUpdated:
		return "UPDATED"
	default:
		return "UNKNOWN"
	}
}

// ChangeFunc is invoked by the backend, synchronously from inside Watch,
// with the local interface handle and the remote neighbor handle of one
// change. The handles are only valid for the duration of the call.
type ChangeFunc func(conn Conn, kind ChangeKind, local, remote Atom)

// LogFunc receives backend log lines. severity uses the daemon's numeric
// scheme (syslog-style; see pkg/log.SeverityFromCode for the mapping).
// Implementations must not panic: they run inside backend control flow.
type LogFunc func(severity int, msg string)

// Backend is the capability surface of the neighbor-discovery daemon's
// client library. All methods are safe to call from the single goroutine
// that owns the Conn; the backend never shares one Conn across callers.
type Backend interface {
	// NewConnection opens a connection to the daemon using default
	// transport parameters. It returns nil when the daemon refuses the
	// connection or the transport fails; callers must treat a nil Conn
	// as a connection failure, never use it.
	NewConnection() Conn

	// Release returns the connection resource to the backend. The Conn
	// must not be used afterwards.
	Release(conn Conn)

	// Interfaces returns the list Atom of local network interfaces known
	// to the daemon, or nil when there are none.
	Interfaces(conn Conn) Atom

	// Port returns the locally-observed port Atom of an interface handle.
	// The returned Atom shares the interface handle's lifetime and needs
	// no separate release.
	Port(iface Atom) Atom

	// AtomString fetches the string representation of one keyed field.
	// ok is false when the backend has no value for the key.
	AtomString(atom Atom, key Key) (value string, ok bool)

	// AtomList fetches the list Atom of one keyed field, or nil when the
	// backend has no value for the key.
	AtomList(atom Atom, key Key) Atom

	// Iter obtains a cursor over a list Atom; nil means the list is empty.
	Iter(list Atom) Iter

	// IterValue reads the element under the cursor. The backend acquires
	// a reference on the returned Atom; the caller must release it with
	// DecRef exactly once.
	IterValue(list Atom, it Iter) Atom

	// IterNext advances the cursor; nil means the end of the list.
	IterNext(list Atom, it Iter) Iter

	// DecRef releases one reference on an Atom produced by IterValue.
	DecRef(atom Atom)

	// OnChange registers the change-notification callback for a
	// connection. The backend invokes it from inside Watch.
	OnChange(conn Conn, fn ChangeFunc)

	// OnLog registers the log callback. Backend log lines are delivered
	// to it instead of the daemon's default stderr sink.
	OnLog(fn LogFunc)

	// Watch blocks until one change has been delivered through the
	// registered ChangeFunc, returning 0, or fails with a nonzero error
	// code describable via StrError. Implementations should unblock an
	// in-progress Watch when the Conn is released, or bound the wait
	// internally; an unbounded wait delays watcher shutdown until the
	// next change arrives.
	Watch(conn Conn) int

	// StrError translates a nonzero Watch error code to text.
	StrError(code int) string
}
