package lldptest

import (
	"strconv"
	"sync"

	"github.com/jta/lldpy/pkg/lldpctl"
)

// Atom is a fake backend handle. A handle is either a record (Strings,
// Lists, Port populated) or a list of handles (Elems populated).
type Atom struct {
	Strings map[lldpctl.Key]string
	Lists   map[lldpctl.Key][]*Atom
	Port    *Atom
	Elems   []*Atom
}

// Iface builds an interface handle with the given name and neighbors.
func Iface(name string, neighbors ...*Atom) *Atom {
	return &Atom{
		Strings: map[lldpctl.Key]string{lldpctl.KeyInterfaceName: name},
		Port: &Atom{
			Lists: map[lldpctl.Key][]*Atom{lldpctl.KeyPortNeighbors: neighbors},
		},
	}
}

// Neighbor builds a neighbor handle from key/value fields.
func Neighbor(fields map[lldpctl.Key]string) *Atom {
	return &Atom{Strings: fields}
}

// watchOp is one scripted event consumed by a blocking Watch call.
type watchOp struct {
	kind    lldpctl.ChangeKind
	local   *Atom
	remote  *Atom
	errCode int
}

// fakeConn is one live connection handed out by the backend.
type fakeConn struct {
	mu       sync.Mutex
	changeFn lldpctl.ChangeFunc
}

// Backend is a scriptable in-memory lldpctl.Backend.
type Backend struct {
	mu sync.Mutex

	interfaces    []*Atom
	failRemaining int
	logFn         lldpctl.LogFunc

	conns         int
	releasedConns int
	acquired      int
	released      int

	ops     chan watchOp
	closeOp sync.Once
}

// New creates an empty backend with no interfaces.
func New() *Backend {
	return &Backend{ops: make(chan watchOp, 16)}
}

// Close shuts the event script down: every pending and future Watch call
// fails with code -1. Call before stopping a watcher blocked in Watch.
func (b *Backend) Close() {
	b.closeOp.Do(func() { close(b.ops) })
}

// SetInterfaces replaces the interface inventory seen by new walks.
func (b *Backend) SetInterfaces(ifaces ...*Atom) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interfaces = ifaces
}

// FailConnections makes the next n NewConnection calls fail.
func (b *Backend) FailConnections(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failRemaining = n
}

// InjectChange queues a change notification. The next blocking Watch call
// dispatches it through the connection's change callback.
func (b *Backend) InjectChange(kind lldpctl.ChangeKind, local, remote *Atom) {
	b.ops <- watchOp{kind: kind, local: local, remote: remote}
}

// InjectWatchError queues a wait failure. The next blocking Watch call
// returns code, ending the session.
func (b *Backend) InjectWatchError(code int) {
	b.ops <- watchOp{errCode: code}
}

// EmitLog invokes the registered log callback, if any.
func (b *Backend) EmitLog(severity int, msg string) {
	b.mu.Lock()
	fn := b.logFn
	b.mu.Unlock()
	if fn != nil {
		fn(severity, msg)
	}
}

// Connections returns how many connections were handed out.
func (b *Backend) Connections() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conns
}

// ReleasedConnections returns how many connections were released.
func (b *Backend) ReleasedConnections() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.releasedConns
}

// Acquired returns how many handle references were taken via IterValue.
func (b *Backend) Acquired() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acquired
}

// Released returns how many handle references were dropped via DecRef.
func (b *Backend) Released() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.released
}

// Backend interface implementation.

func (b *Backend) NewConnection() lldpctl.Conn {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failRemaining > 0 {
		b.failRemaining--
		return nil
	}
	b.conns++
	return &fakeConn{}
}

func (b *Backend) Release(conn lldpctl.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.releasedConns++
}

func (b *Backend) Interfaces(conn lldpctl.Conn) lldpctl.Atom {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.interfaces == nil {
		return nil
	}
	return &Atom{Elems: b.interfaces}
}

func (b *Backend) Port(h lldpctl.Atom) lldpctl.Atom {
	a := asAtom(h)
	if a == nil || a.Port == nil {
		return nil
	}
	return a.Port
}

func (b *Backend) AtomString(h lldpctl.Atom, key lldpctl.Key) (string, bool) {
	a := asAtom(h)
	if a == nil {
		return "", false
	}
	v, ok := a.Strings[key]
	return v, ok
}

func (b *Backend) AtomList(h lldpctl.Atom, key lldpctl.Key) lldpctl.Atom {
	a := asAtom(h)
	if a == nil {
		return nil
	}
	elems, ok := a.Lists[key]
	if !ok {
		return nil
	}
	return &Atom{Elems: elems}
}

// iterState indexes into a list handle's elements.
type iterState struct {
	idx int
}

func (b *Backend) Iter(list lldpctl.Atom) lldpctl.Iter {
	a := asAtom(list)
	if a == nil || len(a.Elems) == 0 {
		return nil
	}
	return &iterState{}
}

func (b *Backend) IterValue(list lldpctl.Atom, it lldpctl.Iter) lldpctl.Atom {
	a := asAtom(list)
	state := it.(*iterState)
	b.mu.Lock()
	b.acquired++
	b.mu.Unlock()
	return a.Elems[state.idx]
}

func (b *Backend) IterNext(list lldpctl.Atom, it lldpctl.Iter) lldpctl.Iter {
	a := asAtom(list)
	state := it.(*iterState)
	if state.idx+1 >= len(a.Elems) {
		return nil
	}
	return &iterState{idx: state.idx + 1}
}

func (b *Backend) DecRef(h lldpctl.Atom) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.released++
}

func (b *Backend) OnChange(conn lldpctl.Conn, fn lldpctl.ChangeFunc) {
	c := conn.(*fakeConn)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changeFn = fn
}

func (b *Backend) OnLog(fn lldpctl.LogFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logFn = fn
}

// Watch blocks until a scripted event is available. Change notifications
// dispatch through the connection's change callback and return 0; wait
// failures return their nonzero code.
func (b *Backend) Watch(conn lldpctl.Conn) int {
	op, ok := <-b.ops
	if !ok {
		return -1
	}
	if op.errCode != 0 {
		return op.errCode
	}
	c := conn.(*fakeConn)
	c.mu.Lock()
	fn := c.changeFn
	c.mu.Unlock()
	if fn != nil {
		fn(conn, op.kind, atomOrNil(op.local), atomOrNil(op.remote))
	}
	return 0
}

func (b *Backend) StrError(code int) string {
	return "fake backend error " + strconv.Itoa(code)
}

// asAtom unwraps a handle, flattening typed-nil interface values to nil.
func asAtom(h lldpctl.Atom) *Atom {
	a, _ := h.(*Atom)
	return a
}

// atomOrNil keeps a nil *Atom as an untyped nil interface value.
func atomOrNil(a *Atom) lldpctl.Atom {
	if a == nil {
		return nil
	}
	return a
}

// Compile-time interface satisfaction check.
var _ lldpctl.Backend = (*Backend)(nil)
