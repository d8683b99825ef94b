package watcher

import "github.com/jta/lldpy/pkg/atom"

// Handler receives neighbor change callbacks from a Watcher.
//
// local describes the interface on this host the neighbor was seen on;
// remote describes the neighbor's chassis and port. Both are immutable
// snapshots and remain valid after the callback returns. Callbacks for
// one Watcher never run concurrently.
type Handler interface {
	// OnAdd is called when a neighbor appears, and once per existing
	// neighbor when a session (re)connects.
	OnAdd(local *atom.Interface, remote atom.Neighbor)

	// OnDelete is called when a neighbor ages out or is withdrawn.
	OnDelete(local *atom.Interface, remote atom.Neighbor)

	// OnUpdate is called when an already-known neighbor's data changes.
	OnUpdate(local *atom.Interface, remote atom.Neighbor)
}

// NoopHandler ignores all callbacks. Embed it to implement only a subset
// of Handler.
type NoopHandler struct{}

func (NoopHandler) OnAdd(*atom.Interface, atom.Neighbor)    {}
func (NoopHandler) OnDelete(*atom.Interface, atom.Neighbor) {}
func (NoopHandler) OnUpdate(*atom.Interface, atom.Neighbor) {}

// HandlerFuncs adapts plain functions to the Handler interface.
// Nil fields ignore the corresponding callback.
type HandlerFuncs struct {
	Add    func(local *atom.Interface, remote atom.Neighbor)
	Delete func(local *atom.Interface, remote atom.Neighbor)
	Update func(local *atom.Interface, remote atom.Neighbor)
}

func (h HandlerFuncs) OnAdd(local *atom.Interface, remote atom.Neighbor) {
	if h.Add != nil {
		h.Add(local, remote)
	}
}

func (h HandlerFuncs) OnDelete(local *atom.Interface, remote atom.Neighbor) {
	if h.Delete != nil {
		h.Delete(local, remote)
	}
}

func (h HandlerFuncs) OnUpdate(local *atom.Interface, remote atom.Neighbor) {
	if h.Update != nil {
		h.Update(local, remote)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Handler = NoopHandler{}
	_ Handler = HandlerFuncs{}
)
