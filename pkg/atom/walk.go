package atom

import "github.com/jta/lldpy/pkg/lldpctl"

// Walk iterates a backend list Atom, calling visit once per element in
// backend order. A nil list produces no visits. Returning false from visit
// stops the walk.
//
// The reference acquired by IterValue is released exactly once per element,
// after the cursor has advanced, whether or not the visitor kept going.
// Element handles are only valid during the visit call; decode them before
// returning if they need to outlive it.
func Walk(b lldpctl.Backend, list lldpctl.Atom, visit func(lldpctl.Atom) bool) {
	if list == nil {
		return
	}
	for it := b.Iter(list); it != nil; {
		value := b.IterValue(list, it)
		cont := visit(value)
		it = b.IterNext(list, it)
		b.DecRef(value)
		if !cont {
			return
		}
	}
}
