package atom

import "github.com/jta/lldpy/pkg/lldpctl"

// recordShape declares which keys of a record decode as lists of child
// records, and the shape those children decode as. Keys not listed decode
// as text. Shapes are process-wide constants, read-only after init.
type recordShape struct {
	nested map[lldpctl.Key]*recordShape
}

var (
	// genericShape has no nested keys; every field decodes as text.
	genericShape = &recordShape{}

	// neighborShape is one discovered neighbor: management addresses
	// decode as child records.
	neighborShape = &recordShape{nested: map[lldpctl.Key]*recordShape{
		lldpctl.KeyChassisMgmt: genericShape,
	}}

	// portsShape is an interface's port state: neighbors decode as
	// neighbor records.
	portsShape = &recordShape{nested: map[lldpctl.Key]*recordShape{
		lldpctl.KeyPortNeighbors: neighborShape,
	}}
)

// decode walks the full published key table over one handle. Text fetches
// returning no value are omitted; nested fetches returning no list decode
// to an empty child slice. The handle itself is not released here: its
// lifetime belongs to the caller.
func decode(b lldpctl.Backend, h lldpctl.Atom, shape *recordShape) *Record {
	rec := &Record{
		fields: make(map[string]string),
		lists:  make(map[string][]*Record),
	}
	if h == nil {
		return rec
	}
	for _, spec := range lldpctl.Keys() {
		if child, ok := shape.nested[spec.Key]; ok {
			children := []*Record{}
			Walk(b, b.AtomList(h, spec.Key), func(elem lldpctl.Atom) bool {
				children = append(children, decode(b, elem, child))
				return true
			})
			rec.lists[spec.Name] = children
			continue
		}
		if v, ok := b.AtomString(h, spec.Key); ok {
			rec.fields[spec.Name] = v
		}
	}
	return rec
}

// Neighbor is one discovered neighbor's advertised attributes.
type Neighbor struct {
	*Record
}

// Ports is the locally-observed port state of one interface, carrying the
// interface's neighbor records.
type Ports struct {
	*Record
}

// Neighbors returns the neighbors discovered on this port, in backend order.
func (p Ports) Neighbors() []Neighbor {
	children := p.List(FieldPortNeighbors)
	neighbors := make([]Neighbor, 0, len(children))
	for _, c := range children {
		neighbors = append(neighbors, Neighbor{c})
	}
	return neighbors
}

// Interface is one local network interface together with its observed
// port state.
type Interface struct {
	*Record

	// Port is the interface's port record; its neighbors are the
	// interface's discovered neighbors.
	Port Ports
}

// Name returns the interface name, or "" when the backend did not report one.
func (i *Interface) Name() string {
	return i.FieldOr("interface_name", "")
}

// Neighbors returns the neighbors discovered on this interface.
func (i *Interface) Neighbors() []Neighbor {
	return i.Port.Neighbors()
}

// DecodeNeighbor decodes a neighbor port handle.
func DecodeNeighbor(b lldpctl.Backend, h lldpctl.Atom) Neighbor {
	return Neighbor{decode(b, h, neighborShape)}
}

// DecodeInterface decodes an interface handle, including its port state
// obtained through Backend.Port.
func DecodeInterface(b lldpctl.Backend, h lldpctl.Atom) *Interface {
	return &Interface{
		Record: decode(b, h, genericShape),
		Port:   Ports{decode(b, b.Port(h), portsShape)},
	}
}

// EachInterface decodes every local interface visible on conn, in backend
// order, calling visit per interface. A backend reporting no interface list
// produces no visits. Returning false from visit stops the enumeration.
func EachInterface(b lldpctl.Backend, conn lldpctl.Conn, visit func(*Interface) bool) {
	Walk(b, b.Interfaces(conn), func(h lldpctl.Atom) bool {
		return visit(DecodeInterface(b, h))
	})
}

// Interfaces decodes every local interface visible on conn.
func Interfaces(b lldpctl.Backend, conn lldpctl.Conn) []*Interface {
	var out []*Interface
	EachInterface(b, conn, func(iface *Interface) bool {
		out = append(out, iface)
		return true
	})
	return out
}
