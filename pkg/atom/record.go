package atom

import (
	"sort"
	"strconv"
)

// Chassis capability bits carried by the "chassis_cap_enabled" bitmask.
const (
	capRepeater = 0x02
	capBridge   = 0x04
	capWLAN     = 0x08
	capRouter   = 0x10
)

// FieldChassisCapEnabled is the field holding the enabled-capability bitmask.
const FieldChassisCapEnabled = "chassis_cap_enabled"

// FieldPortNeighbors is the field under which a Ports record carries its
// neighbor records.
const FieldPortNeighbors = "port_neighbors"

// Record is a self-describing, dynamically-keyed record decoded from one
// backend handle. Field values are either text or ordered lists of further
// records; a field the backend had no value for does not appear at all.
//
// A Record is immutable after decode and safe for concurrent reads.
type Record struct {
	fields map[string]string
	lists  map[string][]*Record
}

// Field returns the text value of a field. ok is false when the field is
// not present on this record.
func (r *Record) Field(name string) (value string, ok bool) {
	if r == nil {
		return "", false
	}
	value, ok = r.fields[name]
	return value, ok
}

// FieldOr returns the text value of a field, or def when absent.
func (r *Record) FieldOr(name, def string) string {
	if v, ok := r.Field(name); ok {
		return v
	}
	return def
}

// List returns the child records of a list-valued field. The result is
// empty (never nil-dereferencing) when the field is absent.
func (r *Record) List(name string) []*Record {
	if r == nil {
		return nil
	}
	return r.lists[name]
}

// FieldNames returns the names of all present text fields, sorted.
func (r *Record) FieldNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListNames returns the names of all present list fields, sorted.
func (r *Record) ListNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.lists))
	for name := range r.lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// capEnabled tests one bit of the enabled-capability bitmask. An absent or
// unparsable bitmask counts as zero.
func (r *Record) capEnabled(mask uint64) bool {
	v, ok := r.Field(FieldChassisCapEnabled)
	if !ok {
		return false
	}
	bits, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return false
	}
	return bits&mask != 0
}

// RepeaterEnabled reports whether the chassis advertises the repeater
// capability as enabled.
func (r *Record) RepeaterEnabled() bool { return r.capEnabled(capRepeater) }

// BridgeEnabled reports whether the chassis advertises the bridge
// capability as enabled.
func (r *Record) BridgeEnabled() bool { return r.capEnabled(capBridge) }

// WLANEnabled reports whether the chassis advertises the WLAN access point
// capability as enabled.
func (r *Record) WLANEnabled() bool { return r.capEnabled(capWLAN) }

// RouterEnabled reports whether the chassis advertises the router
// capability as enabled.
func (r *Record) RouterEnabled() bool { return r.capEnabled(capRouter) }
