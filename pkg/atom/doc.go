// Package atom decodes opaque backend handles into self-describing records.
//
// A Record is built fresh on every decode from the full published key table
// (lldpctl.Keys): keys the backend has no value for are simply omitted, so
// callers must tolerate absent fields. Records copy everything out of the
// handle at decode time and are independent of the handle's lifetime
// afterwards.
//
// Three shapes matter to the watcher:
//   - Interface: one local network interface, with its observed Ports record
//   - Ports: the per-interface port state, carrying neighbor records under
//     "port_neighbors"
//   - Neighbor: one discovered neighbor's advertised attributes, nesting
//     management-address records under "chassis_mgmt"
package atom
