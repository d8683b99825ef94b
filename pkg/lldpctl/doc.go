// Package lldpctl defines the capability surface of the neighbor-discovery
// backend: the client library of an lldpd-style daemon that parses LLDP,
// CDP and EDP frames on the wire and maintains neighbor state.
//
// The backend hands out opaque, reference-counted handles (Conn, Atom) and
// exposes generic attribute access keyed by the published Key constants.
// This package deliberately says nothing about the daemon's private IPC
// protocol; a Backend implementation owns that transport entirely.
//
// Higher layers build on this surface:
//   - pkg/atom decodes handles into self-describing records
//   - pkg/watcher runs the connect/load/watch lifecycle
package lldpctl
