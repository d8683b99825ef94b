// Package lldptest provides an in-memory neighbor-discovery backend for
// tests. It models the handle lifecycle of the real client library,
// including reference counting on iteration, and lets tests script
// connection failures, change notifications and wait errors.
package lldptest
