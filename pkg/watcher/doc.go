// Package watcher tracks LLDP neighbors through a neighbor-discovery
// backend and streams typed change callbacks to application code.
//
// A Watcher runs as one background goroutine per instance. Each cycle it
// opens a session with the backend, reconciles the pre-existing neighbor
// inventory as synthetic add callbacks (Load), then blocks on the backend's
// wait primitive dispatching change notifications (Watch). When the wait
// fails, the session is released and the cycle restarts; connection
// failures retry under exponential backoff with jitter.
//
// Applications receive neighbors by implementing Handler (or using
// HandlerFuncs) and injecting it at construction:
//
//	w := watcher.New(backend, watcher.HandlerFuncs{
//	    Add: func(local *atom.Interface, remote atom.Neighbor) {
//	        fmt.Println("neighbor on", local.Name())
//	    },
//	})
//	if err := w.Start(); err != nil { ... }
//	defer w.Stop(ctx)
//
// Callbacks for one Watcher fire strictly sequentially, in backend delivery
// order, on the watcher's own goroutine. Reconnects are transparent: the
// application never observes connection churn, but OnAdd may be re-delivered
// for previously-seen neighbors after a reconnect, since Load re-synthesizes
// the full snapshot.
package watcher
