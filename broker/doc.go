// Package broker serializes path requests from many callers onto one
// astar.Pathfinder.
//
// Requests are queued FIFO. At most one search is in flight; the next one is
// dispatched only after the previous request's callback has returned, so the
// pathfinder's shared per-cell records are never touched by two searches.
//
// The broker is driven by the host's tick loop (Tick, or Run with a
// time.Ticker). A dispatched search takes its first step immediately and
// one step per Tick after that; once it concludes, its callback fires on the
// following Tick. Every accepted request gets exactly one callback, in
// enqueue order. A callback that panics unwinds out of Tick, but the broker
// has already moved on to the next request.
//
// Usage:
//
//	pf, _ := astar.NewPathfinder(grid, astar.WithExpansionBudget(256))
//	b, _ := broker.New(pf, broker.WithLogger(log.Default()))
//	_ = b.RequestPath(from, to, func(wps []vec3.T, ok bool) { ... })
//	for range frames {
//		b.Tick()
//	}
//
// There is no package-level broker; callers hold the handle they were given.
package broker
