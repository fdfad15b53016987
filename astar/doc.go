// Package astar implements A* search over a walkability grid as a
// suspendable unit of work.
//
// A Pathfinder owns one reusable open set (an indexed pqueue.Heap) and an
// arena of per-cell search records. Start opens a Search; Step advances it
// by at most ExpansionBudget popped cells and reports whether it has
// reached a terminal state, so a host loop can spread a large search over
// several ticks. Run steps a search to completion.
//
// Costs are integers: 10 per orthogonal step, 14 per diagonal step. The
// default heuristic is the octile distance with the same units, which is
// consistent, so the first time the target is popped its cost is optimal.
//
// Per-search records are stamped with a generation number. A record left
// over from an earlier search is reinitialized the first time the current
// search touches it, so costs and parents never leak between searches.
//
// States:
//
//	Idle → Searching → {Succeeded | Failed | InvalidEndpoints}
//
// Failures are values, not panics: an unwalkable endpoint yields
// InvalidEndpoints with ErrInvalidEndpoint, an exhausted open set yields
// Failed with ErrSearchExhausted. Both report Found=false and no waypoints.
// Starting a new search abandons an unfinished one, which then reports
// Failed with ErrSuperseded.
//
// Complexity:
//
//   - Time:  O(V log V) per search, V = cells reached.
//   - Space: O(W×H) arena, allocated once per Pathfinder.
//
// A Pathfinder runs one search at a time and is not safe for concurrent use;
// see package broker for a FIFO single-flight front end.
package astar
