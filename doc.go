// Package gridpath is a grid-based shortest-path engine for game actors:
// an A* search over a walkability grid, backed by an indexed priority
// queue, and fronted by a broker that serializes path requests from many
// callers onto one search engine.
//
// What is in the box?
//
//   - pqueue: generic indexed min-heap with O(log n) decrease-key
//   - gridgraph: walkability grid, world ↔ cell mapping, regions, YAML layouts
//   - astar: suspendable A* search with 10/14 octile costs and path simplification
//   - broker: FIFO single-flight request queue driven by the host tick loop
//
// Data flow:
//
//	caller ──RequestPath──▶ broker ──Start/Step──▶ astar ──CellAt/Neighbors──▶ gridgraph
//	   ▲                                              │
//	   └──────────── callback(waypoints, ok) ◀────────┘
//
// Failures (unwalkable endpoints, unreachable targets) are reported as
// ok=false with no waypoints; nothing on the request path panics.
//
// Quick ASCII example:
//
//	S . . . .
//	# # # # .
//	T . . . .
//
// yields the waypoints (3,0) (4,1) (3,2) (0,2): one per change of direction.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
