// Package pqueue provides an indexed binary min-heap for search frontiers.
//
// What:
//
//   - Heap[T] keeps items ordered by their own Compare method.
//   - Every item stores its current slot, so membership tests are O(1)
//     and an item whose priority improved can be re-sifted in place.
//
// Use:
//
//   - Open sets of graph searches over a fixed set of long-lived records,
//     where a record already reached can be reached again more cheaply.
//
// Complexity:
//
//   - Push, Pop, DecreaseKey: O(log n).
//   - Contains, Len, Peek:    O(1).
//   - Clear:                  O(n) (slots are reset).
//
// Items are never allocated or freed by the heap; it only moves references.
package pqueue
