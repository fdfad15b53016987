package pqueue

// Item is the constraint for values stored in a Heap.
//
// Compare must define a total order: negative when the receiver ranks
// before other (is popped first), zero when equal, positive otherwise.
//
// HeapIndex and SetHeapIndex expose a slot field that belongs to the heap.
// Nothing but the heap may write it; a freshly created item should report
// -1 (or any value the heap will not confuse with a live slot).
type Item[T any] interface {
	comparable
	Compare(other T) int
	HeapIndex() int
	SetHeapIndex(i int)
}

// Heap is an indexed min-heap over items of type T.
// The zero value is an empty heap ready to use.
// Heap is not safe for concurrent use.
type Heap[T Item[T]] struct {
	items []T
}
