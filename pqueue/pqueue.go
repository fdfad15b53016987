package pqueue

// New returns an empty heap whose backing store holds capacity items
// without reallocating. A negative capacity is treated as zero.
func New[T Item[T]](capacity int) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of queued items.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push appends item and sifts it up to its place.
// Complexity: O(log n).
func (h *Heap[T]) Push(item T) {
	item.SetHeapIndex(len(h.items))
	h.items = append(h.items, item)
	h.up(len(h.items) - 1)
}

// Pop removes and returns the lowest item.
// The second result is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, false
	}
	root := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[0].SetHeapIndex(0)
	h.items[last] = zero
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}
	root.SetHeapIndex(-1)

	return root, true
}

// Peek returns the lowest item without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[0], true
}

// Contains reports whether item is currently queued.
// Complexity: O(1).
func (h *Heap[T]) Contains(item T) bool {
	i := item.HeapIndex()
	return i >= 0 && i < len(h.items) && h.items[i] == item
}

// DecreaseKey restores heap order after item's priority improved.
// Items that are not queued are ignored.
// Complexity: O(log n).
func (h *Heap[T]) DecreaseKey(item T) {
	if !h.Contains(item) {
		return
	}
	h.up(item.HeapIndex())
}

// Clear drops every queued item and keeps the backing store.
func (h *Heap[T]) Clear() {
	var zero T
	for i, it := range h.items {
		it.SetHeapIndex(-1)
		h.items[i] = zero
	}
	h.items = h.items[:0]
}

// up moves the item at slot i toward the root while it ranks before its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].Compare(h.items[parent]) >= 0 {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the item at slot i toward the leaves, always swapping with the
// smaller child, until neither child ranks before it.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.items[right].Compare(h.items[left]) < 0 {
			smallest = right
		}
		if h.items[smallest].Compare(h.items[i]) >= 0 {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].SetHeapIndex(i)
	h.items[j].SetHeapIndex(j)
}
