package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pqueue"
)

// ExampleHeap demonstrates an open set: three frontier cells, one of which
// is reached by a cheaper route after it was queued.
func ExampleHeap() {
	h := pqueue.New[*cell](3)
	north := newCell("north", 20, 10)
	east := newCell("east", 15, 5)
	south := newCell("south", 25, 0)
	h.Push(north)
	h.Push(east)
	h.Push(south)

	south.f = 5
	h.DecreaseKey(south)

	for h.Len() > 0 {
		c, _ := h.Pop()
		fmt.Println(c.name, c.f)
	}

	// Output:
	// south 5
	// east 15
	// north 20
}
