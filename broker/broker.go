package broker

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/astar"
)

// Broker is a FIFO, single-flight front end for a Finder.
//
// RequestPath may be called from any goroutine, including from inside a
// callback. Tick must be called from one goroutine at a time, normally the
// host loop; callbacks run on that goroutine.
type Broker struct {
	finder  Finder
	options Options

	mu        sync.Mutex
	queue     *list.List // of *request
	current   *request
	search    *astar.Search
	concluded bool // search reached a terminal state; deliver on next Tick
	failure   error
	nextID    uint64
}

// New returns a Broker that dispatches to finder.
func New(finder Finder, opts ...Option) (*Broker, error) {
	if finder == nil {
		return nil, ErrNilFinder
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Broker{
		finder:  finder,
		options: cfg,
		queue:   list.New(),
	}, nil
}

// RequestPath queues a request for a path from start to target and
// dispatches it right away if nothing else is in flight. onComplete is
// called exactly once from a later Tick.
//
// Errors: ErrNilCallback, ErrQueueFull (only with WithMaxPending). A request
// rejected with an error is not queued and its callback is never called.
func (b *Broker) RequestPath(start, target vec3.T, onComplete Callback) error {
	if onComplete == nil {
		return ErrNilCallback
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if limit := b.options.MaxPending; limit > 0 && b.queue.Len() >= limit {
		return ErrQueueFull
	}
	b.nextID++
	b.queue.PushBack(&request{
		id:         b.nextID,
		start:      start,
		target:     target,
		onComplete: onComplete,
	})
	b.dispatch()

	return nil
}

// Tick advances the broker by one host frame:
//
//   - nothing in flight: no-op;
//   - search still running: one more Step;
//   - search concluded on an earlier call: invoke its callback, then
//     dispatch the next queued request.
func (b *Broker) Tick() {
	b.mu.Lock()
	if b.current == nil {
		b.mu.Unlock()
		return
	}
	if !b.concluded {
		b.concluded = b.search.Step()
		b.mu.Unlock()
		return
	}
	req := b.current
	res := b.outcome()
	b.mu.Unlock()

	b.options.Logger.Printf("broker: request #%d done: found=%t waypoints=%d expanded=%d",
		req.id, res.Found, len(res.Waypoints), res.Expanded)
	if res.Err != nil {
		b.options.Logger.Printf("broker: request #%d failed: %v", req.id, res.Err)
	}
	// current stays set while the callback runs, so re-entrant requests are
	// queued behind it instead of starting a search early.
	defer b.finish()
	req.onComplete(res.Waypoints, res.Found)
}

// finish clears the delivered request and dispatches the next one. Tick
// defers it, so a panicking callback still releases the broker; the panic
// itself propagates to the caller of Tick.
func (b *Broker) finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	b.search = nil
	b.concluded = false
	b.failure = nil
	b.dispatch()
}

// Run calls Tick every interval until ctx is done and returns ctx.Err().
func (b *Broker) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			b.Tick()
		}
	}
}

// Pending returns the number of queued requests, the in-flight one excluded.
func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queue.Len()
}

// Busy reports whether a request is in flight.
func (b *Broker) Busy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current != nil
}

// dispatch starts the head request if nothing is in flight.
// b.mu must be held.
func (b *Broker) dispatch() {
	if b.current != nil || b.queue.Len() == 0 {
		return
	}
	req := b.queue.Remove(b.queue.Front()).(*request)
	b.current = req
	b.options.Logger.Printf("broker: dispatch request #%d (%d pending)", req.id, b.queue.Len())

	s, err := b.finder.Start(req.start, req.target)
	if err != nil {
		// Reported through the callback like any other failure.
		b.failure = err
		b.concluded = true
		return
	}
	b.search = s
	b.concluded = s.Step()
}

// outcome returns the result of the concluded request. b.mu must be held.
func (b *Broker) outcome() astar.Result {
	if b.failure != nil {
		return astar.Result{Err: b.failure}
	}
	res := b.search.Result()
	if !res.Found {
		res.Waypoints = nil
	}
	return res
}
