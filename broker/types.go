package broker

import (
	"errors"
	"io"
	"log"

	"github.com/ungerik/go3d/vec3"

	"github.com/katalvlaran/gridpath/astar"
)

// Sentinel errors returned by the broker.
var (
	// ErrNilFinder indicates New was given a nil Finder.
	ErrNilFinder = errors.New("broker: finder is nil")

	// ErrNilCallback indicates RequestPath was given a nil callback.
	ErrNilCallback = errors.New("broker: callback is nil")

	// ErrQueueFull indicates the pending queue reached Options.MaxPending.
	ErrQueueFull = errors.New("broker: pending queue is full")

	// ErrBadMaxPending indicates a negative MaxPending.
	ErrBadMaxPending = errors.New("broker: MaxPending must be non-negative")
)

// Finder starts searches. *astar.Pathfinder implements it.
type Finder interface {
	Start(start, target vec3.T) (*astar.Search, error)
}

// Callback receives the outcome of one request. success=false always comes
// with no waypoints; success=true may come with none when start and target
// share a cell.
type Callback func(waypoints []vec3.T, success bool)

// Options configures a Broker.
//
// MaxPending – cap on queued (not yet dispatched) requests; 0 means unbounded.
// Logger     – destination for dispatch and completion logs.
type Options struct {
	MaxPending int
	Logger     *log.Logger
}

// Option represents a functional option for configuring a Broker.
type Option func(*Options)

// DefaultOptions returns an unbounded queue and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxPending: 0,
		Logger:     log.New(io.Discard, "", 0),
	}
}

// WithMaxPending bounds the pending queue; RequestPath returns ErrQueueFull
// beyond it. Panics on negative n.
func WithMaxPending(n int) Option {
	if n < 0 {
		panic(ErrBadMaxPending.Error())
	}
	return func(o *Options) {
		o.MaxPending = n
	}
}

// WithLogger routes broker logs to l. A nil l keeps the default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// request is one queued path query.
type request struct {
	id         uint64
	start      vec3.T
	target     vec3.T
	onComplete Callback
}
