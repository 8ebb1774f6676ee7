package flowdir

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// DefaultCheckInterval is the number of queue pops between cancellation checks.
const DefaultCheckInterval = 4096

// Stage names the flow direction stage in errors.
const Stage = "flowdir"

// Sentinel errors for flow direction.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("flowdir: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flowdir: invalid option supplied")
	// ErrUnresolvedFlat indicates a cell with no exit after flat resolution.
	ErrUnresolvedFlat = errors.New("flowdir: unresolved flat cell")
	// ErrUnknownCode indicates a value that is not an ArcGIS direction code.
	ErrUnknownCode = errors.New("flowdir: unknown ESRI direction code")
)

// Option configures Compute.
type Option func(*Options)

// Options holds the settings of a flow direction run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
	// Workers bounds the goroutines used for steepest descent.
	Workers int
	// CheckInterval is the number of flat-resolution pops between
	// cancellation checks.
	CheckInterval int

	err error
}

// DefaultOptions returns Background context, GOMAXPROCS workers and
// DefaultCheckInterval.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Workers:       runtime.GOMAXPROCS(0),
		CheckInterval: DefaultCheckInterval,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of steepest-descent workers; n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCheckInterval sets how many pops pass between cancellation checks.
func WithCheckInterval(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: CheckInterval must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.CheckInterval = k
	}
}
