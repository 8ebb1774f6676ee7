package accumulation

import (
	"context"
	"errors"
	"fmt"
)

// NoData marks no-data cells in accumulation grids.
const NoData int64 = -1

// DefaultCheckInterval is the number of queue pops between cancellation checks.
const DefaultCheckInterval = 4096

// Stage names the accumulation stage in errors.
const Stage = "accumulation"

// Sentinel errors for accumulation.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("accumulation: grid is nil")
	// ErrCycle indicates that the direction grid contains a cycle.
	ErrCycle = errors.New("accumulation: cycle in flow graph")
	// ErrBadThreshold indicates a stream threshold below 1.
	ErrBadThreshold = errors.New("accumulation: threshold must be at least 1")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("accumulation: invalid option supplied")
)

// Option configures Compute and Weighted.
type Option func(*Options)

// Options holds the settings of an accumulation run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
	// CheckInterval is the number of pops between cancellation checks.
	CheckInterval int

	err error
}

// DefaultOptions returns Background context and DefaultCheckInterval.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), CheckInterval: DefaultCheckInterval}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
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
