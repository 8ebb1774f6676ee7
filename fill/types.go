package fill

import (
	"context"
	"errors"
	"fmt"
)

// DefaultCheckInterval is the number of heap pops between cancellation checks.
const DefaultCheckInterval = 4096

// Stage names the fill stage in errors.
const Stage = "fill"

// Sentinel errors for fill.
var (
	// ErrNilGrid is returned when a nil elevation grid is passed.
	ErrNilGrid = errors.New("fill: grid is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("fill: invalid option supplied")
)

// Option configures Fill.
type Option func(*Options)

// Options holds the settings of a Fill run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
	// CheckInterval is the number of pops between cancellation checks.
	CheckInterval int

	err error
}

// DefaultOptions returns Background context and DefaultCheckInterval.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
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

// WithCheckInterval sets how many pops pass between cancellation checks.
// k must be positive.
func WithCheckInterval(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: CheckInterval must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.CheckInterval = k
	}
}
