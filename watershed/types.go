package watershed

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/terrain/grid"
)

// Label values that are not outlet ids.
const (
	// NoData marks no-data cells in label grids.
	NoData int32 = -1
	// Unassigned marks valid cells that drain to none of the outlets.
	Unassigned int32 = 0
)

// DefaultCheckInterval is the number of queue pops between cancellation checks.
const DefaultCheckInterval = 4096

// Stage names the watershed stage in errors.
const Stage = "watershed"

// Sentinel errors for watershed delineation.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("watershed: grid is nil")
	// ErrBadID indicates an outlet id below 1.
	ErrBadID = errors.New("watershed: outlet id must be at least 1")
	// ErrDuplicateID indicates two outlets sharing an id.
	ErrDuplicateID = errors.New("watershed: duplicate outlet id")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("watershed: invalid option supplied")
)

// Outlet is a basin id and the cell its basin drains to.
type Outlet struct {
	ID   int32
	Cell grid.Cell
}

// Basin is the upstream area of one outlet.
type Basin struct {
	ID     int32
	Outlet grid.Cell
	// Cells holds the row-major indices of every cell draining to Outlet,
	// sorted ascending. Nil when the outlet was rejected.
	Cells []int
	// Bounds is the geographic extent of Cells, nil when Cells is empty.
	Bounds *geom.Bounds
	// Area is len(Cells) times the cell area of the grid's transform.
	Area float64
}

// Contains reports whether row-major index i belongs to the basin.
func (b Basin) Contains(i int) bool {
	_, ok := slices.BinarySearch(b.Cells, i)
	return ok
}

// Result is the output of Delineate.
type Result struct {
	// Labels assigns each cell its nearest downstream outlet id,
	// Unassigned or NoData.
	Labels *grid.Grid[int32]
	// Basins are listed in outlet order.
	Basins []Basin
	// Failures holds one *pourpoint.Error per rejected outlet.
	Failures []error

	byID map[int32]int
}

// Basin returns the basin with the given id.
func (r *Result) Basin(id int32) (Basin, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Basin{}, false
	}
	return r.Basins[i], true
}

// Label returns the label of cell c.
func (r *Result) Label(c grid.Cell) (int32, error) {
	return r.Labels.At(c.Row, c.Col)
}

// Option configures Delineate.
type Option func(*Options)

// Options holds the settings of a delineation run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
	// Workers bounds the number of outlets traced at once.
	Workers int
	// CheckInterval is the number of pops between cancellation checks.
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

// WithWorkers sets how many outlets are traced concurrently; n must be positive.
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
