package accumulation

import (
	"github.com/katalvlaran/terrain/flowdir"
	"github.com/katalvlaran/terrain/grid"
)

// topoSorter holds the state of one Kahn traversal over a direction grid.
type topoSorter struct {
	dirs   *grid.Grid[grid.Direction]
	opts   Options
	indeg  []int32
	order  []int
	valid  int
	queued []bool
}

// topologicalOrder returns every valid cell so that each cell precedes the
// cell it drains into. A cycle yields a *grid.CellError wrapping ErrCycle.
func topologicalOrder(dirs *grid.Grid[grid.Direction], opts Options) ([]int, error) {
	t := &topoSorter{
		dirs:   dirs,
		opts:   opts,
		indeg:  make([]int32, dirs.Len()),
		queued: make([]bool, dirs.Len()),
	}
	t.countInDegrees()
	if err := t.drain(); err != nil {
		return nil, err
	}
	if len(t.order) < t.valid {
		return nil, t.cycleError()
	}
	return t.order, nil
}

// countInDegrees counts upstream contributors and queues the sources.
func (t *topoSorter) countInDegrees() {
	for i := 0; i < t.dirs.Len(); i++ {
		if t.dirs.IsNoData(i) {
			continue
		}
		t.valid++
		if n, ok := flowdir.Downstream(t.dirs, i); ok {
			t.indeg[n]++
		}
	}
	t.order = make([]int, 0, t.valid)
	for i := 0; i < t.dirs.Len(); i++ {
		if !t.dirs.IsNoData(i) && t.indeg[i] == 0 {
			t.push(i)
		}
	}
}

func (t *topoSorter) push(i int) {
	t.queued[i] = true
	t.order = append(t.order, i)
}

// drain pops sources in FIFO order; order doubles as the queue.
func (t *topoSorter) drain() error {
	for qi := 0; qi < len(t.order); qi++ {
		if qi%t.opts.CheckInterval == 0 {
			if err := t.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		n, ok := flowdir.Downstream(t.dirs, t.order[qi])
		if !ok {
			continue
		}
		t.indeg[n]--
		if t.indeg[n] == 0 {
			t.push(n)
		}
	}
	return nil
}

// cycleError reports the first unprocessed cell in row-major order.
func (t *topoSorter) cycleError() error {
	for i := 0; i < t.dirs.Len(); i++ {
		if !t.dirs.IsNoData(i) && !t.queued[i] {
			return &grid.CellError{Stage: Stage, Cell: t.dirs.Cell(i), Err: ErrCycle}
		}
	}
	// unreachable: len(order) < valid implies an unqueued valid cell
	return &grid.CellError{Stage: Stage, Err: ErrCycle}
}
