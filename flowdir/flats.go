package flowdir

import (
	"github.com/katalvlaran/terrain/grid"
)

// resolver routes flat cells toward the nearest resolved cell of equal
// elevation with a multi-source breadth-first search.
type resolver struct {
	dem      *grid.Grid[float64]
	out      *grid.Builder[grid.Direction]
	opts     Options
	resolved []bool
	queue    []int
}

// resolve seeds the queue, drains it and reports the first cell that is
// still unresolved, if any.
func (r *resolver) resolve() error {
	n := r.dem.Len()
	r.resolved = make([]bool, n)
	flats := 0
	for i := 0; i < n; i++ {
		if r.dem.IsNoData(i) {
			continue
		}
		if r.out.Get(i).Valid() || r.dem.IsOutlet(i) {
			r.resolved[i] = true
			continue
		}
		flats++
	}
	if flats == 0 {
		return nil
	}

	r.seed()
	if err := r.loop(); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if !r.dem.IsNoData(i) && !r.resolved[i] {
			return &grid.CellError{Stage: Stage, Cell: r.dem.Cell(i), Err: ErrUnresolvedFlat}
		}
	}
	return nil
}

// seed enqueues, in row-major order, every resolved cell that borders an
// unresolved cell of the same elevation.
func (r *resolver) seed() {
	for i := 0; i < r.dem.Len(); i++ {
		if !r.resolved[i] {
			continue
		}
		for _, d := range grid.Directions {
			if n, ok := r.dem.Neighbor(i, d); ok && r.pending(n, i) {
				r.queue = append(r.queue, i)
				break
			}
		}
	}
}

// pending reports whether n is an unresolved valid cell level with c.
func (r *resolver) pending(n, c int) bool {
	return !r.resolved[n] && !r.dem.IsNoData(n) && r.dem.Value(n) == r.dem.Value(c)
}

// loop pops cells in FIFO order and points each pending neighbor back at
// the popped cell.
func (r *resolver) loop() error {
	for qi := 0; qi < len(r.queue); qi++ {
		if qi%r.opts.CheckInterval == 0 {
			if err := r.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		c := r.queue[qi]
		for _, d := range grid.Directions {
			n, ok := r.dem.Neighbor(c, d)
			if !ok || !r.pending(n, c) {
				continue
			}
			r.out.Set(n, d.Opposite())
			r.resolved[n] = true
			r.queue = append(r.queue, n)
		}
	}
	return nil
}
