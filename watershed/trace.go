package watershed

import (
	"context"
	"slices"

	"github.com/katalvlaran/terrain/grid"
)

// tracer walks the flow graph upstream from one outlet.
type tracer struct {
	dirs     *grid.Grid[grid.Direction]
	ctx      context.Context
	interval int
	visited  []bool
	queue    []int
}

// trace returns the sorted indices of every cell draining to outlet,
// outlet included.
func (t *tracer) trace(outlet int) ([]int, error) {
	t.visited = make([]bool, t.dirs.Len())
	t.enqueue(outlet)
	if err := t.loop(); err != nil {
		return nil, err
	}
	cells := t.queue
	slices.Sort(cells)
	return cells, nil
}

func (t *tracer) enqueue(i int) {
	t.visited[i] = true
	t.queue = append(t.queue, i)
}

// loop pops cells in FIFO order. The queue is never truncated, so once it
// is drained it holds the whole basin.
func (t *tracer) loop() error {
	for qi := 0; qi < len(t.queue); qi++ {
		if qi%t.interval == 0 {
			if err := t.ctx.Err(); err != nil {
				return err
			}
		}
		c := t.queue[qi]
		for _, d := range grid.Directions {
			n, ok := t.dirs.Neighbor(c, d)
			if !ok || t.visited[n] {
				continue
			}
			// n lies d of c, so it drains into c when it points back
			if t.dirs.Value(n) == d.Opposite() {
				t.enqueue(n)
			}
		}
	}
	return nil
}
