package fill

import (
	"container/heap"

	"github.com/katalvlaran/terrain/grid"
)

// Fill returns a copy of dem with every interior sink raised to its spill
// elevation. No-data cells are copied through and never enter the queue.
func Fill(dem *grid.Grid[float64], opts ...Option) (*grid.Grid[float64], error) {
	if dem == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	out, err := grid.NewBuilder(dem, dem.NoData(), dem.Transform())
	if err != nil {
		return nil, err
	}
	f := &flooder{
		dem:     dem,
		opts:    cfg,
		out:     out,
		visited: make([]bool, dem.Len()),
		pq:      make(cellPQ, 0, 2*(dem.Rows()+dem.Cols())),
	}
	f.seed()
	if err = f.flood(); err != nil {
		return nil, err
	}
	return out.Build(), nil
}

// flooder holds the mutable state of one priority-flood run.
type flooder struct {
	dem     *grid.Grid[float64]
	opts    Options
	out     *grid.Builder[float64]
	visited []bool
	pq      cellPQ
	seq     uint64
}

// seed pushes every outlet cell at its own elevation, in row-major order.
func (f *flooder) seed() {
	for i := 0; i < f.dem.Len(); i++ {
		if !f.dem.IsOutlet(i) {
			continue
		}
		z := f.dem.Value(i)
		f.visited[i] = true
		f.out.Set(i, z)
		f.push(i, z)
	}
}

func (f *flooder) push(i int, z float64) {
	heap.Push(&f.pq, cellItem{idx: i, z: z, seq: f.seq})
	f.seq++
}

// flood pops the lowest cell and raises its unvisited neighbors.
func (f *flooder) flood() error {
	pops := 0
	for f.pq.Len() > 0 {
		if pops%f.opts.CheckInterval == 0 {
			if err := f.opts.Ctx.Err(); err != nil {
				return err
			}
		}
		pops++

		c := heap.Pop(&f.pq).(cellItem)
		for _, d := range grid.Directions {
			n, ok := f.dem.Neighbor(c.idx, d)
			if !ok || f.visited[n] || f.dem.IsNoData(n) {
				continue
			}
			f.visited[n] = true
			z := f.dem.Value(n)
			if z < c.z {
				z = c.z
			}
			f.out.Set(n, z)
			f.push(n, z)
		}
	}
	return nil
}

// cellItem is a heap entry: cell index, its (filled) elevation and the
// insertion sequence used to break elevation ties.
type cellItem struct {
	idx int
	z   float64
	seq uint64
}

// cellPQ is a min-heap of cellItem ordered by (z, seq).
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].z != pq[j].z {
		return pq[i].z < pq[j].z
	}
	return pq[i].seq < pq[j].seq
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
