package watershed

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ctessum/geom"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrain/grid"
	"github.com/katalvlaran/terrain/pourpoint"
)

// job is one outlet to trace. err is set when the outlet was rejected
// before tracing.
type job struct {
	Outlet
	err error
}

// Delineate traces the basin of every outlet over the direction grid dirs.
// Outlet ids must be at least 1 and unique. Outlets outside the grid or on
// no-data are reported in Result.Failures rather than failing the call.
func Delineate(dirs *grid.Grid[grid.Direction], outlets []Outlet, opts ...Option) (*Result, error) {
	if dirs == nil {
		return nil, ErrNilGrid
	}
	jobs := make([]job, len(outlets))
	for k, o := range outlets {
		jobs[k] = job{Outlet: o}
		p := pourpoint.PourPoint{ID: o.ID, Location: cellCenter(dirs.Transform(), o.Cell)}
		jobs[k].err = pourpoint.Check(dirs, p, o.Cell)
	}
	return run(dirs, jobs, opts)
}

// DelineatePoints locates each pour point on dirs and traces its basin.
// Points that cannot be located are reported in Result.Failures.
func DelineatePoints(dirs *grid.Grid[grid.Direction], points []pourpoint.PourPoint, opts ...Option) (*Result, error) {
	if dirs == nil {
		return nil, ErrNilGrid
	}
	jobs := make([]job, len(points))
	for k, p := range points {
		c, err := pourpoint.Locate(dirs, p)
		jobs[k] = job{Outlet: Outlet{ID: p.ID, Cell: c}, err: err}
	}
	return run(dirs, jobs, opts)
}

func run(dirs *grid.Grid[grid.Direction], jobs []job, opts []Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	res := &Result{
		Basins: make([]Basin, len(jobs)),
		byID:   make(map[int32]int, len(jobs)),
	}
	for k, j := range jobs {
		if j.ID < 1 {
			return nil, fmt.Errorf("%w: outlet %d has id %d", ErrBadID, k, j.ID)
		}
		if prev, dup := res.byID[j.ID]; dup {
			return nil, fmt.Errorf("%w: %d (outlets %d and %d)", ErrDuplicateID, j.ID, prev, k)
		}
		res.byID[j.ID] = k
		res.Basins[k] = Basin{ID: j.ID, Outlet: j.Cell}
		if j.err != nil {
			res.Failures = append(res.Failures, j.err)
		}
	}

	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.SetLimit(cfg.Workers)
	for k, j := range jobs {
		if j.err != nil {
			continue
		}
		g.Go(func() error {
			t := &tracer{dirs: dirs, ctx: ctx, interval: cfg.CheckInterval}
			cells, err := t.trace(dirs.Index(j.Cell.Row, j.Cell.Col))
			if err != nil {
				return err
			}
			res.Basins[k].Cells = cells
			res.Basins[k].Bounds = bounds(dirs, cells)
			res.Basins[k].Area = float64(len(cells)) * dirs.Transform().CellArea()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	labels, err := label(dirs, res.Basins)
	if err != nil {
		return nil, err
	}
	res.Labels = labels
	return res, nil
}

// label merges the basins into one grid. Larger basins are written first so
// that nested basins overwrite them; among equal sizes later outlets are
// written first, so an outlet listed twice keeps its first id.
func label(dirs *grid.Grid[grid.Direction], basins []Basin) (*grid.Grid[int32], error) {
	out, err := grid.NewBuilder(dirs, NoData, dirs.Transform())
	if err != nil {
		return nil, err
	}
	for i := 0; i < dirs.Len(); i++ {
		if !dirs.IsNoData(i) {
			out.Set(i, Unassigned)
		}
	}

	order := make([]int, len(basins))
	for k := range order {
		order[k] = k
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(len(basins[b].Cells), len(basins[a].Cells)); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	})
	for _, k := range order {
		for _, i := range basins[k].Cells {
			out.Set(i, basins[k].ID)
		}
	}
	return out.Build(), nil
}

// bounds returns the geographic extent of cells, or nil when there are none.
func bounds(dirs *grid.Grid[grid.Direction], cells []int) *geom.Bounds {
	if len(cells) == 0 {
		return nil
	}
	// cells is sorted, so the first and last give the row range
	minR, maxR := cells[0]/dirs.Cols(), cells[len(cells)-1]/dirs.Cols()
	minC, maxC := dirs.Cols(), -1
	for _, i := range cells {
		c := i % dirs.Cols()
		minC = min(minC, c)
		maxC = max(maxC, c)
	}

	tr := dirs.Transform()
	b := geom.NewBounds()
	for _, rc := range [][2]int{{minR, minC}, {minR, maxC + 1}, {maxR + 1, minC}, {maxR + 1, maxC + 1}} {
		x, y := tr.CellCorner(rc[0], rc[1])
		b.Extend(geom.Point{X: x, Y: y}.Bounds())
	}
	return b
}

func cellCenter(tr grid.Transform, c grid.Cell) geom.Point {
	x, y := tr.CellCenter(c.Row, c.Col)
	return geom.Point{X: x, Y: y}
}
