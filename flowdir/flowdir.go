package flowdir

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrain/grid"
)

// Compute returns the D8 flow direction grid of a filled DEM.
// See the package documentation for tie-break and flat rules.
func Compute(filled *grid.Grid[float64], opts ...Option) (*grid.Grid[grid.Direction], error) {
	if filled == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	out, err := grid.NewBuilder(filled, grid.DirNoData, filled.Transform())
	if err != nil {
		return nil, err
	}
	if err = steepest(filled, out, cfg); err != nil {
		return nil, err
	}
	r := &resolver{
		dem:  filled,
		out:  out,
		opts: cfg,
	}
	if err = r.resolve(); err != nil {
		return nil, err
	}
	return out.Build(), nil
}

// steepest fills out with the steepest-descent direction of every cell,
// splitting the rows into bands processed on a bounded errgroup.
// Cells without a lower neighbor are left as NoFlow for the resolver.
func steepest(dem *grid.Grid[float64], out *grid.Builder[grid.Direction], cfg Options) error {
	g, ctx := errgroup.WithContext(cfg.Ctx)
	g.SetLimit(cfg.Workers)

	rows := dem.Rows()
	band := rows / (cfg.Workers * 4)
	if band < 1 {
		band = 1
	}
	for lo := 0; lo < rows; lo += band {
		hi := min(lo+band, rows)
		g.Go(func() error {
			for r := lo; r < hi; r++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for c := 0; c < dem.Cols(); c++ {
					i := dem.Index(r, c)
					if dem.IsNoData(i) {
						continue
					}
					out.Set(i, descent(dem, i))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// descent returns the steepest downslope direction of valid cell i,
// or NoFlow for outlets and cells with no lower neighbor.
func descent(dem *grid.Grid[float64], i int) grid.Direction {
	if dem.IsOutlet(i) {
		return grid.NoFlow
	}
	z := dem.Value(i)
	best, dir := 0.0, grid.NoFlow
	for _, d := range grid.Directions {
		n, _ := dem.Neighbor(i, d) // interior, non-outlet: every neighbor exists and is valid
		drop := z - dem.Value(n)
		if drop <= 0 {
			continue
		}
		// strictly greater keeps the earlier direction on ties
		if s := drop / d.Distance(); s > best {
			best, dir = s, d
		}
	}
	return dir
}

// Downstream returns the cell that i drains into. It reports false when i
// is NoFlow or no-data, or its direction leaves the grid or enters no-data.
func Downstream(dirs *grid.Grid[grid.Direction], i int) (int, bool) {
	d := dirs.Value(i)
	if !d.Valid() {
		return -1, false
	}
	n, ok := dirs.Neighbor(i, d)
	if !ok || dirs.IsNoData(n) {
		return -1, false
	}
	return n, true
}

// DrainsInto reports whether cell u drains directly into cell c.
func DrainsInto(dirs *grid.Grid[grid.Direction], u, c int) bool {
	n, ok := Downstream(dirs, u)
	return ok && n == c
}
