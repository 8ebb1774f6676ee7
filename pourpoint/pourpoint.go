package pourpoint

import (
	"github.com/katalvlaran/terrain/grid"
)

// Locate returns the cell of g containing p.Location.
// The returned error is an *Error when p is outside the grid or on no-data.
func Locate[T comparable](g *grid.Grid[T], p PourPoint) (grid.Cell, error) {
	if g == nil {
		return grid.Cell{}, ErrNilGrid
	}
	c, err := g.Transform().Locate(p.Location.X, p.Location.Y)
	if err != nil {
		return grid.Cell{}, &Error{ID: p.ID, Name: p.Name, Point: p.Location, Reason: BadTransform, Err: err}
	}
	if err = Check(g, p, c); err != nil {
		return c, err
	}
	return c, nil
}

// Check validates that c is inside g and not no-data.
func Check[T comparable](g *grid.Grid[T], p PourPoint, c grid.Cell) error {
	if !g.InBounds(c.Row, c.Col) {
		return &Error{ID: p.ID, Name: p.Name, Point: p.Location, Cell: c, Reason: OutOfBounds}
	}
	if g.IsNoData(g.Index(c.Row, c.Col)) {
		return &Error{ID: p.ID, Name: p.Name, Point: p.Location, Cell: c, Reason: NoData}
	}
	return nil
}

// Resolve locates every point, returning the successes in input order and
// one error per failed point.
func Resolve[T comparable](g *grid.Grid[T], points []PourPoint) ([]Resolved, []error) {
	if g == nil {
		return nil, []error{ErrNilGrid}
	}
	resolved := make([]Resolved, 0, len(points))
	var failures []error
	for _, p := range points {
		c, err := Locate(g, p)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		resolved = append(resolved, Resolved{PourPoint: p, Cell: c})
	}
	return resolved, failures
}

// Snap returns the cell of highest accumulation within radius cells
// (Chebyshev distance) of c. The current cell wins ties; other ties go to
// the first cell in row-major order. No-data cells are never chosen.
func Snap(acc *grid.Grid[int64], c grid.Cell, radius int) (grid.Cell, error) {
	if acc == nil {
		return c, ErrNilGrid
	}
	if radius < 0 {
		return c, ErrBadRadius
	}
	if !acc.InBounds(c.Row, c.Col) {
		return c, &Error{Cell: c, Reason: OutOfBounds}
	}

	best, bestVal := c, int64(-1)
	if i := acc.Index(c.Row, c.Col); !acc.IsNoData(i) {
		bestVal = acc.Value(i)
	}
	for r := c.Row - radius; r <= c.Row+radius; r++ {
		for col := c.Col - radius; col <= c.Col+radius; col++ {
			if !acc.InBounds(r, col) {
				continue
			}
			i := acc.Index(r, col)
			if acc.IsNoData(i) {
				continue
			}
			if v := acc.Value(i); v > bestVal {
				best, bestVal = grid.Cell{Row: r, Col: col}, v
			}
		}
	}
	return best, nil
}
