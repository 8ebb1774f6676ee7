package grid

// Neighbor returns the index of the neighbor of cell i in direction d,
// clipped at the grid edges. It reports false when the step leaves the grid
// or d is not a compass direction.
func (g *Grid[T]) Neighbor(i int, d Direction) (int, bool) {
	if !d.Valid() {
		return -1, false
	}
	dr, dc := d.Offset()
	r, c := i/g.cols+dr, i%g.cols+dc
	if !g.InBounds(r, c) {
		return -1, false
	}
	return r*g.cols + c, true
}

// IsEdge reports whether cell i lies on the outer border of the grid.
func (g *Grid[T]) IsEdge(i int) bool {
	r, c := i/g.cols, i%g.cols
	return r == 0 || c == 0 || r == g.rows-1 || c == g.cols-1
}

// IsOutlet reports whether valid cell i is terminal for flow: it lies on the
// grid edge or touches a no-data cell. No-data cells are never outlets.
func (g *Grid[T]) IsOutlet(i int) bool {
	if g.IsNoData(i) {
		return false
	}
	if g.IsEdge(i) {
		return true
	}
	for _, d := range Directions {
		if n, ok := g.Neighbor(i, d); ok && g.IsNoData(n) {
			return true
		}
	}
	return false
}
