package grid

import "fmt"

// Grid is an immutable rows×cols raster of T values stored row-major.
// Values equal to NoData (or NaN, for floating-point T) are no-data cells.
type Grid[T comparable] struct {
	rows, cols int
	data       []T
	noData     T
	transform  Transform
}

// New returns a rows×cols grid with every cell set to noData.
// Returns ErrInvalidGrid if rows or cols is not positive.
func New[T comparable](rows, cols int, noData T, tr Transform) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d has no cells", ErrInvalidGrid, rows, cols)
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = noData
	}
	return &Grid[T]{rows: rows, cols: cols, data: data, noData: noData, transform: tr}, nil
}

// FromSlice builds a grid from row-major data, copying it.
// Returns ErrInvalidGrid if the dimensions are not positive or
// len(data) != rows*cols.
func FromSlice[T comparable](rows, cols int, data []T, noData T, tr Transform) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d has no cells", ErrInvalidGrid, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrInvalidGrid, len(data), rows, cols)
	}
	cp := make([]T, len(data))
	copy(cp, data)
	return &Grid[T]{rows: rows, cols: cols, data: cp, noData: noData, transform: tr}, nil
}

// From2D builds a grid from values[row][col], copying it.
// Returns ErrInvalidGrid if values is empty or ragged.
func From2D[T comparable](values [][]T, noData T, tr Transform) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("%w: input has no rows or no columns", ErrInvalidGrid)
	}
	rows, cols := len(values), len(values[0])
	data := make([]T, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidGrid, r, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Grid[T]{rows: rows, cols: cols, data: data, noData: noData, transform: tr}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.data) }

// NoData returns the no-data sentinel.
func (g *Grid[T]) NoData() T { return g.noData }

// Transform returns the affine cell-to-geographic transform.
func (g *Grid[T]) Transform() Transform { return g.transform }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index maps (row, col) to the row-major index row*cols+col.
// The caller must ensure the cell is in bounds.
func (g *Grid[T]) Index(row, col int) int {
	return row*g.cols + col
}

// Cell converts a row-major index back to (row, col).
func (g *Grid[T]) Cell(i int) Cell {
	return Cell{Row: i / g.cols, Col: i % g.cols}
}

// Value returns the value at row-major index i.
func (g *Grid[T]) Value(i int) T { return g.data[i] }

// At returns the value at (row, col), or ErrOutOfRange.
func (g *Grid[T]) At(row, col int) (T, error) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, g.rows, g.cols)
	}
	return g.data[g.Index(row, col)], nil
}

// IsNoData reports whether cell i holds the no-data sentinel or NaN.
func (g *Grid[T]) IsNoData(i int) bool {
	v := g.data[i]
	// v != v holds only for NaN.
	return v == g.noData || v != v
}

// ValidCount returns the number of cells that are not no-data.
func (g *Grid[T]) ValidCount() int {
	n := 0
	for i := range g.data {
		if !g.IsNoData(i) {
			n++
		}
	}
	return n
}

// Values returns a copy of the row-major cell values.
func (g *Grid[T]) Values() []T {
	cp := make([]T, len(g.data))
	copy(cp, g.data)
	return cp
}

// Rows2D returns a copy of the values as values[row][col].
func (g *Grid[T]) Rows2D() [][]T {
	out := make([][]T, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]T, g.cols)
		copy(out[r], g.data[r*g.cols:(r+1)*g.cols])
	}
	return out
}
