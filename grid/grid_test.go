package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestFrom2D_Errors verifies that From2D rejects empty or ragged inputs.
func TestFrom2D_Errors(t *testing.T) {
	cases := []struct {
		name string
		vals [][]float64
	}{
		{"EmptyRows", [][]float64{}},
		{"EmptyCols", [][]float64{{}}},
		{"NonRectangular", [][]float64{{1, 2}, {3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.From2D(tc.vals, -9999, grid.Identity())
			if !errors.Is(err, grid.ErrInvalidGrid) {
				t.Errorf("From2D(%v) error = %v; want %v", tc.vals, err, grid.ErrInvalidGrid)
			}
		})
	}
}

// TestFromSlice_Errors covers zero dimensions and length mismatch.
func TestFromSlice_Errors(t *testing.T) {
	_, err := grid.FromSlice(0, 3, []int{}, -1, grid.Identity())
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)

	_, err = grid.FromSlice(2, 2, []int{1, 2, 3}, -1, grid.Identity())
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)

	_, err = grid.New(3, -1, 0, grid.Identity())
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)
}

// TestFromSlice_Copies ensures the grid does not alias caller memory.
func TestFromSlice_Copies(t *testing.T) {
	data := []int{1, 2, 3, 4}
	g, err := grid.FromSlice(2, 2, data, -1, grid.Identity())
	require.NoError(t, err)

	data[0] = 99
	assert.Equal(t, 1, g.Value(0))

	vals := g.Values()
	vals[1] = 42
	assert.Equal(t, 2, g.Value(1))
}

// TestAccessors checks indexing, At and the row/col round trip.
func TestAccessors(t *testing.T) {
	g, err := grid.From2D([][]int{
		{1, 2, 3},
		{4, 5, 6},
	}, -1, grid.Identity())
	require.NoError(t, err)

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 5, g.Index(1, 2))
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, g.Cell(5))

	v, err := g.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = g.At(2, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = g.At(0, -1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)

	if diff := cmp.Diff([][]int{{1, 2, 3}, {4, 5, 6}}, g.Rows2D()); diff != "" {
		t.Errorf("Rows2D mismatch (-want +got):\n%s", diff)
	}
}

// TestIsNoData covers both sentinel and NaN no-data.
func TestIsNoData(t *testing.T) {
	nan := math.NaN()
	g, err := grid.From2D([][]float64{
		{1, -9999, nan},
	}, -9999, grid.Identity())
	require.NoError(t, err)

	assert.False(t, g.IsNoData(0))
	assert.True(t, g.IsNoData(1))
	assert.True(t, g.IsNoData(2))
	assert.Equal(t, 1, g.ValidCount())

	// NaN as the declared sentinel
	h, err := grid.From2D([][]float64{{nan, 3}}, nan, grid.Identity())
	require.NoError(t, err)
	assert.True(t, h.IsNoData(0))
	assert.False(t, h.IsNoData(1))
}

// TestCheckShape verifies dimension comparison across element types.
func TestCheckShape(t *testing.T) {
	a, _ := grid.New(2, 3, 0.0, grid.Identity())
	b, _ := grid.New(2, 3, grid.DirNoData, grid.Identity())
	c, _ := grid.New(3, 2, int64(-1), grid.Identity())

	assert.NoError(t, grid.CheckShape(a, b))
	assert.ErrorIs(t, grid.CheckShape(a, c), grid.ErrInvalidGrid)
}

// TestBuilder verifies that Build publishes and later writes panic.
func TestBuilder(t *testing.T) {
	shape, _ := grid.New(2, 2, 0, grid.Identity())
	b, err := grid.NewBuilder(shape, int64(-1), grid.Identity())
	require.NoError(t, err)

	assert.Equal(t, int64(-1), b.Get(3))
	b.Set(3, 7)
	g := b.Build()
	assert.Equal(t, int64(7), g.Value(3))
	assert.True(t, g.IsNoData(0))

	assert.PanicsWithValue(t, grid.ErrBuilderUsed, func() { b.Set(0, 1) })
}

// TestCellError verifies that CellError matches both its sentinel and
// ErrInvariantViolation.
func TestCellError(t *testing.T) {
	stageErr := errors.New("stage: broken")
	err := error(&grid.CellError{Stage: "test", Cell: grid.Cell{Row: 1, Col: 2}, Err: stageErr})

	assert.ErrorIs(t, err, stageErr)
	assert.ErrorIs(t, err, grid.ErrInvariantViolation)
	assert.Contains(t, err.Error(), "(1,2)")

	var ce *grid.CellError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, grid.Cell{Row: 1, Col: 2}, ce.Cell)
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestNeighbor_Clipping checks that edge cells lose out-of-grid neighbors.
func TestNeighbor_Clipping(t *testing.T) {
	g, _ := grid.New(3, 3, 0, grid.Identity())

	count := func(i int) int {
		n := 0
		for _, d := range grid.Directions {
			if _, ok := g.Neighbor(i, d); ok {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 8, count(4), "center")
	assert.Equal(t, 3, count(0), "corner")
	assert.Equal(t, 5, count(1), "edge")

	n, ok := g.Neighbor(4, grid.NE)
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 0, Col: 2}, g.Cell(n))

	_, ok = g.Neighbor(4, grid.NoFlow)
	assert.False(t, ok)
}

// TestIsOutlet covers edge cells, no-data neighbors and interior cells.
func TestIsOutlet(t *testing.T) {
	g, err := grid.From2D([][]int{
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, -1, 1},
		{1, 1, 1, 1, 1},
	}, -1, grid.Identity())
	require.NoError(t, err)

	assert.True(t, g.IsOutlet(g.Index(0, 2)), "edge")
	assert.False(t, g.IsOutlet(g.Index(1, 1)), "interior")
	assert.True(t, g.IsOutlet(g.Index(2, 2)), "diagonal to no-data")
	assert.False(t, g.IsOutlet(g.Index(3, 3)), "no-data itself")
}
