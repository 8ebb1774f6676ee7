package fill_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain/fill"
	"github.com/katalvlaran/terrain/grid"
)

const noData = -9999.0

func mustGrid(t testing.TB, vals [][]float64) *grid.Grid[float64] {
	t.Helper()
	g, err := grid.From2D(vals, noData, grid.Identity())
	require.NoError(t, err)
	return g
}

// randomDEM returns a rows×cols DEM of uniform noise in [0,100) with roughly
// holeRate of the cells set to no-data.
func randomDEM(t testing.TB, rng *rand.Rand, rows, cols int, holeRate float64) *grid.Grid[float64] {
	t.Helper()
	data := make([]float64, rows*cols)
	for i := range data {
		if rng.Float64() < holeRate {
			data[i] = noData
			continue
		}
		data[i] = math.Round(rng.Float64()*1000) / 10
	}
	g, err := grid.FromSlice(rows, cols, data, noData, grid.Identity())
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestFill_SingleSink raises a lone interior pit to its lowest spill point.
func TestFill_SingleSink(t *testing.T) {
	dem := mustGrid(t, [][]float64{
		{5, 5, 5},
		{5, 1, 4},
		{5, 5, 5},
	})
	filled, err := fill.Fill(dem)
	require.NoError(t, err)

	want := [][]float64{
		{5, 5, 5},
		{5, 4, 4},
		{5, 5, 5},
	}
	if diff := cmp.Diff(want, filled.Rows2D()); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
}

// TestFill_Depression fills a multi-cell basin to the level of its outlet
// while leaving an interior peak untouched.
func TestFill_Depression(t *testing.T) {
	dem := mustGrid(t, [][]float64{
		{9, 9, 9, 9, 9},
		{9, 2, 3, 4, 9},
		{9, 3, 1, 12, 9},
		{9, 4, 5, 6, 9},
		{9, 9, 8, 9, 9},
	})
	filled, err := fill.Fill(dem)
	require.NoError(t, err)

	want := [][]float64{
		{9, 9, 9, 9, 9},
		{9, 8, 8, 8, 9},
		{9, 8, 8, 12, 9},
		{9, 8, 8, 8, 9},
		{9, 9, 8, 9, 9},
	}
	if diff := cmp.Diff(want, filled.Rows2D()); diff != "" {
		t.Errorf("Fill mismatch (-want +got):\n%s", diff)
	}
}

// TestFill_NoDataHole treats cells beside an interior no-data hole as outlets:
// the pit next to the hole drains into it and is not raised.
func TestFill_NoDataHole(t *testing.T) {
	dem := mustGrid(t, [][]float64{
		{9, 9, 9, 9, 9},
		{9, 7, 7, 7, 9},
		{9, 7, 1, noData, 9},
		{9, 7, 7, 7, 9},
		{9, 9, 9, 9, 9},
	})
	filled, err := fill.Fill(dem)
	require.NoError(t, err)

	v, _ := filled.At(2, 2)
	assert.Equal(t, 1.0, v)
	assert.True(t, filled.IsNoData(filled.Index(2, 3)))
	assert.Equal(t, dem.Values(), filled.Values())
}

// TestFill_AllNoData returns an all no-data grid without error.
func TestFill_AllNoData(t *testing.T) {
	dem := mustGrid(t, [][]float64{{noData, noData}, {noData, noData}})
	filled, err := fill.Fill(dem)
	require.NoError(t, err)
	assert.Equal(t, 0, filled.ValidCount())
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestFill_Properties checks on random DEMs that Fill never lowers a cell,
// is idempotent, and preserves no-data.
func TestFill_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		dem := randomDEM(t, rng, 8+rng.Intn(20), 8+rng.Intn(20), 0.05)

		once, err := fill.Fill(dem)
		require.NoError(t, err)
		twice, err := fill.Fill(once)
		require.NoError(t, err)

		require.Equal(t, once.Values(), twice.Values(), "trial %d: Fill is not idempotent", trial)
		for i := 0; i < dem.Len(); i++ {
			if dem.IsNoData(i) {
				require.True(t, once.IsNoData(i), "trial %d: no-data cell %d gained a value", trial, i)
				continue
			}
			require.GreaterOrEqual(t, once.Value(i), dem.Value(i), "trial %d: cell %d lowered", trial, i)
		}
	}
}

// TestFill_NoInteriorSinks verifies that after filling every non-outlet cell
// has a neighbor at or below its elevation.
func TestFill_NoInteriorSinks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	dem := randomDEM(t, rng, 30, 30, 0.02)
	filled, err := fill.Fill(dem)
	require.NoError(t, err)

	for i := 0; i < filled.Len(); i++ {
		if filled.IsNoData(i) || filled.IsOutlet(i) {
			continue
		}
		ok := false
		for _, d := range grid.Directions {
			n, _ := filled.Neighbor(i, d)
			if filled.Value(n) <= filled.Value(i) {
				ok = true
				break
			}
		}
		assert.True(t, ok, "cell %v is a sink after Fill", filled.Cell(i))
	}
}

//----------------------------------------------------------------------------//
// Options and errors
//----------------------------------------------------------------------------//

// TestFill_Errors covers nil input and bad options.
func TestFill_Errors(t *testing.T) {
	_, err := fill.Fill(nil)
	assert.ErrorIs(t, err, fill.ErrNilGrid)

	dem := mustGrid(t, [][]float64{{1}})
	_, err = fill.Fill(dem, fill.WithCheckInterval(0))
	assert.ErrorIs(t, err, fill.ErrOptionViolation)
}

// TestFill_Cancelled returns the context error and no grid.
func TestFill_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dem := mustGrid(t, [][]float64{{1, 2}, {3, 4}})
	filled, err := fill.Fill(dem, fill.WithContext(ctx), fill.WithCheckInterval(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, filled)
}

// TestSummarize reports raised cells, depths and volume.
func TestSummarize(t *testing.T) {
	dem := mustGrid(t, [][]float64{
		{9, 9, 9, 9},
		{9, 5, 7, 9},
		{9, 9, 8, 9},
	})
	filled, err := fill.Fill(dem)
	require.NoError(t, err)

	s, err := fill.Summarize(dem, filled)
	require.NoError(t, err)
	assert.Equal(t, 12, s.ValidCells)
	assert.Equal(t, 2, s.RaisedCells)
	assert.Equal(t, 3.0, s.MaxDepth)
	assert.Equal(t, 2.0, s.MeanDepth)
	assert.Equal(t, 4.0, s.Volume)

	_, err = fill.Summarize(dem, mustGrid(t, [][]float64{{1}}))
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)

	s, err = fill.Summarize(filled, filled)
	require.NoError(t, err)
	assert.Zero(t, s.RaisedCells)
}
