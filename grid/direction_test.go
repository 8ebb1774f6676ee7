package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/terrain/grid"
)

// TestDirection_Geometry checks offsets, distances and opposites.
func TestDirection_Geometry(t *testing.T) {
	cases := []struct {
		d        grid.Direction
		dr, dc   int
		dist     float64
		opposite grid.Direction
	}{
		{grid.N, -1, 0, 1, grid.S},
		{grid.NE, -1, 1, math.Sqrt2, grid.SW},
		{grid.E, 0, 1, 1, grid.W},
		{grid.SE, 1, 1, math.Sqrt2, grid.NW},
		{grid.S, 1, 0, 1, grid.N},
		{grid.SW, 1, -1, math.Sqrt2, grid.NE},
		{grid.W, 0, -1, 1, grid.E},
		{grid.NW, -1, -1, math.Sqrt2, grid.SE},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			dr, dc := tc.d.Offset()
			assert.Equal(t, tc.dr, dr)
			assert.Equal(t, tc.dc, dc)
			assert.Equal(t, tc.dist, tc.d.Distance())
			assert.Equal(t, tc.opposite, tc.d.Opposite())
			assert.True(t, tc.d.Valid())
		})
	}

	assert.False(t, grid.NoFlow.Valid())
	assert.False(t, grid.DirNoData.Valid())
	assert.Equal(t, grid.NoFlow, grid.NoFlow.Opposite())
	assert.Equal(t, "NoData", grid.DirNoData.String())
}

// TestDirection_ESRI round-trips every direction through ArcGIS codes.
func TestDirection_ESRI(t *testing.T) {
	want := map[grid.Direction]int32{
		grid.E: 1, grid.SE: 2, grid.S: 4, grid.SW: 8,
		grid.W: 16, grid.NW: 32, grid.N: 64, grid.NE: 128,
		grid.NoFlow: 0,
	}
	for d, code := range want {
		assert.Equal(t, code, d.ESRICode(), d.String())
		back, ok := grid.FromESRICode(code)
		assert.True(t, ok)
		assert.Equal(t, d, back)
	}
	assert.Equal(t, int32(-1), grid.DirNoData.ESRICode())

	_, ok := grid.FromESRICode(3)
	assert.False(t, ok)
}
