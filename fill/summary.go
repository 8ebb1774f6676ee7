package fill

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/terrain/grid"
)

// Summary describes how much a Fill run changed a DEM.
type Summary struct {
	ValidCells  int     // cells that are not no-data
	RaisedCells int     // cells whose elevation increased
	MaxDepth    float64 // largest increase, 0 when nothing was raised
	MeanDepth   float64 // mean increase over raised cells
	Volume      float64 // Σ depth × cell area, in transform units
}

// Summarize compares a DEM with its filled counterpart.
// Returns grid.ErrInvalidGrid when the shapes differ.
func Summarize(original, filled *grid.Grid[float64]) (Summary, error) {
	if original == nil || filled == nil {
		return Summary{}, ErrNilGrid
	}
	if err := grid.CheckShape(original, filled); err != nil {
		return Summary{}, err
	}

	var s Summary
	depths := make([]float64, 0)
	for i := 0; i < original.Len(); i++ {
		if original.IsNoData(i) {
			continue
		}
		s.ValidCells++
		if d := filled.Value(i) - original.Value(i); d > 0 {
			depths = append(depths, d)
		}
	}
	s.RaisedCells = len(depths)
	if s.RaisedCells == 0 {
		return s, nil
	}
	s.MaxDepth = floats.Max(depths)
	s.MeanDepth = stat.Mean(depths, nil)
	s.Volume = floats.Sum(depths) * original.Transform().CellArea()
	return s, nil
}
