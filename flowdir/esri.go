package flowdir

import (
	"fmt"

	"github.com/katalvlaran/terrain/grid"
)

// ESRINoData is the no-data value used by ToESRI.
const ESRINoData int32 = 255

// FromESRI converts an ArcGIS-encoded flow direction raster (E=1, SE=2, S=4,
// SW=8, W=16, NW=32, N=64, NE=128, 0 for no flow) to a direction grid.
// No-data codes become grid.DirNoData. Any other value is ErrUnknownCode.
func FromESRI(codes *grid.Grid[int32]) (*grid.Grid[grid.Direction], error) {
	if codes == nil {
		return nil, ErrNilGrid
	}
	out, err := grid.NewBuilder(codes, grid.DirNoData, codes.Transform())
	if err != nil {
		return nil, err
	}
	for i := 0; i < codes.Len(); i++ {
		if codes.IsNoData(i) {
			continue
		}
		d, ok := grid.FromESRICode(codes.Value(i))
		if !ok {
			return nil, fmt.Errorf("%w: %d at cell %s", ErrUnknownCode, codes.Value(i), codes.Cell(i))
		}
		out.Set(i, d)
	}
	return out.Build(), nil
}

// ToESRI encodes a direction grid with ArcGIS codes; no-data becomes ESRINoData.
func ToESRI(dirs *grid.Grid[grid.Direction]) (*grid.Grid[int32], error) {
	if dirs == nil {
		return nil, ErrNilGrid
	}
	out, err := grid.NewBuilder(dirs, ESRINoData, dirs.Transform())
	if err != nil {
		return nil, err
	}
	for i := 0; i < dirs.Len(); i++ {
		if dirs.IsNoData(i) {
			continue
		}
		out.Set(i, dirs.Value(i).ESRICode())
	}
	return out.Build(), nil
}
