package grid

import (
	"fmt"
	"math"
)

// Transform is an affine mapping from cell space to geographic space, with
// coefficients in GDAL order:
//
//	x = OriginX + col*PixelWidth  + row*RowRotation
//	y = OriginY + col*ColRotation + row*PixelHeight
//
// (row, col) here are continuous; cell (r, c) spans [r, r+1) × [c, c+1).
// For a north-up raster RowRotation = ColRotation = 0 and PixelHeight < 0.
type Transform struct {
	OriginX, PixelWidth, RowRotation  float64
	OriginY, ColRotation, PixelHeight float64
}

// Identity returns the transform x = col, y = row.
func Identity() Transform {
	return Transform{PixelWidth: 1, PixelHeight: 1}
}

// NorthUp returns the usual transform of a north-up raster whose upper-left
// corner is (originX, originY) and whose cells are cellSize wide and tall.
func NorthUp(originX, originY, cellSize float64) Transform {
	return Transform{
		OriginX:     originX,
		PixelWidth:  cellSize,
		OriginY:     originY,
		PixelHeight: -cellSize,
	}
}

// Apply maps continuous cell coordinates (row, col) to (x, y).
func (t Transform) Apply(row, col float64) (x, y float64) {
	x = t.OriginX + col*t.PixelWidth + row*t.RowRotation
	y = t.OriginY + col*t.ColRotation + row*t.PixelHeight
	return x, y
}

// CellCorner returns the geographic position of the upper-left corner of (row, col).
func (t Transform) CellCorner(row, col int) (x, y float64) {
	return t.Apply(float64(row), float64(col))
}

// CellCenter returns the geographic position of the center of (row, col).
func (t Transform) CellCenter(row, col int) (x, y float64) {
	return t.Apply(float64(row)+0.5, float64(col)+0.5)
}

// CellArea returns the area of one cell in geographic units.
func (t Transform) CellArea() float64 {
	return math.Abs(t.PixelWidth*t.PixelHeight - t.RowRotation*t.ColRotation)
}

// Invert returns the mapping from (x, y) back to continuous (row, col),
// or ErrSingularTransform when the determinant is zero or not finite.
func (t Transform) Invert() (Inverse, error) {
	det := t.PixelWidth*t.PixelHeight - t.RowRotation*t.ColRotation
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Inverse{}, fmt.Errorf("%w: determinant %v", ErrSingularTransform, det)
	}
	return Inverse{t: t, det: det}, nil
}

// Inverse maps geographic coordinates back to continuous cell coordinates.
type Inverse struct {
	t   Transform
	det float64
}

// Apply returns continuous (row, col) for the geographic point (x, y).
func (inv Inverse) Apply(x, y float64) (row, col float64) {
	t := inv.t
	dx, dy := x-t.OriginX, y-t.OriginY
	col = (dx*t.PixelHeight - dy*t.RowRotation) / inv.det
	row = (dy*t.PixelWidth - dx*t.ColRotation) / inv.det
	return row, col
}

// Locate returns the cell containing (x, y). The result may be outside the
// grid; callers check it with InBounds.
func (t Transform) Locate(x, y float64) (Cell, error) {
	inv, err := t.Invert()
	if err != nil {
		return Cell{}, err
	}
	r, c := inv.Apply(x, y)
	if math.IsNaN(r) || math.IsNaN(c) || math.IsInf(r, 0) || math.IsInf(c, 0) {
		return Cell{}, fmt.Errorf("%w: (%v,%v) maps to non-finite cell", ErrOutOfRange, x, y)
	}
	// clamp to int range before conversion; anything this far out is off-grid anyway
	return Cell{Row: floorInt(r), Col: floorInt(c)}, nil
}

func floorInt(v float64) int {
	const limit = 1 << 53
	v = math.Floor(v)
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return int(v)
}
