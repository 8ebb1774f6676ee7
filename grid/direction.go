package grid

import (
	"fmt"
	"math"
)

// Direction is a D8 flow direction. The zero value is NoFlow.
type Direction uint8

const (
	// NoFlow marks a valid cell with no downstream neighbor: a grid outlet
	// (edge or no-data adjacent) or an unresolved cell.
	NoFlow Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
	// DirNoData is the no-data sentinel of direction grids. It is never a
	// valid flow direction.
	DirNoData Direction = 0xFF
)

// Directions lists the eight flow directions in tie-break priority order.
var Directions = [8]Direction{N, NE, E, SE, S, SW, W, NW}

// offsets[d] is the (dRow, dCol) step for direction d; row grows southward.
var offsets = [...][2]int{
	NoFlow: {0, 0},
	N:      {-1, 0},
	NE:     {-1, 1},
	E:      {0, 1},
	SE:     {1, 1},
	S:      {1, 0},
	SW:     {1, -1},
	W:      {0, -1},
	NW:     {-1, -1},
}

var names = [...]string{
	NoFlow: "NoFlow",
	N:      "N",
	NE:     "NE",
	E:      "E",
	SE:     "SE",
	S:      "S",
	SW:     "SW",
	W:      "W",
	NW:     "NW",
}

// ESRI flow direction codes, powers of two clockwise from east.
var esriCodes = [...]int32{
	NoFlow: 0,
	E:      1,
	SE:     2,
	S:      4,
	SW:     8,
	W:      16,
	NW:     32,
	N:      64,
	NE:     128,
}

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	return d >= N && d <= NW
}

// Offset returns the (dRow, dCol) step of d; (0, 0) for NoFlow and DirNoData.
func (d Direction) Offset() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// Distance returns the center-to-center length of a step in direction d,
// in cell units: 1 for orthogonal moves and √2 for diagonal ones.
func (d Direction) Distance() float64 {
	switch d {
	case NE, SE, SW, NW:
		return math.Sqrt2
	case N, E, S, W:
		return 1
	default:
		return 0
	}
}

// Opposite returns the direction pointing back; NoFlow and DirNoData map to themselves.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return Directions[(int(d-N)+4)%8]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == DirNoData {
		return "NoData"
	}
	if int(d) < len(names) {
		return names[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ESRICode returns the ArcGIS flow direction code of d (E=1 … NE=128, 0 for NoFlow).
// DirNoData returns -1.
func (d Direction) ESRICode() int32 {
	if d == DirNoData || int(d) >= len(esriCodes) {
		return -1
	}
	return esriCodes[d]
}

// FromESRICode converts an ArcGIS flow direction code to a Direction.
// It reports false for codes that are not 0 or a single power of two ≤ 128.
func FromESRICode(code int32) (Direction, bool) {
	for d, c := range esriCodes {
		if c == code {
			return Direction(d), true
		}
	}
	return NoFlow, false
}
