package pourpoint

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/terrain/grid"
)

// Sentinel errors for pour-point lookup.
var (
	// ErrInvalidPourPoint matches every *Error.
	ErrInvalidPourPoint = errors.New("pourpoint: invalid pour point")
	// ErrBadRadius indicates a negative snap radius.
	ErrBadRadius = errors.New("pourpoint: snap radius must be non-negative")
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("pourpoint: grid is nil")
)

// PourPoint is a requested outlet: a basin id and a geographic location in
// the grid's coordinate system.
type PourPoint struct {
	ID       int32
	Name     string
	Location geom.Point
}

// Resolved pairs a pour point with the cell it falls in.
type Resolved struct {
	PourPoint
	Cell grid.Cell
}

// Reason says why a pour point was rejected.
type Reason int

const (
	// OutOfBounds: the location or cell lies outside the grid.
	OutOfBounds Reason = iota + 1
	// NoData: the cell holds no-data.
	NoData
	// BadTransform: the grid's transform cannot be inverted.
	BadTransform
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case OutOfBounds:
		return "outside grid extent"
	case NoData:
		return "on a no-data cell"
	case BadTransform:
		return "grid transform is not invertible"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Error reports a rejected pour point. It unwraps to ErrInvalidPourPoint
// and, for BadTransform, to the transform error as well.
type Error struct {
	ID     int32
	Name   string
	Point  geom.Point
	Cell   grid.Cell
	Reason Reason
	Err    error
}

// Error implements error.
func (e *Error) Error() string {
	label := fmt.Sprintf("%d", e.ID)
	if e.Name != "" {
		label = fmt.Sprintf("%d (%s)", e.ID, e.Name)
	}
	return fmt.Sprintf("pourpoint: %s at (%g, %g) cell %s: %s", label, e.Point.X, e.Point.Y, e.Cell, e.Reason)
}

// Unwrap exposes ErrInvalidPourPoint and any underlying cause.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidPourPoint, e.Err}
	}
	return []error{ErrInvalidPourPoint}
}
