package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidGrid indicates a grid with no cells, ragged input, or a shape
	// mismatch between stages.
	ErrInvalidGrid = errors.New("grid: invalid grid")
	// ErrOutOfRange indicates a row/col pair outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")
	// ErrSingularTransform indicates an affine transform with zero determinant.
	ErrSingularTransform = errors.New("grid: transform is not invertible")
	// ErrInvariantViolation indicates a bug in an upstream stage: a cycle in the
	// flow graph or a flat that could not be resolved.
	ErrInvariantViolation = errors.New("grid: internal invariant violated")
	// ErrBuilderUsed indicates a Builder was written to after Build.
	ErrBuilderUsed = errors.New("grid: builder already built")
)

// Cell is a (row, col) index pair.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Shape is implemented by every Grid regardless of element type, so that
// stages can compare dimensions of grids holding different values.
type Shape interface {
	Rows() int
	Cols() int
}

// CheckShape returns ErrInvalidGrid when a and b differ in dimensions.
func CheckShape(a, b Shape) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%w: shape %dx%d does not match %dx%d",
			ErrInvalidGrid, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	return nil
}

// CellError reports an invariant violation at a specific cell.
// It unwraps to both Err and ErrInvariantViolation.
type CellError struct {
	Stage string // stage that detected the violation
	Cell  Cell   // offending cell
	Err   error  // stage-specific sentinel
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("%s: %v at cell %s", e.Stage, e.Err, e.Cell)
}

// Unwrap exposes the stage sentinel and ErrInvariantViolation to errors.Is.
func (e *CellError) Unwrap() []error {
	return []error{e.Err, ErrInvariantViolation}
}
