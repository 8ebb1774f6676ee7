// Package grid is the shared raster abstraction of terrain: an immutable,
// row-major 2D buffer of cell values with a no-data sentinel and an affine
// transform to geographic coordinates.
//
// What:
//
//   - Grid[T] holds rows×cols values in a flat slice indexed by row*cols+col.
//   - Builder[T] is the only way to write cells; Build publishes an immutable grid.
//   - Transform maps (row, col) to (x, y) and back (GDAL coefficient order).
//   - Direction encodes the D8 flow model: NoFlow plus eight compass directions,
//     listed in Directions in tie-break priority order N, NE, E, SE, S, SW, W, NW.
//
// Why:
//
//   - Every stage (fill, flowdir, accumulation, watershed) reads the previous
//     stage's grid without mutating it and publishes its own.
//   - A flat buffer keeps priority-flood and traversal loops cache friendly.
//
// No-data:
//
//   - A cell is no-data when it equals the grid's sentinel, or is NaN for
//     floating-point grids. Derived grids carry no-data forward explicitly.
//
// Complexity:
//
//   - Construction:  O(rows×cols) time and memory (input is copied).
//   - Accessors:     O(1).
//
// Errors:
//
//   - ErrInvalidGrid:        zero cells, ragged rows, data length or shape mismatch.
//   - ErrOutOfRange:         row/col outside the grid.
//   - ErrSingularTransform:  affine transform cannot be inverted.
//   - ErrInvariantViolation: internal stage invariant broken (see CellError).
package grid
