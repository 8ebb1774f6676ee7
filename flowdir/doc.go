// Package flowdir assigns every cell of a filled elevation grid a single D8
// flow direction.
//
// What:
//
//   - Steepest descent: each cell drains to the neighbor with the largest
//     drop/distance, where distance is 1 for orthogonal and √2 for diagonal
//     neighbors. Equal slopes keep the earlier direction in the priority
//     order N, NE, E, SE, S, SW, W, NW.
//   - Flat resolution: cells with no lower neighbor are resolved by a
//     multi-source breadth-first pass seeded from resolved cells at the same
//     elevation, so each flat cell drains toward the nearest edge of its flat
//     that already has an exit.
//   - Outlets (grid edge, or adjacent to no-data) get NoFlow; no-data cells get
//     grid.DirNoData. Neither passes flow on.
//
// Complexity:
//
//   - Steepest descent: O(N·8), parallel over row bands.
//   - Flat resolution:  O(F·8), F = flat cells, sequential.
//
// Errors:
//
//   - ErrNilGrid:          filled grid is nil.
//   - ErrOptionViolation:  invalid option value.
//   - ErrUnresolvedFlat:   a cell still has no exit after flat resolution
//     (the input was not filled). Returned inside a *grid.CellError, so it
//     also matches grid.ErrInvariantViolation.
//   - ErrUnknownCode:      FromESRI met a value that is not an ArcGIS code.
//   - context errors:      on cancellation; no partial grid is returned.
package flowdir
