// Package accumulation counts, for every cell of a D8 direction grid, how
// many cells drain through it (itself included).
//
// The direction grid is a forest: each cell has at most one downstream
// neighbor. Compute walks it in topological order with Kahn's algorithm:
// in-degrees are counted once, cells nobody drains into are queued, and each
// popped cell adds its total to its downstream neighbor, which is queued as
// soon as its last upstream contributor is done.
//
// Acyclicity is checked, not assumed: if fewer cells are processed than
// there are valid cells, some cells sit on a cycle and Compute fails with a
// *grid.CellError wrapping ErrCycle and grid.ErrInvariantViolation.
//
// Conventions:
//
//   - No-data cells carry NoData (-1), never 0.
//   - NoFlow cells (outlets) keep their total but pass nothing on.
//   - Σ accumulation over Sinks == number of valid cells.
//
// Complexity: O(N) time and memory.
package accumulation
