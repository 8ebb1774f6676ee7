// Package watershed labels the cells that drain to each of a set of outlets.
//
// The flow graph of a D8 direction grid is a forest whose edges point
// downstream. A basin is the set of cells whose downstream path reaches
// the outlet, outlet included. Delineate finds it by walking the forest
// backwards: starting at the outlet, a breadth-first search admits every
// neighbor whose direction points at the cell just popped.
//
// Outlets are traced independently, one goroutine each, bounded by
// WithWorkers. Each trace owns its queue and visited set; results are
// merged only after every trace has finished.
//
// Nested outlets (one outlet upstream of another) are allowed. Every Basin
// holds its full upstream set, so the downstream basin contains the nested
// one. The label grid assigns each cell to its nearest downstream outlet:
//
//	labels := res.Labels           // *grid.Grid[int32]
//	id, _ := labels.At(row, col)   // NoData, Unassigned or an outlet id
//
// An outlet that lies outside the grid or on no-data is reported as a
// *pourpoint.Error in Result.Failures; its basin is empty and the other
// outlets are unaffected.
//
// Complexity: O(Σ|basin|) time; O(N) memory per running trace.
package watershed
