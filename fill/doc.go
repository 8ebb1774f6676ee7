// Package fill removes interior sinks from an elevation grid using the
// priority-flood algorithm.
//
// Priority-flood seeds a min-heap with every outlet cell (grid edge, or
// adjacent to no-data) at its original elevation, then repeatedly pops the
// lowest cell and raises each unvisited neighbor to at least that elevation.
// Every interior cell ends at the lowest level from which water can spill
// to an outlet; no cell is ever lowered.
//
// Complexity:
//
//   - Time:   O(N log N), N = number of valid cells
//   - Memory: O(N) for the visited flags, heap and output grid
//
// Determinism:
//
//   - Seeds are pushed in row-major order and neighbors in direction priority
//     order (N, NE, E, SE, S, SW, W, NW).
//   - Equal elevations pop in insertion order (a monotone sequence number
//     breaks heap ties), so the visiting order is fully reproducible.
//   - Fill is idempotent: Fill(Fill(g)) equals Fill(g).
//
// Options:
//
//   - WithContext(ctx):       cancellation, checked every CheckInterval pops.
//   - WithCheckInterval(k):   pops between cancellation checks (default 4096).
//
// Errors:
//
//   - ErrNilGrid:          dem is nil.
//   - ErrOptionViolation:  invalid option value.
//   - context errors:      on cancellation; no partial grid is returned.
package fill
