// Package terrain derives drainage basins from a Digital Elevation Model.
//
// 🚀 What is terrain?
//
//	An in-memory hydrology toolkit that takes an elevation raster and a set
//	of pour points and returns a labelled basin raster:
//		• Depression filling: priority-flood over the grid boundary
//		• Flow routing: D8 steepest descent with flat resolution
//		• Flow accumulation: topological upstream counts and stream masks
//		• Pour points: geographic lookup through the affine transform, snapping
//		• Watersheds: parallel upstream tracing, nested-outlet labelling
//
// ✨ Why terrain?
//
//   - Deterministic: every tie-break is documented and tested
//   - No silent zeros: no-data stays no-data through every stage
//   - Cancellable: long stages poll their context every few thousand pops
//   - Immutable grids: a stage never touches another stage's output
//
// Packages:
//
//	grid/          Grid[T], Builder, affine Transform, D8 Direction
//	fill/          Fill and fill Summary
//	flowdir/       Compute, Downstream, ESRI code conversion
//	accumulation/  Compute, Weighted, Sinks, Streams
//	pourpoint/     Locate, Resolve, Snap
//	watershed/     Delineate, DelineatePoints
//	pipeline/      YAML config, Run with logging and metrics
//
// Quick ASCII example (directions after Fill and flowdir.Compute):
//
//	9 9 9 9        ·  ·  ·  ·
//	9 5 4 9   →    ·  SE S  ·
//	9 4 3 9        ·  SE S  ·
//	9 9 2 9        ·  ·  ·  ·
//
//	every interior cell drains to the outlet at (3,2).
//
//	go get github.com/katalvlaran/terrain
package terrain
