// Package pipeline runs the full delineation chain on one DEM:
//
//	Fill → flowdir.Compute → accumulation.Compute → pourpoint.Resolve/Snap → watershed.Delineate
//
// Each stage starts only after the previous stage's grid is built, and every
// stage honors the context passed to Run. A run is described by a Config,
// usually loaded from YAML:
//
//	workers: 8
//	snap_radius: 2
//	stream_threshold: 100
//	log_level: info
//	pour_points:
//	  - {id: 1, name: gauge-a, x: 512034.5, y: 4190122.0}
//
// Fatal failures come back as *StageError naming the stage; pour points that
// cannot be placed are not fatal and are returned in Result.Warnings.
//
// Run logs through logrus with run_id and stage fields and, when given
// WithMetrics, records per-stage durations and cell counts in Prometheus.
package pipeline
