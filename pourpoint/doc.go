// Package pourpoint maps geographic outlet coordinates onto grid cells.
//
// Locate applies the inverse of a grid's affine transform and validates the
// result: a point outside the raster extent, or one landing on a no-data
// cell, is an *Error that unwraps to ErrInvalidPourPoint. Resolve does this
// for a batch and keeps going past failures, so one bad outlet never aborts
// the others.
//
// Snap moves a located outlet onto the cell of highest flow accumulation
// within a square search window, the usual fix for outlets digitized a cell
// or two off the channel.
package pourpoint
