package accumulation

import (
	"math"

	"github.com/katalvlaran/terrain/flowdir"
	"github.com/katalvlaran/terrain/grid"
)

// Compute returns the flow accumulation grid of dirs: each valid cell holds
// 1 plus the accumulation of every cell that drains directly into it.
func Compute(dirs *grid.Grid[grid.Direction], opts ...Option) (*grid.Grid[int64], error) {
	if dirs == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	order, err := topologicalOrder(dirs, cfg)
	if err != nil {
		return nil, err
	}
	out, err := grid.NewBuilder(dirs, NoData, dirs.Transform())
	if err != nil {
		return nil, err
	}
	for _, i := range order {
		out.Set(i, 1)
	}
	for _, i := range order {
		if n, ok := flowdir.Downstream(dirs, i); ok {
			out.Set(n, out.Get(n)+out.Get(i))
		}
	}
	return out.Build(), nil
}

// Weighted is Compute with a per-cell contribution taken from weights
// instead of 1. No-data weights contribute 0. The result uses NaN as its
// no-data value. weights must match dirs in shape.
func Weighted(dirs *grid.Grid[grid.Direction], weights *grid.Grid[float64], opts ...Option) (*grid.Grid[float64], error) {
	if dirs == nil || weights == nil {
		return nil, ErrNilGrid
	}
	if err := grid.CheckShape(dirs, weights); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	order, err := topologicalOrder(dirs, cfg)
	if err != nil {
		return nil, err
	}
	out, err := grid.NewBuilder(dirs, math.NaN(), dirs.Transform())
	if err != nil {
		return nil, err
	}
	for _, i := range order {
		w := 0.0
		if !weights.IsNoData(i) {
			w = weights.Value(i)
		}
		out.Set(i, w)
	}
	for _, i := range order {
		if n, ok := flowdir.Downstream(dirs, i); ok {
			out.Set(n, out.Get(n)+out.Get(i))
		}
	}
	return out.Build(), nil
}

// Sinks returns, in row-major order, the valid cells with no downstream
// neighbor. Every unit of flow ends in one of them.
func Sinks(dirs *grid.Grid[grid.Direction]) []int {
	var sinks []int
	for i := 0; i < dirs.Len(); i++ {
		if dirs.IsNoData(i) {
			continue
		}
		if _, ok := flowdir.Downstream(dirs, i); !ok {
			sinks = append(sinks, i)
		}
	}
	return sinks
}

// Streams marks cells whose accumulation is at least threshold.
// No-data accumulation cells are false.
func Streams(acc *grid.Grid[int64], threshold int64) (*grid.Grid[bool], error) {
	if acc == nil {
		return nil, ErrNilGrid
	}
	if threshold < 1 {
		return nil, ErrBadThreshold
	}
	// bool has no spare sentinel: false is both "not a stream" and no-data
	out, err := grid.NewBuilder(acc, false, acc.Transform())
	if err != nil {
		return nil, err
	}
	for i := 0; i < acc.Len(); i++ {
		if !acc.IsNoData(i) && acc.Value(i) >= threshold {
			out.Set(i, true)
		}
	}
	return out.Build(), nil
}
