package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/terrain/accumulation"
	"github.com/katalvlaran/terrain/fill"
	"github.com/katalvlaran/terrain/flowdir"
	"github.com/katalvlaran/terrain/grid"
	"github.com/katalvlaran/terrain/pourpoint"
	"github.com/katalvlaran/terrain/watershed"
)

// StagePourPoints names the pour-point placement stage.
const StagePourPoints = "pourpoint"

// ErrNilGrid is returned when Run is given a nil DEM.
var ErrNilGrid = errors.New("pipeline: grid is nil")

// StageError reports the stage a run failed in.
type StageError struct {
	Stage string
	Err   error
}

// Error implements error.
func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %s: %v", e.Stage, e.Err)
}

// Unwrap returns the stage's error.
func (e *StageError) Unwrap() error { return e.Err }

// Result holds every grid produced by a run.
type Result struct {
	RunID        uuid.UUID
	Filled       *grid.Grid[float64]
	FillSummary  fill.Summary
	Directions   *grid.Grid[grid.Direction]
	Accumulation *grid.Grid[int64] // nil when not computed
	Streams      *grid.Grid[bool]  // nil when StreamThreshold is 0
	// Outlets are the placed (and possibly snapped) pour points.
	Outlets    []watershed.Outlet
	Watersheds *watershed.Result
	// Warnings holds one *pourpoint.Error per pour point that was skipped.
	Warnings []error
}

// Option configures Run.
type Option func(*Options)

// Options holds the collaborators of a run.
type Options struct {
	// Logger receives stage and pour-point events. Defaults to a new logger
	// at Config.LogLevel.
	Logger *logrus.Logger
	// Metrics, when non-nil, records stage timings.
	Metrics *Metrics
}

// WithLogger routes log output to l. A nil logger is ignored.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records stage timings and counts in m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

// runner carries the state of one Run call.
type runner struct {
	ctx     context.Context
	cfg     *Config
	log     *logrus.Entry
	metrics *Metrics
	res     *Result
}

// Run fills dem, routes flow over it and delineates the basins of the
// configured pour points. A nil cfg means DefaultConfig.
func Run(ctx context.Context, dem *grid.Grid[float64], cfg *Config, opts ...Option) (*Result, error) {
	if dem == nil {
		return nil, ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = newLogger(cfg.LogLevel)
	}

	id := uuid.New()
	r := &runner{
		ctx:     ctx,
		cfg:     cfg,
		log:     o.Logger.WithField("run_id", id.String()),
		metrics: o.Metrics,
		res:     &Result{RunID: id},
	}
	r.log.WithFields(logrus.Fields{
		"rows":        dem.Rows(),
		"cols":        dem.Cols(),
		"pour_points": len(cfg.PourPoints),
	}).Info("run started")

	if err := r.run(dem); err != nil {
		return nil, err
	}
	r.log.WithField("warnings", len(r.res.Warnings)).Info("run finished")
	return r.res, nil
}

func (r *runner) run(dem *grid.Grid[float64]) error {
	cells := dem.ValidCount()

	err := r.stage(fill.Stage, cells, func() error {
		filled, err := fill.Fill(dem, r.fillOptions()...)
		if err != nil {
			return err
		}
		summary, err := fill.Summarize(dem, filled)
		if err != nil {
			return err
		}
		r.res.Filled, r.res.FillSummary = filled, summary
		r.log.WithFields(logrus.Fields{
			"stage":        fill.Stage,
			"raised_cells": summary.RaisedCells,
			"max_depth":    summary.MaxDepth,
		}).Debug("depressions filled")
		return nil
	})
	if err != nil {
		return err
	}

	err = r.stage(flowdir.Stage, cells, func() error {
		dirs, err := flowdir.Compute(r.res.Filled, r.flowdirOptions()...)
		r.res.Directions = dirs
		return err
	})
	if err != nil {
		return err
	}

	if r.cfg.needsAccumulation() {
		err = r.stage(accumulation.Stage, cells, func() error {
			acc, err := accumulation.Compute(r.res.Directions, r.accumulationOptions()...)
			if err != nil {
				return err
			}
			r.res.Accumulation = acc
			if r.cfg.StreamThreshold > 0 {
				r.res.Streams, err = accumulation.Streams(acc, r.cfg.StreamThreshold)
			}
			return err
		})
		if err != nil {
			return err
		}
	}

	err = r.stage(StagePourPoints, len(r.cfg.PourPoints), r.placeOutlets)
	if err != nil {
		return err
	}

	return r.stage(watershed.Stage, cells, func() error {
		ws, err := watershed.Delineate(r.res.Directions, r.res.Outlets, r.watershedOptions()...)
		if err != nil {
			return err
		}
		r.res.Watersheds = ws
		for _, b := range ws.Basins {
			r.log.WithFields(logrus.Fields{
				"stage": watershed.Stage,
				"id":    b.ID,
				"cells": len(b.Cells),
			}).Debug("basin traced")
		}
		return nil
	})
}

// placeOutlets resolves the configured pour points on the direction grid
// and snaps them when a radius is set. Rejected points become warnings.
func (r *runner) placeOutlets() error {
	resolved, failures := pourpoint.Resolve(r.res.Directions, r.cfg.pourPoints())
	for _, err := range failures {
		r.warn(err)
	}

	outlets := make([]watershed.Outlet, 0, len(resolved))
	for _, p := range resolved {
		c := p.Cell
		if r.cfg.SnapRadius > 0 {
			snapped, err := pourpoint.Snap(r.res.Accumulation, c, r.cfg.SnapRadius)
			if err != nil {
				return err
			}
			if snapped != c {
				r.log.WithFields(logrus.Fields{
					"stage": StagePourPoints,
					"id":    p.ID,
					"from":  c.String(),
					"to":    snapped.String(),
				}).Debug("pour point snapped")
			}
			c = snapped
		}
		outlets = append(outlets, watershed.Outlet{ID: p.ID, Cell: c})
	}
	r.res.Outlets = outlets
	return nil
}

func (r *runner) warn(err error) {
	r.res.Warnings = append(r.res.Warnings, err)
	r.metrics.invalidPourPoint()

	entry := r.log.WithField("stage", StagePourPoints)
	var pe *pourpoint.Error
	if errors.As(err, &pe) {
		entry = entry.WithFields(logrus.Fields{
			"id":     pe.ID,
			"name":   pe.Name,
			"reason": pe.Reason.String(),
		})
	}
	entry.WithError(err).Warn("pour point skipped")
}

// stage runs fn as the named stage, timing it and wrapping its error.
func (r *runner) stage(name string, cells int, fn func() error) error {
	entry := r.log.WithField("stage", name)
	if err := r.ctx.Err(); err != nil {
		return &StageError{Stage: name, Err: err}
	}

	start := time.Now()
	if err := fn(); err != nil {
		entry.WithError(err).Error("stage failed")
		return &StageError{Stage: name, Err: err}
	}
	elapsed := time.Since(start)
	r.metrics.observeStage(name, elapsed, cells)
	entry.WithFields(logrus.Fields{
		"cells":   cells,
		"elapsed": elapsed.String(),
	}).Info("stage done")
	return nil
}

func newLogger(level string) *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

func (r *runner) fillOptions() []fill.Option {
	opts := []fill.Option{fill.WithContext(r.ctx)}
	if r.cfg.CheckInterval > 0 {
		opts = append(opts, fill.WithCheckInterval(r.cfg.CheckInterval))
	}
	return opts
}

func (r *runner) flowdirOptions() []flowdir.Option {
	opts := []flowdir.Option{flowdir.WithContext(r.ctx)}
	if r.cfg.Workers > 0 {
		opts = append(opts, flowdir.WithWorkers(r.cfg.Workers))
	}
	if r.cfg.CheckInterval > 0 {
		opts = append(opts, flowdir.WithCheckInterval(r.cfg.CheckInterval))
	}
	return opts
}

func (r *runner) accumulationOptions() []accumulation.Option {
	opts := []accumulation.Option{accumulation.WithContext(r.ctx)}
	if r.cfg.CheckInterval > 0 {
		opts = append(opts, accumulation.WithCheckInterval(r.cfg.CheckInterval))
	}
	return opts
}

func (r *runner) watershedOptions() []watershed.Option {
	opts := []watershed.Option{watershed.WithContext(r.ctx)}
	if r.cfg.Workers > 0 {
		opts = append(opts, watershed.WithWorkers(r.cfg.Workers))
	}
	if r.cfg.CheckInterval > 0 {
		opts = append(opts, watershed.WithCheckInterval(r.cfg.CheckInterval))
	}
	return opts
}
