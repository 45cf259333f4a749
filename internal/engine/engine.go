// Package engine drives the per-tick pipeline: observations in, metric
// update, lazy curvature derivation, singularity detection, tick
// records out.
package engine

import (
	"context"
	"time"

	"github.com/tensorwerk/geodyn/internal/compute"
	"github.com/tensorwerk/geodyn/internal/geometry"
)

// Engine owns one manifold and its detector. It is not safe for
// concurrent use; one engine serves one tick stream.
type Engine struct {
	manifold *geometry.Manifold
	detector *geometry.Detector
	tick     uint64

	observers []Observer
	metrics   []Metric
}

func New(cons geometry.Constants, backend compute.Backend) *Engine {
	return &Engine{
		manifold: geometry.New(cons, backend),
		detector: geometry.NewDetector(cons),
	}
}

// Manifold exposes the engine's manifold for geodesic integration
// against the current metric.
func (e *Engine) Manifold() *geometry.Manifold { return e.manifold }

func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }
func (e *Engine) AddMetric(m Metric)     { e.metrics = append(e.metrics, m) }

// Tick processes one observation: replaces the metric, derives the
// Ricci scalar through the lazy chain, and runs singularity detection.
// A non-invertible metric fails the whole tick; no partial record is
// produced.
func (e *Engine) Tick(obs Observation) (*TickRecord, error) {
	started := time.Now()

	e.manifold.UpdateMetric(obs.Density, obs.Flow)

	scalar, err := e.manifold.RicciScalar()
	if err != nil {
		return nil, err
	}

	events, err := e.detector.Detect(e.manifold)
	if err != nil {
		return nil, err
	}

	metric := e.manifold.Metric()
	rows := make([][]float64, 4)
	for i := 0; i < 4; i++ {
		rows[i] = metric[i*4 : (i+1)*4 : (i+1)*4]
	}

	e.tick++
	rec := &TickRecord{
		Tick:          e.tick,
		Metric:        rows,
		RicciScalar:   scalar,
		LatencyMS:     float64(time.Since(started).Microseconds()) / 1000.0,
		Singularities: events,
	}

	for _, m := range e.metrics {
		m.Observe(rec)
	}
	for _, o := range e.observers {
		o.OnTick(rec)
	}

	return rec, nil
}

// Run consumes the source until it is exhausted, maxTicks is reached
// (zero or negative means unbounded), or the context is canceled. The
// first tick error stops the run; already-processed records are
// returned with it.
func (e *Engine) Run(ctx context.Context, src Source, maxTicks int) (*Result, error) {
	if maxTicks < 0 {
		maxTicks = 0
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	result := &Result{
		Records: make([]*TickRecord, 0, maxTicks),
		Metrics: make(map[string]float64),
	}

	for maxTicks == 0 || len(result.Records) < maxTicks {
		select {
		case <-ctx.Done():
			e.collectMetrics(result)
			return result, ctx.Err()
		default:
		}

		obs, ok := src.Next()
		if !ok {
			break
		}

		rec, err := e.Tick(obs)
		if err != nil {
			e.collectMetrics(result)
			return result, err
		}
		result.Records = append(result.Records, rec)
	}

	e.collectMetrics(result)
	return result, nil
}

func (e *Engine) collectMetrics(result *Result) {
	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
