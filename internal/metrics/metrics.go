// Package metrics provides summary statistics over tick records.
package metrics

import (
	"math"

	"github.com/tensorwerk/geodyn/internal/engine"
)

// MaxCurvature tracks the largest Ricci-scalar magnitude seen.
type MaxCurvature struct {
	max float64
}

func NewMaxCurvature() *MaxCurvature { return &MaxCurvature{} }

func (m *MaxCurvature) Name() string { return "max_curvature" }

func (m *MaxCurvature) Observe(rec *engine.TickRecord) {
	m.max = math.Max(m.max, math.Abs(rec.RicciScalar))
}

func (m *MaxCurvature) Value() float64 { return m.max }
func (m *MaxCurvature) Reset()         { m.max = 0 }

// SingularityCount counts detected singularity events across a run.
type SingularityCount struct {
	count int
}

func NewSingularityCount() *SingularityCount { return &SingularityCount{} }

func (s *SingularityCount) Name() string { return "singularities" }

func (s *SingularityCount) Observe(rec *engine.TickRecord) {
	s.count += len(rec.Singularities)
}

func (s *SingularityCount) Value() float64 { return float64(s.count) }
func (s *SingularityCount) Reset()         { s.count = 0 }

// MeanLatency averages per-tick processing latency in milliseconds.
type MeanLatency struct {
	total   float64
	samples int
}

func NewMeanLatency() *MeanLatency { return &MeanLatency{} }

func (m *MeanLatency) Name() string { return "mean_latency_ms" }

func (m *MeanLatency) Observe(rec *engine.TickRecord) {
	m.total += rec.LatencyMS
	m.samples++
}

func (m *MeanLatency) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanLatency) Reset() {
	m.total = 0
	m.samples = 0
}
