package engine

import "github.com/tensorwerk/geodyn/internal/geometry"

// Observation is one tick of upstream input: four density scalars and
// four four-component flow vectors. The engine has no knowledge of the
// data's origin or transport.
type Observation struct {
	Density [4]float64
	Flow    [4]geometry.Vector4
}

// TickRecord is the per-tick output record. Its field set is stable
// for downstream compatibility.
type TickRecord struct {
	Tick          uint64           `json:"tick"`
	Metric        [][]float64      `json:"metric"`
	RicciScalar   float64          `json:"ricci_scalar"`
	LatencyMS     float64          `json:"latency_ms,omitempty"`
	Singularities []geometry.Event `json:"singularities"`
}

// Source supplies observations to a run. Next reports false when the
// source is exhausted.
type Source interface {
	Next() (Observation, bool)
}

// Observer is notified after every processed tick.
type Observer interface {
	OnTick(rec *TickRecord)
}

// Metric accumulates a summary statistic over tick records.
type Metric interface {
	Name() string
	Observe(rec *TickRecord)
	Value() float64
	Reset()
}

// Result collects the output of one run.
type Result struct {
	Records []*TickRecord
	Metrics map[string]float64
}
