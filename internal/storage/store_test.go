package storage

import (
	"encoding/json"
	"testing"

	"github.com/tensorwerk/geodyn/internal/engine"
	"github.com/tensorwerk/geodyn/internal/geometry"
	"github.com/tensorwerk/geodyn/internal/solvers"
)

func testResult() *engine.Result {
	metric := [][]float64{
		{-1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return &engine.Result{
		Records: []*engine.TickRecord{
			{Tick: 1, Metric: metric, RicciScalar: 0.25, LatencyMS: 1.5},
			{Tick: 2, Metric: metric, RicciScalar: -1.75, Singularities: []geometry.Event{{Radius: 3}}},
		},
		Metrics: map[string]float64{"max_curvature": 1.75, "singularities": 1},
	}
}

func TestSaveAndList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save(42, "scalar", 0.95, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}

	meta := runs[0]
	if meta.ID != runID {
		t.Errorf("id = %q, expected %q", meta.ID, runID)
	}
	if meta.Seed != 42 || meta.Backend != "scalar" || meta.Ticks != 2 || meta.Threshold != 0.95 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["singularities"] != 1 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}
}

func TestSaveAssignsDistinctRunIDs(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	first, err := store.Save(1, "scalar", 0.95, testResult())
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := store.Save(2, "scalar", 0.95, testResult())
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if first == second {
		t.Fatalf("both saves produced run ID %q", first)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, expected both saves to survive", len(runs))
	}
}

func TestLoadRicciHistory(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save(1, "scalar", 0.95, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	history, err := store.LoadRicciHistory(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	expected := []float64{0.25, -1.75}
	if len(history) != len(expected) {
		t.Fatalf("got %d values, expected %d", len(history), len(expected))
	}
	for i := range expected {
		if history[i] != expected[i] {
			t.Errorf("value %d = %v, expected %v", i, history[i], expected[i])
		}
	}
}

func TestExport(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save(7, "parallel", 0.5, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := store.Export(runID)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if meta.ID != runID || meta.Backend != "parallel" {
		t.Errorf("exported metadata mismatch: %+v", meta)
	}
}

func TestSaveGeodesic(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	path := solvers.Path{
		Samples: []solvers.Sample{
			{Param: 0, State: solvers.State{0, 0, 0, 0, 1, 0, 0, 0}},
			{Param: 0.5, State: solvers.State{0.5, 0, 0, 0, 1, 0, 0, 0}},
		},
		ParamRange: 0.5,
	}

	name, err := store.SaveGeodesic("", path)
	if err != nil {
		t.Fatalf("save geodesic failed: %v", err)
	}
	if name == "" {
		t.Error("expected a file name")
	}
}

func TestListEmptyStore(t *testing.T) {
	store := New(t.TempDir())
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs from an empty store, expected 0", len(runs))
	}
}
