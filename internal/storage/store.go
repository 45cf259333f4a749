// Package storage persists run artifacts for offline inspection. A run
// directory holds metadata.json plus CSV files for tick records and
// geodesic paths. These are exports, not resumable engine state.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/tensorwerk/geodyn/internal/engine"
	"github.com/tensorwerk/geodyn/internal/solvers"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Backend   string             `json:"backend"`
	Ticks     int                `json:"ticks"`
	Threshold float64            `json:"threshold"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run's metadata and tick records, returning the run ID.
func (s *Store) Save(seed int64, backend string, threshold float64, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Seed:      seed,
		Backend:   backend,
		Ticks:     len(result.Records),
		Threshold: threshold,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "ticks.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"tick", "ricci_scalar", "latency_ms", "singularities"}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			header = append(header, fmt.Sprintf("g%d%d", i, j))
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range result.Records {
		row := []string{
			strconv.FormatUint(rec.Tick, 10),
			strconv.FormatFloat(rec.RicciScalar, 'g', -1, 64),
			strconv.FormatFloat(rec.LatencyMS, 'g', -1, 64),
			strconv.Itoa(len(rec.Singularities)),
		}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				row = append(row, strconv.FormatFloat(rec.Metric[i][j], 'g', -1, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveGeodesic writes a geodesic path as CSV under an existing run
// directory (or the base directory when runID is empty).
func (s *Store) SaveGeodesic(runID string, path solvers.Path) (string, error) {
	dir := s.baseDir
	if runID != "" {
		dir = filepath.Join(s.baseDir, runID)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := filepath.Join(dir, "geodesic.csv")
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"tau", "t", "x", "y", "z"}); err != nil {
		return "", err
	}
	for _, sample := range path.Samples {
		row := []string{strconv.FormatFloat(sample.Param, 'g', -1, 64)}
		for i := 0; i < 4; i++ {
			row = append(row, strconv.FormatFloat(sample.State[i], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return name, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.loadMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) loadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}

// Export returns a run's metadata serialized as indented JSON.
func (s *Store) Export(runID string) ([]byte, error) {
	meta, err := s.loadMetadata(runID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(meta, "", "  ")
}

// LoadRicciHistory reads the Ricci-scalar column of a stored run.
func (s *Store) LoadRicciHistory(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	history := make([]float64, 0, len(rows)-1)
	for _, row := range rows[1:] {
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: bad ricci value %q: %w", row[1], err)
		}
		history = append(history, v)
	}
	return history, nil
}
