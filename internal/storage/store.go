package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/tabulate"
)

const (
	metadataFile = "metadata.json"
	tableFile    = "table.csv"
)

// ErrRunNotFound is returned when no run directory matches an id.
var ErrRunNotFound = errors.New("run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrap(os.MkdirAll(s.baseDir, 0755), "storage: init")
}

func (s *Store) Dir() string {
	return s.baseDir
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Subject   string             `json:"subject"`
	Timestamp time.Time          `json:"timestamp"`
	TMin      float64            `json:"t_min"`
	TMax      float64            `json:"t_max"`
	Points    int                `json:"points"`
	Params    map[string]float64 `json:"params,omitempty"`
	Columns   []string           `json:"columns"`
}

// Save writes a tabulation under a new run directory and returns its id.
func (s *Store) Save(kind, subject string, params map[string]float64, table *tabulate.Table) (string, error) {
	if table.Len() == 0 {
		return "", errors.InvalidInputf("storage: refusing to save an empty table")
	}

	runID := subject + "_" + uuid.NewString()[:8]
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrapf(err, "storage: create %s", runDir)
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Subject:   subject,
		Timestamp: time.Now().UTC(),
		TMin:      table.Temperature[0],
		TMax:      table.Temperature[table.Len()-1],
		Points:    table.Len(),
		Params:    params,
		Columns:   table.Columns,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeTable(filepath.Join(runDir, tableFile), table); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "storage: create %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrapf(enc.Encode(v), "storage: encode %s", path)
}

func writeTable(path string, table *tabulate.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "storage: create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"temperature"}, table.Columns...)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "storage: write header")
	}
	for i, T := range table.Temperature {
		row := []string{formatFloat(T)}
		for _, v := range table.Row(i) {
			row = append(row, formatFloat(v))
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "storage: write row")
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "storage: flush %s", path)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns every readable run, oldest first. A missing store is empty.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrap(err, "storage: list")
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "storage: run %s", runID), ErrRunNotFound)
		}
		return nil, errors.Wrapf(err, "storage: run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "storage: decode metadata of %s", runID)
	}
	return &meta, nil
}

func (s *Store) LoadTable(runID string) (*tabulate.Table, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, tableFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "storage: run %s", runID), ErrRunNotFound)
		}
		return nil, errors.Wrapf(err, "storage: run %s", runID)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "storage: read table of %s", runID)
	}
	if len(records) == 0 || len(records[0]) < 1 {
		return nil, errors.Newf("storage: table of %s has no header", runID)
	}

	columns := records[0][1:]
	rows := records[1:]
	table := &tabulate.Table{
		Temperature: make([]float64, len(rows)),
		Columns:     columns,
		Values:      make([][]float64, len(columns)),
	}
	for j := range columns {
		table.Values[j] = make([]float64, len(rows))
	}
	for i, record := range rows {
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "storage: %s row %d", runID, i+1)
			}
			if j == 0 {
				table.Temperature[i] = v
			} else {
				table.Values[j-1][i] = v
			}
		}
	}
	return table, nil
}

type ExportData struct {
	RunMetadata
	Temperature []float64            `json:"temperature"`
	Data        map[string][]float64 `json:"data"`
}

// ExportJSON writes a run's metadata and table as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadTable(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Temperature: table.Temperature,
		Data:        make(map[string][]float64, len(table.Columns)),
	}
	for i, c := range table.Columns {
		data.Data[c] = table.Values[i]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(data), "storage: export")
}
