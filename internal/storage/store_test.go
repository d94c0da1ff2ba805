package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/thermokit/internal/errors"
	"github.com/san-kum/thermokit/internal/tabulate"
)

func sampleTable() *tabulate.Table {
	return &tabulate.Table{
		Temperature: []float64{0.001, 0.1, 10},
		Columns:     []string{"geff", "heff"},
		Values: [][]float64{
			{3.38, 10.75, 96.25},
			{3.94, 10.75, 96.25000000000001},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	params := map[string]float64{"mass": 0.000511, "degeneracy": 4, "spin2": 1}
	runID, err := st.Save("particle", "electron", params, sampleTable())
	require.NoError(t, err)
	assert.Regexp(t, `^electron_[0-9a-f]{8}$`, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "particle", meta.Kind)
	assert.Equal(t, "electron", meta.Subject)
	assert.Equal(t, 0.001, meta.TMin)
	assert.Equal(t, 10.0, meta.TMax)
	assert.Equal(t, 3, meta.Points)
	assert.Equal(t, params, meta.Params)
	assert.Equal(t, []string{"geff", "heff"}, meta.Columns)
	assert.WithinDuration(t, time.Now(), meta.Timestamp, time.Minute)

	table, err := st.LoadTable(runID)
	require.NoError(t, err)
	assert.Equal(t, sampleTable(), table)
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	first, err := st.Save("bath", "standard_model", nil, sampleTable())
	require.NoError(t, err)
	second, err := st.Save("particle", "photon", nil, sampleTable())
	require.NoError(t, err)

	// stray files and broken runs are skipped
	require.NoError(t, os.WriteFile(filepath.Join(st.Dir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(st.Dir(), "broken"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.ElementsMatch(t, []string{first, second}, []string{runs[0].ID, runs[1].ID})
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreFileStructure(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("bath", "standard_model", nil, sampleTable())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(st.Dir(), runID, "metadata.json"))
	assert.FileExists(t, filepath.Join(st.Dir(), runID, "table.csv"))

	raw, err := os.ReadFile(filepath.Join(st.Dir(), runID, "table.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "temperature,geff,heff\n")
}

func TestStore_RejectsEmptyTable(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Save("bath", "standard_model", nil, &tabulate.Table{})
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestStore_RunNotFound(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	_, err := st.Load("missing")
	assert.True(t, errors.Is(err, ErrRunNotFound))
	_, err = st.LoadTable("missing")
	assert.True(t, errors.Is(err, ErrRunNotFound))
	assert.True(t, errors.Is(st.ExportJSON(&bytes.Buffer{}, "missing"), ErrRunNotFound))
}

func TestStoreExportJSON(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save("particle", "muon", map[string]float64{"mass": 0.1057}, sampleTable())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, st.ExportJSON(&buf, runID))

	var out ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, runID, out.ID)
	assert.Equal(t, "muon", out.Subject)
	assert.Equal(t, []float64{0.001, 0.1, 10}, out.Temperature)
	assert.Equal(t, []float64{3.94, 10.75, 96.25000000000001}, out.Data["heff"])
}
