package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/apollolabs/apollo/internal/record"
)

func sampleRecords() []*record.Record {
	labels := []string{"A", "B", "A", "C", "B"}
	records := make([]*record.Record, len(labels))
	for i, l := range labels {
		records[i] = record.Single("response", l)
	}
	return records
}

func TestForFormat(t *testing.T) {
	for _, format := range Formats() {
		s, err := ForFormat(format)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}

	_, err := ForFormat("parquet")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestJSONLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	records := sampleRecords()
	require.NoError(t, JSONLSerializer{}.Save(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		var r record.Record
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		want, _ := records[i].Get("response")
		got, _ := r.Get("response")
		assert.Equal(t, want, got)
		assert.Equal(t, records[i].Keys(), r.Keys())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	records := sampleRecords()
	require.NoError(t, YAMLSerializer{}.Save(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 5)
	for i, m := range decoded {
		want, _ := records[i].Get("response")
		assert.Equal(t, want, m["response"])
	}
}

func TestCSVHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := sampleRecords()
	require.NoError(t, CSVSerializer{}.Save(records, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"response"}, rows[0])
	for i, row := range rows[1:] {
		want, _ := records[i].Get("response")
		assert.Equal(t, []string{want.(string)}, row)
	}
}

func TestCSVMultiColumnKeyOrder(t *testing.T) {
	r1 := record.New()
	r1.Set("name", "Ada")
	r1.Set("city", "London")
	r2 := record.New()
	r2.Set("name", "Grace")
	r2.Set("city", "Arlington")

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, CSVSerializer{}.Save([]*record.Record{r1, r2}, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "city"},
		{"Ada", "London"},
		{"Grace", "Arlington"},
	}, rows)
}

func TestCSVEmptyBatchIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, CSVSerializer{}.Save(nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "empty batch must not create a file")
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\nstale\nstale\n"), 0o644))

	require.NoError(t, JSONLSerializer{}.Save([]*record.Record{record.Single("response", "Yes")}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\"response\":\"Yes\"}\n", string(data))
}
