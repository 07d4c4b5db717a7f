package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCounter = NewCounterVec(
	CounterOpts{
		Namespace: Namespace,
		Subsystem: "test",
		Name:      "textfile_probe_total",
	},
	[]string{FieldOutcome},
)

func TestWriteTextfile(t *testing.T) {
	testCounter.WithLabelValues("ok").Add(3)

	path := filepath.Join(t.TempDir(), "traffic_analyzer.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `traffic_analyzer_test_textfile_probe_total{outcome="ok"} 3`)
}

func TestWriteTextfile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "metrics.prom")

	err := WriteTextfile(path)
	assert.Error(t, err)
}
