package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = "1.1.1.1 100 GET /a 200 500\nbad line\n2.2.2.2 101 POST /b 404 1500\n"

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o644))
	return path
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append(args, "--log-level", "disabled"), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := execute(writeLog(t))

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "TRAFFIC REPORT")
	assert.Contains(t, stdout, "1.95 KB")
}

func TestRun_StatusRangeJSON(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(writeLog(t), "--status", "400-499", "--format", "json", "--top", "5")
	require.Equal(t, 0, code)

	var report struct {
		TopN       int   `json:"topN"`
		TotalBytes int64 `json:"totalBytes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 5, report.TopN)
	assert.Equal(t, int64(1500), report.TotalBytes)
}

func TestRun_TimeWindowFlags(t *testing.T) {
	t.Parallel()

	code, stdout, _ := execute(writeLog(t), "--start", "101", "--end", "101", "--format", "json")
	require.Equal(t, 0, code)

	var report struct {
		TotalBytes int64 `json:"totalBytes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, int64(1500), report.TotalBytes)
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report:\n  format: yaml\n"), 0o644))

	code, stdout, _ := execute(writeLog(t), "--config", cfgPath)

	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "total_bytes: 2000")
}

func TestRun_HugeByteCounts(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "access.log")
	content := "1.1.1.1 100 GET /a 200 9223372036854775807\n2.2.2.2 101 GET /b 200 1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	code, stdout, stderr := execute(path, "--format", "json")

	require.Equal(t, 0, code, stderr)
	var report struct {
		TotalBytes int64 `json:"totalBytes"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, int64(math.MaxInt64), report.TotalBytes)
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	logFile := writeLog(t)
	missing := filepath.Join(t.TempDir(), "missing.log")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing file", []string{missing}, 3, "error: ING_1000"},
		{"no positional argument", []string{}, 2, "error: CLI_1000"},
		{"two positional arguments", []string{logFile, logFile}, 2, "error: CLI_1000"},
		{"unknown flag", []string{logFile, "--bogus"}, 2, "error: CLI_1000"},
		{"non-integer start", []string{logFile, "--start", "yesterday"}, 2, "error: CLI_1000"},
		{"unknown method", []string{logFile, "--method", "FETCH"}, 2, "error: FLT_1000"},
		{"malformed status range", []string{logFile, "--status", "400-"}, 2, "error: FLT_1000"},
		{"start after end", []string{logFile, "--start", "10", "--end", "5"}, 2, "error: FLT_1000"},
		{"zero top", []string{logFile, "--top", "0"}, 2, "error: CFG_1001"},
		{"unknown format", []string{logFile, "--format", "xml"}, 2, "error: CFG_1001"},
		{"missing config file", []string{logFile, "--config", missing}, 2, "error: CFG_1000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := execute(tt.args...)

			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantErr)
			assert.Empty(t, stdout)
		})
	}
}
