package configs

import (
	"os"
	"path/filepath"
	"testing"

	"traffic-analyzer/internal/shared/svcerrors"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, 3, cfg.Report.Top)
	assert.Equal(t, "", cfg.Report.Output)
	assert.Equal(t, 5, cfg.Report.MaxFailureSamples)
	assert.Equal(t, "", cfg.Metrics.Textfile)
}

func TestLoadConfig_ValidConfigFile(t *testing.T) {
	path := writeConfig(t, `log:
  level: debug
  format: console
report:
  format: json
  top: 10
  output: ./out/report.json
  max_failure_samples: 0
metrics:
  textfile: ./out/analyzer.prom
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, 10, cfg.Report.Top)
	assert.Equal(t, "./out/report.json", cfg.Report.Output)
	assert.Equal(t, 0, cfg.Report.MaxFailureSamples)
	assert.Equal(t, "./out/analyzer.prom", cfg.Metrics.Textfile)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `report:
  top: 7
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Report.Top)
	assert.Equal(t, "text", cfg.Report.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"), nil)
	assert.Nil(t, cfg)
	require.Error(t, err)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "CFG_1000", svcErr.Code)
	assert.Equal(t, svcerrors.ExitCodeInvalidArgument, svcErr.ExitCode)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantText string
	}{
		{
			name:     "top below minimum",
			content:  "report:\n  top: 0\n",
			wantText: "report.top (min=1)",
		},
		{
			name:     "unknown report format",
			content:  "report:\n  format: xml\n",
			wantText: "report.format (oneof=text json yaml)",
		},
		{
			name:     "unknown log level",
			content:  "log:\n  level: loud\n",
			wantText: "log.level (oneof=",
		},
		{
			name:     "negative failure samples",
			content:  "report:\n  max_failure_samples: -1\n",
			wantText: "report.maxfailuresamples (min=0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.content), nil)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation failed")
			assert.Contains(t, err.Error(), tt.wantText)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "CFG_1001", svcErr.Code)
		})
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "report:\n  top: 7\n  format: yaml\n")
	t.Setenv("TRAFFIC_ANALYZER_REPORT_TOP", "9")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Report.Top)
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadConfig_FlagsOverrideEnvAndFile(t *testing.T) {
	path := writeConfig(t, "report:\n  top: 7\n  format: yaml\n")
	t.Setenv("TRAFFIC_ANALYZER_REPORT_TOP", "9")

	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--top", "4"}))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Report.Top)
	// Unchanged flags never shadow lower layers.
	assert.Equal(t, "yaml", cfg.Report.Format)
}

func TestLoadConfig_FlagValidation(t *testing.T) {
	flags := newFlagSet()
	require.NoError(t, flags.Parse([]string{"--top", "0"}))

	cfg, err := LoadConfig("", flags)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report.top")
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", DefaultLogLevel, "")
	flags.String("log-format", DefaultLogFormat, "")
	flags.String("format", DefaultReportFormat, "")
	flags.Int("top", DefaultReportTop, "")
	flags.String("out", "", "")
	flags.Int("max-failure-samples", DefaultMaxFailureSamples, "")
	flags.String("metrics-textfile", "", "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
