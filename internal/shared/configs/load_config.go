package configs

import (
	"fmt"
	"strings"

	"traffic-analyzer/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TRAFFIC_ANALYZER_REPORT_TOP.
const EnvPrefix = "TRAFFIC_ANALYZER"

// Default values, shared with the CLI flag definitions.
const (
	DefaultLogLevel          = "warn"
	DefaultLogFormat         = "json"
	DefaultReportFormat      = "text"
	DefaultReportTop         = 3
	DefaultMaxFailureSamples = 5
)

// FlagKeys maps config keys to the CLI flags that may override them.
var FlagKeys = map[string]string{
	"log.level":                  "log-level",
	"log.format":                 "log-format",
	"report.format":              "format",
	"report.top":                 "top",
	"report.output":              "out",
	"report.max_failure_samples": "max-failure-samples",
	"metrics.textfile":           "metrics-textfile",
}

// LoadConfig resolves configuration with precedence flags > env > file > defaults,
// then validates it. configPath may be empty, in which case no file is read.
// flags may be nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errConfigUnreadable(fmt.Sprintf("failed to read config file %q", configPath), err)
		}
	}

	if flags != nil {
		for key, name := range FlagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errConfigUnreadable(fmt.Sprintf("failed to bind flag --%s", name), err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errConfigUnreadable("failed to unmarshal config", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, errConfigInvalid(
			fmt.Sprintf("config validation failed: %s", strings.Join(validators.Describe(err), ", ")), err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("report.format", DefaultReportFormat)
	v.SetDefault("report.top", DefaultReportTop)
	v.SetDefault("report.output", "")
	v.SetDefault("report.max_failure_samples", DefaultMaxFailureSamples)
	v.SetDefault("metrics.textfile", "")
}
