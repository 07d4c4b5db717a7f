package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format            string `mapstructure:"format" validate:"required,oneof=text json yaml"`
	Top               int    `mapstructure:"top" validate:"min=1"`
	Output            string `mapstructure:"output"`                               // empty means stdout
	MaxFailureSamples int    `mapstructure:"max_failure_samples" validate:"min=0"` // skipped lines echoed in the report
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"` // empty disables the export
}
