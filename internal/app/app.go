package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime/debug"
	"time"

	"traffic-analyzer/internal/aggregators"
	"traffic-analyzer/internal/filters"
	"traffic-analyzer/internal/ingestors"
	"traffic-analyzer/internal/models"
	"traffic-analyzer/internal/reports"
	"traffic-analyzer/internal/shared/configs"
	"traffic-analyzer/internal/shared/filestorages"
	"traffic-analyzer/internal/shared/loggers"
	"traffic-analyzer/internal/shared/metrics"
	"traffic-analyzer/internal/shared/svcerrors"
	"traffic-analyzer/internal/shared/ulid"
	"traffic-analyzer/internal/stores"
)

const appName = "traffic-analyzer"

// App holds all application dependencies for one analyzer invocation.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	stdout    io.Writer

	recordParser  ingestors.RecordParser
	recordFilter  filters.RecordFilter
	newAggregator func(asOf time.Time) aggregators.TrafficAggregator
	renderer      reports.Renderer

	// reportStore is nil when the report goes to stdout.
	reportStore stores.ReportStore
	reportKey   string
}

// RunOptions are the per-invocation inputs that do not come from configuration.
type RunOptions struct {
	LogFile string
	Filter  filters.FilterArgs
	AsOf    time.Time // zero means now
}

// Option replaces a dependency New would otherwise build from config.
type Option func(*App)

func WithRecordFilter(recordFilter filters.RecordFilter) Option {
	return func(app *App) { app.recordFilter = recordFilter }
}

func WithTrafficAggregator(newAggregator func(asOf time.Time) aggregators.TrafficAggregator) Option {
	return func(app *App) { app.newAggregator = newAggregator }
}

func WithRenderer(renderer reports.Renderer) Option {
	return func(app *App) { app.renderer = renderer }
}

// WithReportStore takes effect only when config.Report.Output is set.
func WithReportStore(reportStore stores.ReportStore) Option {
	return func(app *App) {
		if app.reportStore != nil {
			app.reportStore = reportStore
		}
	}
}

// New creates and initializes a new App instance. Reports are written to stdout
// unless config.Report.Output names a file.
func New(config *configs.Config, stdout io.Writer, opts ...Option) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	renderer, err := reports.NewRenderer(config.Report.Format)
	if err != nil {
		return nil, err
	}

	app := &App{
		config:        config,
		appLogger:     appLogger,
		stdout:        stdout,
		recordParser:  ingestors.NewRecordParser(),
		recordFilter:  filters.NewRecordFilter(),
		newAggregator: aggregators.NewTrafficAggregator,
		renderer:      renderer,
	}

	if config.Report.Output != "" {
		outputPath, err := filepath.Abs(config.Report.Output)
		if err != nil {
			return nil, errInvalidOutputPath(config.Report.Output, err)
		}
		fileStorage, err := filestorages.NewFileStorage(filepath.Dir(outputPath))
		if err != nil {
			return nil, errInvalidOutputPath(config.Report.Output, err)
		}
		app.reportStore = stores.NewReportStore(fileStorage)
		app.reportKey = filepath.Base(outputPath)
	}

	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Run executes ingest, filter, aggregate and render for one log file, then
// delivers the report. Nothing is written to the report destination unless every
// stage succeeded. Returned errors are ServiceErrors.
func (app *App) Run(ctx context.Context, opts RunOptions) (err error) {
	start := time.Now()
	runID := ulid.NewULID()
	ctx = app.appLogger.With().
		Str(loggers.FieldRunID, runID).
		Logger().WithContext(ctx)

	defer func() {
		if p := recover(); p != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", p)

			var panicErr error
			if e, ok := p.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			err = svcerrors.NewInternalErrorPanic(panicErr)
		}
		if err != nil {
			if _, ok := svcerrors.AsServiceError(err); !ok {
				err = svcerrors.NewInternalErrorUndefined(err)
			}
		}
		app.finishRun(ctx, start, err)
	}()

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldSource, opts.LogFile).
		Msgf("starting run (report_format=%s, top=%d)", app.renderer.Format(), app.config.Report.Top)

	body, err := app.analyze(ctx, runID, opts)
	if err != nil {
		return err
	}
	return app.publish(ctx, body)
}

func (app *App) analyze(ctx context.Context, runID string, opts RunOptions) ([]byte, error) {
	logger := loggers.Ctx(ctx)

	spec, err := filters.NewFilterSpec(opts.Filter)
	if err != nil {
		return nil, err
	}

	if opts.LogFile == "" {
		return nil, errInvalidLogFilePath(opts.LogFile, nil)
	}
	logPath, err := filepath.Abs(opts.LogFile)
	if err != nil {
		return nil, errInvalidLogFilePath(opts.LogFile, err)
	}
	fileStorage, err := filestorages.NewFileStorage(filepath.Dir(logPath))
	if err != nil {
		return nil, errInvalidLogFilePath(opts.LogFile, err)
	}

	ingestionService := ingestors.NewIngestionService(app.recordParser, fileStorage)
	parsed, err := ingestionService.Ingest(ctx, filepath.Base(logPath))
	if err != nil {
		return nil, err
	}

	matched := app.recordFilter.Apply(parsed.Records, spec)
	logger.Info().
		Str(loggers.FieldFilter, spec.String()).
		Int(loggers.FieldMatched, len(matched)).
		Msg("filtered records")

	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}
	summary := app.newAggregator(asOf).Aggregate(matched)

	report := &models.Report{
		RunID:             runID,
		Source:            opts.LogFile,
		Filter:            spec,
		TopN:              app.config.Report.Top,
		MaxFailureSamples: app.config.Report.MaxFailureSamples,
		Parse:             parsed,
		Summary:           summary,
	}

	var buf bytes.Buffer
	if err := app.renderer.Render(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (app *App) publish(ctx context.Context, body []byte) error {
	if app.reportStore == nil {
		if _, err := app.stdout.Write(body); err != nil {
			return errInternalOutputFailed(err)
		}
		return nil
	}

	if err := app.reportStore.Put(ctx, app.reportKey, body); err != nil {
		return errInternalOutputFailed(err)
	}
	loggers.Ctx(ctx).Info().Msgf("report written to %s", app.config.Report.Output)
	return nil
}

// finishRun logs the outcome, records run metrics and exports them when a
// textfile is configured. A failed export is logged and never fails the run.
func (app *App) finishRun(ctx context.Context, start time.Time, err error) {
	logger := loggers.Ctx(ctx)
	duration := time.Since(start)

	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
	}

	metricRunsTotal.WithLabelValues(errorCode).Inc()
	metricRunDuration.WithLabelValues(errorCode).Observe(duration.Seconds())

	if err != nil {
		logger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, errorCode).
			Int64(loggers.FieldDuration, duration.Milliseconds()).
			Msg("run failed")
	} else {
		logger.Info().
			Int64(loggers.FieldDuration, duration.Milliseconds()).
			Msg("run completed")
	}

	if path := app.config.Metrics.Textfile; path != "" {
		if exportErr := metrics.WriteTextfile(path); exportErr != nil {
			logger.Warn().Err(exportErr).Msg("metrics export skipped")
		}
	}
}
