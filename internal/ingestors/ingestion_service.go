package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"traffic-analyzer/internal/models"
	"traffic-analyzer/internal/shared/filestorages"
	"traffic-analyzer/internal/shared/loggers"
	"traffic-analyzer/internal/shared/metrics"
)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest reads the whole log file stored under key and parses every line once, in
	// file order. Malformed lines are counted in the result; only an unusable file fails.
	Ingest(ctx context.Context, key string) (*models.ParseResult, error)
}

type ingestionService struct {
	recordParser RecordParser
	fileStorage  filestorages.FileStorage
}

func NewIngestionService(recordParser RecordParser, fileStorage filestorages.FileStorage) IngestionService {
	return &ingestionService{
		recordParser: recordParser,
		fileStorage:  fileStorage,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, key string) (*models.ParseResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting log file: %s", key)

	lines, err := s.readLines(ctx, key)
	if err != nil {
		return nil, err
	}

	result := &models.ParseResult{
		TotalLines: len(lines),
		Records:    make([]models.LogRecord, 0, len(lines)),
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			result.BlankLines++
			continue
		}

		record, failure := s.recordParser.Parse(line)
		if failure != nil {
			failure.LineNumber = i + 1
			result.Failures = append(result.Failures, *failure)
			metricLinesIngestedTotal.WithLabelValues(string(failure.Reason)).Inc()

			logger.Debug().
				Int(loggers.FieldLineNumber, failure.LineNumber).
				Str(loggers.FieldReason, string(failure.Reason)).
				Str(loggers.FieldDetail, failure.Detail).
				Msg("skipped malformed line")
			continue
		}

		result.Records = append(result.Records, record)
		metricLinesIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	}

	logger.Info().
		Str(loggers.FieldSource, key).
		Int(loggers.FieldTotalLines, result.TotalLines).
		Int(loggers.FieldBlankLines, result.BlankLines).
		Int(loggers.FieldParsed, len(result.Records)).
		Int(loggers.FieldFailed, len(result.Failures)).
		Msg("finished ingesting log file")

	return result, nil
}

// readLines loads the file fully into memory and splits it into lines.
func (s *ingestionService) readLines(ctx context.Context, key string) ([]string, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, filestorages.ErrFileNotFound):
			return nil, errLogFileNotFound(key, err)
		case errors.Is(err, filestorages.ErrInvalidKey):
			return nil, errInvalidLogFileKey(key, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, errInternalIngestionAborted(err)
		default:
			return nil, errLogFileUnreadable(key, err)
		}
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, errLogFileUnreadable(key, fmt.Errorf("read failed: %w", err))
	}

	return splitLines(string(data)), nil
}

// splitLines splits on '\n' and drops a trailing '\r' from each line. The empty
// segment after a final newline is not a line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
