package filters

import (
	"traffic-analyzer/internal/models"
)

//go:generate mockgen -source=record_filter.go -destination=./mocks/record_filter_mock.go -package=mocks
type RecordFilter interface {
	// Matches reports whether record satisfies every predicate present in spec.
	// A nil or empty spec matches every record.
	Matches(record models.LogRecord, spec *models.FilterSpec) bool

	// Apply returns the matching records in their original order. The result is
	// always a new slice; records is never modified.
	Apply(records []models.LogRecord, spec *models.FilterSpec) []models.LogRecord
}

type recordFilter struct{}

func NewRecordFilter() RecordFilter {
	return &recordFilter{}
}

func (f *recordFilter) Matches(record models.LogRecord, spec *models.FilterSpec) bool {
	if spec.IsEmpty() {
		return true
	}
	if spec.Method != nil && record.Method != *spec.Method {
		return false
	}
	if spec.Status != nil && !spec.Status.Contains(record.Status) {
		return false
	}
	if spec.Start != nil && record.Timestamp < *spec.Start {
		return false
	}
	if spec.End != nil && record.Timestamp > *spec.End {
		return false
	}
	return true
}

func (f *recordFilter) Apply(records []models.LogRecord, spec *models.FilterSpec) []models.LogRecord {
	matched := make([]models.LogRecord, 0, len(records))
	for _, record := range records {
		if f.Matches(record, spec) {
			matched = append(matched, record)
		}
	}

	metricFilterRecordsTotal.WithLabelValues(outcomeMatched).Add(float64(len(matched)))
	metricFilterRecordsTotal.WithLabelValues(outcomeRejected).Add(float64(len(records) - len(matched)))

	return matched
}
