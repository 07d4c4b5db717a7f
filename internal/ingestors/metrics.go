package ingestors

import (
	"traffic-analyzer/internal/shared/metrics"
)

// metricLinesIngestedTotal counts non-blank lines by parse outcome. Parsed lines
// carry an empty reason; skipped lines carry their failure reason, e.g. "too_few_fields".
var (
	metricLinesIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldReason},
	)
)
