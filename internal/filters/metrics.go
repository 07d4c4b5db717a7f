package filters

import (
	"traffic-analyzer/internal/shared/metrics"
)

const (
	outcomeMatched  = "matched"
	outcomeRejected = "rejected"
)

// metricFilterRecordsTotal counts records passed through Apply, labelled
// "matched" or "rejected".
var (
	metricFilterRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubFilter,
			Name:      "records_total",
		},
		[]string{metrics.FieldOutcome},
	)
)
