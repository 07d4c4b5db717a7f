package aggregators

import (
	"traffic-analyzer/internal/shared/metrics"
)

// metricAggregatedRecordsTotal counts the filtered records folded into summaries.
//
// Together with traffic_analyzer_filter_records_total{outcome="matched"} it should
// always move by the same amount within a run; a gap means a stage dropped records.
var (
	metricAggregatedRecordsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_total",
		},
	)

	// metricAggregatedBytesTotal sums bytes_sent over the aggregated records.
	metricAggregatedBytesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "bytes_total",
		},
	)
)
