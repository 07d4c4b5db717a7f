package app

import (
	"traffic-analyzer/internal/shared/metrics"
)

var (
	// metricRunsTotal counts finished runs; error_code is empty on success.
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubRun,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)
)
