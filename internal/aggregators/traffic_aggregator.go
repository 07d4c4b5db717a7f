package aggregators

import (
	"math"
	"time"

	"traffic-analyzer/internal/models"

	"github.com/mileusna/useragent"
)

// RecentWindow is the span before the as-of time counted in TrafficSummary.RecentRecords.
const RecentWindow = 24 * time.Hour

//go:generate mockgen -source=traffic_aggregator.go -destination=./mocks/traffic_aggregator_mock.go -package=mocks
type TrafficAggregator interface {
	// Aggregate builds the summary of records in one traversal. An empty input
	// yields an empty summary, never an error.
	Aggregate(records []models.LogRecord) *models.TrafficSummary
}

type trafficAggregator struct {
	recentFrom int64 // exclusive
	recentTo   int64 // inclusive
}

// NewTrafficAggregator returns an aggregator that counts records in the
// (asOf-24h, asOf] window as recent.
func NewTrafficAggregator(asOf time.Time) TrafficAggregator {
	return &trafficAggregator{
		recentFrom: asOf.Add(-RecentWindow).Unix(),
		recentTo:   asOf.Unix(),
	}
}

func (a *trafficAggregator) Aggregate(records []models.LogRecord) *models.TrafficSummary {
	summary := models.NewEmptyTrafficSummary()

	for _, record := range records {
		summary.TotalRecords++
		summary.TotalBytes = addBytes(summary.TotalBytes, record.BytesSent)
		metricAggregatedBytesTotal.Add(float64(record.BytesSent))

		summary.RequestsByIP[record.IP]++
		summary.RequestsByStatus[record.Status]++
		summary.RequestsByMethod[record.Method]++
		summary.RequestsByPath[record.Path]++
		if record.UserAgent != "" {
			summary.RequestsByUserAgent[normalizeUserAgent(record.UserAgent)]++
		}

		switch {
		case record.IsClientError():
			summary.ClientErrors++
		case record.IsServerError():
			summary.ServerErrors++
		}

		if record.Timestamp > a.recentFrom && record.Timestamp <= a.recentTo {
			summary.RecentRecords++
		}

		if summary.FirstTimestamp == 0 || record.Timestamp < summary.FirstTimestamp {
			summary.FirstTimestamp = record.Timestamp
		}
		if record.Timestamp > summary.LastTimestamp {
			summary.LastTimestamp = record.Timestamp
		}
	}

	metricAggregatedRecordsTotal.Add(float64(summary.TotalRecords))

	return summary
}

// addBytes sums two non-negative byte counts, saturating at math.MaxInt64.
func addBytes(total, n int64) int64 {
	if n > math.MaxInt64-total {
		return math.MaxInt64
	}
	return total + n
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}
