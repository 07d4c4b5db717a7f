package aggregators

import (
	"testing"
	"time"

	"traffic-analyzer/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Not parallel: reads process-wide counters.
func TestAggregate_CountsRecordsAndBytes(t *testing.T) {
	recordsBefore := testutil.ToFloat64(metricAggregatedRecordsTotal)
	bytesBefore := testutil.ToFloat64(metricAggregatedBytesTotal)

	NewTrafficAggregator(time.Now()).Aggregate([]models.LogRecord{
		{IP: "1.1.1.1", Timestamp: 1, Method: models.MethodGet, Path: "/", Status: 200, BytesSent: 1000},
		{IP: "2.2.2.2", Timestamp: 2, Method: models.MethodGet, Path: "/", Status: 200, BytesSent: 24},
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(metricAggregatedRecordsTotal)-recordsBefore)
	assert.Equal(t, 1024.0, testutil.ToFloat64(metricAggregatedBytesTotal)-bytesBefore)
}
