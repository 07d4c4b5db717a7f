package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogRecord_String(t *testing.T) {
	t.Parallel()

	record := LogRecord{IP: "1.1.1.1", Timestamp: 100, Method: MethodGet, Path: "/a", Status: 200, BytesSent: 500}
	assert.Equal(t, "1.1.1.1 100 GET /a 200 500", record.String())

	record.UserAgent = "curl/7.88.1"
	assert.Equal(t, `1.1.1.1 100 GET /a 200 500 "curl/7.88.1"`, record.String())
}

func TestLogRecord_ErrorClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     int
		wantClient bool
		wantServer bool
	}{
		{status: 200},
		{status: 399},
		{status: 400, wantClient: true},
		{status: 499, wantClient: true},
		{status: 500, wantServer: true},
		{status: 599, wantServer: true},
	}

	for _, tt := range tests {
		r := LogRecord{Status: tt.status}
		assert.Equal(t, tt.wantClient, r.IsClientError(), "status %d", tt.status)
		assert.Equal(t, tt.wantServer, r.IsServerError(), "status %d", tt.status)
	}
}

func TestParseResult_FailuresByReason(t *testing.T) {
	t.Parallel()

	result := &ParseResult{Failures: []ParseFailure{
		{LineNumber: 2, Reason: ReasonTooFewFields},
		{LineNumber: 5, Reason: ReasonInvalidMethod},
		{LineNumber: 9, Reason: ReasonTooFewFields},
	}}

	assert.Equal(t, map[FailureReason]int{
		ReasonTooFewFields:  2,
		ReasonInvalidMethod: 1,
	}, result.FailuresByReason())
	assert.Empty(t, (&ParseResult{}).FailuresByReason())
}

func TestStatusSelector(t *testing.T) {
	t.Parallel()

	exact := ExactStatus(404)
	assert.True(t, exact.IsExact())
	assert.True(t, exact.Contains(404))
	assert.False(t, exact.Contains(403))
	assert.Equal(t, "404", exact.String())

	rng := StatusSelector{Low: 400, High: 499}
	assert.False(t, rng.IsExact())
	assert.True(t, rng.Contains(400))
	assert.True(t, rng.Contains(499))
	assert.False(t, rng.Contains(500))
	assert.Equal(t, "400-499", rng.String())
}

func TestFilterSpec_String(t *testing.T) {
	t.Parallel()

	var nilSpec *FilterSpec
	assert.True(t, nilSpec.IsEmpty())
	assert.Equal(t, "none", nilSpec.String())
	assert.Equal(t, "none", (&FilterSpec{}).String())

	method := MethodPost
	status := StatusSelector{Low: 400, High: 499}
	start := int64(100)
	spec := &FilterSpec{Method: &method, Status: &status, Start: &start}
	assert.False(t, spec.IsEmpty())
	assert.Equal(t, "method=POST status=400-499 time=[100, *]", spec.String())
}

func TestTopN_TieBreakAndTruncation(t *testing.T) {
	t.Parallel()

	counts := map[string]int64{
		"10.0.0.2": 5,
		"10.0.0.1": 5,
		"9.9.9.9":  7,
		"1.1.1.1":  1,
	}

	assert.Equal(t, []RankedCount{
		{Key: "9.9.9.9", Count: 7},
		{Key: "10.0.0.1", Count: 5},
		{Key: "10.0.0.2", Count: 5},
	}, TopN(counts, 3))

	assert.Len(t, TopN(counts, 10), 4, "fewer keys than n returns all of them")
	assert.Empty(t, TopN(counts, 0))
	assert.Empty(t, TopN(nil, 3))
	assert.NotNil(t, TopN(nil, 3))
}

func TestTopN_IndependentOfInsertionOrder(t *testing.T) {
	t.Parallel()

	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	want := TopN(map[string]int64{"a": 2, "b": 2, "c": 2, "d": 1, "e": 3, "f": 1, "g": 2, "h": 3}, 5)

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		r.Shuffle(len(keys), func(a, b int) { keys[a], keys[b] = keys[b], keys[a] })
		counts := make(map[string]int64)
		for _, k := range keys {
			switch k {
			case "e", "h":
				counts[k] = 3
			case "d", "f":
				counts[k] = 1
			default:
				counts[k] = 2
			}
		}
		assert.Equal(t, want, TopN(counts, 5))
	}
}

func TestTrafficSummary_ErrorRate(t *testing.T) {
	t.Parallel()

	empty := NewEmptyTrafficSummary()
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0.0, empty.ErrorRate())

	s := &TrafficSummary{TotalRecords: 8, ClientErrors: 1, ServerErrors: 1}
	assert.InDelta(t, 0.25, s.ErrorRate(), 1e-9)
}
