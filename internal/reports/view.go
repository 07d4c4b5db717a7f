package reports

import (
	"sort"
	"time"

	"traffic-analyzer/internal/models"
)

// View is the format-independent content of a report. Every collection is an
// ordered slice so all renderers print the same order.
type View struct {
	RunID   string `json:"runId" yaml:"run_id"`
	Source  string `json:"source" yaml:"source"`
	Filters string `json:"filters" yaml:"filters"`

	Lines LineStats `json:"lines" yaml:"lines"`

	SkippedByReason []ReasonCount   `json:"skippedByReason" yaml:"skipped_by_reason"`
	FailureSamples  []FailureSample `json:"failureSamples" yaml:"failure_samples"`

	TopN               int                  `json:"topN" yaml:"top_n"`
	TopIPs             []models.RankedCount `json:"topIps" yaml:"top_ips"`
	StatusDistribution []StatusCount        `json:"statusDistribution" yaml:"status_distribution"`
	MethodDistribution []MethodCount        `json:"methodDistribution" yaml:"method_distribution"`
	TopPaths           []models.RankedCount `json:"topPaths" yaml:"top_paths"`
	UserAgents         []models.RankedCount `json:"userAgents" yaml:"user_agents"`

	Errors        ErrorStats `json:"errors" yaml:"errors"`
	RecentRecords int64      `json:"recentRecords" yaml:"recent_records"`

	// RFC 3339, UTC. Empty when nothing matched.
	FirstSeen string `json:"firstSeen,omitempty" yaml:"first_seen,omitempty"`
	LastSeen  string `json:"lastSeen,omitempty" yaml:"last_seen,omitempty"`

	TotalBytes      int64  `json:"totalBytes" yaml:"total_bytes"`
	TotalBytesHuman string `json:"totalBytesHuman" yaml:"total_bytes_human"`
}

type LineStats struct {
	Total   int   `json:"total" yaml:"total"`
	Blank   int   `json:"blank" yaml:"blank"`
	Parsed  int   `json:"parsed" yaml:"parsed"`
	Skipped int   `json:"skipped" yaml:"skipped"`
	Matched int64 `json:"matched" yaml:"matched"`
}

type ReasonCount struct {
	Reason models.FailureReason `json:"reason" yaml:"reason"`
	Count  int                  `json:"count" yaml:"count"`
}

type FailureSample struct {
	LineNumber int                  `json:"lineNumber" yaml:"line_number"`
	Reason     models.FailureReason `json:"reason" yaml:"reason"`
	Detail     string               `json:"detail" yaml:"detail"`
	RawLine    string               `json:"rawLine" yaml:"raw_line"`
}

type StatusCount struct {
	Status int   `json:"status" yaml:"status"`
	Count  int64 `json:"count" yaml:"count"`
}

type MethodCount struct {
	Method models.Method `json:"method" yaml:"method"`
	Count  int64         `json:"count" yaml:"count"`
}

type ErrorStats struct {
	ClientErrors int64   `json:"clientErrors" yaml:"client_errors"`
	ServerErrors int64   `json:"serverErrors" yaml:"server_errors"`
	ErrorRate    float64 `json:"errorRate" yaml:"error_rate"`
}

// NewView flattens report into its printable form.
func NewView(report *models.Report) *View {
	parse := report.Parse
	if parse == nil {
		parse = &models.ParseResult{}
	}
	summary := report.Summary
	if summary == nil {
		summary = models.NewEmptyTrafficSummary()
	}

	view := &View{
		RunID:   report.RunID,
		Source:  report.Source,
		Filters: report.Filter.String(),
		Lines: LineStats{
			Total:   parse.TotalLines,
			Blank:   parse.BlankLines,
			Parsed:  len(parse.Records),
			Skipped: len(parse.Failures),
			Matched: summary.TotalRecords,
		},
		SkippedByReason:    skippedByReason(parse),
		FailureSamples:     failureSamples(parse, report.MaxFailureSamples),
		TopN:               report.TopN,
		TopIPs:             summary.TopIPs(report.TopN),
		StatusDistribution: statusDistribution(summary),
		MethodDistribution: methodDistribution(summary),
		TopPaths:           summary.TopPaths(report.TopN),
		UserAgents:         summary.TopUserAgents(report.TopN),
		Errors: ErrorStats{
			ClientErrors: summary.ClientErrors,
			ServerErrors: summary.ServerErrors,
			ErrorRate:    summary.ErrorRate(),
		},
		RecentRecords:   summary.RecentRecords,
		TotalBytes:      summary.TotalBytes,
		TotalBytesHuman: FormatBytes(summary.TotalBytes),
	}

	if !summary.IsEmpty() {
		view.FirstSeen = formatUnix(summary.FirstTimestamp)
		view.LastSeen = formatUnix(summary.LastTimestamp)
	}

	return view
}

// skippedByReason orders reasons by count descending, then by name.
func skippedByReason(parse *models.ParseResult) []ReasonCount {
	counts := parse.FailuresByReason()
	out := make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		out = append(out, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

func failureSamples(parse *models.ParseResult, limit int) []FailureSample {
	if limit > len(parse.Failures) {
		limit = len(parse.Failures)
	}
	if limit < 0 {
		limit = 0
	}
	out := make([]FailureSample, 0, limit)
	for _, f := range parse.Failures[:limit] {
		out = append(out, FailureSample{
			LineNumber: f.LineNumber,
			Reason:     f.Reason,
			Detail:     f.Detail,
			RawLine:    f.RawLine,
		})
	}
	return out
}

func statusDistribution(summary *models.TrafficSummary) []StatusCount {
	out := make([]StatusCount, 0, len(summary.RequestsByStatus))
	for status, count := range summary.RequestsByStatus {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

// methodDistribution lists methods in models.Methods order, omitting unseen ones.
func methodDistribution(summary *models.TrafficSummary) []MethodCount {
	out := make([]MethodCount, 0, len(summary.RequestsByMethod))
	for _, method := range models.Methods {
		if count := summary.RequestsByMethod[method]; count > 0 {
			out = append(out, MethodCount{Method: method, Count: count})
		}
	}
	return out
}

func formatUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
