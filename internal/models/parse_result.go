package models

// FailureReason is a stable code describing why a line did not become a record.
type FailureReason string

const (
	ReasonTooFewFields       FailureReason = "too_few_fields"
	ReasonMalformedTimestamp FailureReason = "malformed_timestamp"
	ReasonMalformedStatus    FailureReason = "malformed_status"
	ReasonMalformedBytes     FailureReason = "malformed_bytes"
	ReasonInvalidIP          FailureReason = "invalid_ip"
	ReasonInvalidTimestamp   FailureReason = "invalid_timestamp"
	ReasonInvalidMethod      FailureReason = "invalid_method"
	ReasonInvalidPath        FailureReason = "invalid_path"
	ReasonInvalidStatus      FailureReason = "invalid_status"
	ReasonInvalidBytes       FailureReason = "invalid_bytes"
	ReasonInvalidRecord      FailureReason = "invalid_record"
)

// ParseFailure describes a line that was skipped. LineNumber is 1-based and is
// zero when the failure was produced outside of a file (single-line parsing).
type ParseFailure struct {
	LineNumber int           `json:"lineNumber"`
	Reason     FailureReason `json:"reason"`
	Detail     string        `json:"detail"`
	RawLine    string        `json:"rawLine"`
}

// ParseResult is the outcome of reading one log file: every valid record in file
// order plus full accounting of the lines that were dropped.
type ParseResult struct {
	Records    []LogRecord
	Failures   []ParseFailure
	TotalLines int
	BlankLines int
}

// FailuresByReason counts failures per reason.
func (p *ParseResult) FailuresByReason() map[FailureReason]int {
	counts := make(map[FailureReason]int)
	for _, f := range p.Failures {
		counts[f.Reason]++
	}
	return counts
}
