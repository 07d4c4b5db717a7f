package models

// Report is everything a renderer needs to describe one run.
type Report struct {
	RunID  string
	Source string
	Filter *FilterSpec
	TopN   int

	// MaxFailureSamples caps how many skipped lines are echoed back.
	MaxFailureSamples int

	Parse   *ParseResult
	Summary *TrafficSummary
}
