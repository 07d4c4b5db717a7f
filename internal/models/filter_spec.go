package models

import (
	"fmt"
	"strings"
)

const (
	MinStatus = 100
	MaxStatus = 599
)

// StatusSelector matches status codes in the inclusive range [Low, High].
// An exact code is stored as Low == High.
type StatusSelector struct {
	Low  int
	High int
}

func ExactStatus(code int) StatusSelector {
	return StatusSelector{Low: code, High: code}
}

func (s StatusSelector) IsExact() bool {
	return s.Low == s.High
}

func (s StatusSelector) Contains(status int) bool {
	return s.Low <= status && status <= s.High
}

func (s StatusSelector) String() string {
	if s.IsExact() {
		return fmt.Sprintf("%d", s.Low)
	}
	return fmt.Sprintf("%d-%d", s.Low, s.High)
}

// FilterSpec holds the optional record predicates of one run. A nil field means
// the predicate is absent and matches everything; present predicates are ANDed.
// Construct it with filters.NewFilterSpec, which validates every field.
type FilterSpec struct {
	Method *Method
	Status *StatusSelector
	Start  *int64 // inclusive lower bound on Timestamp
	End    *int64 // inclusive upper bound on Timestamp
}

// IsEmpty reports whether no predicate is present.
func (f *FilterSpec) IsEmpty() bool {
	return f == nil || (f.Method == nil && f.Status == nil && f.Start == nil && f.End == nil)
}

// String describes the present predicates, or "none".
func (f *FilterSpec) String() string {
	if f.IsEmpty() {
		return "none"
	}
	var parts []string
	if f.Method != nil {
		parts = append(parts, "method="+string(*f.Method))
	}
	if f.Status != nil {
		parts = append(parts, "status="+f.Status.String())
	}
	if f.Start != nil || f.End != nil {
		parts = append(parts, "time=["+boundString(f.Start)+", "+boundString(f.End)+"]")
	}
	return strings.Join(parts, " ")
}

func boundString(b *int64) string {
	if b == nil {
		return "*"
	}
	return fmt.Sprintf("%d", *b)
}
