package models

import "sort"

// TrafficSummary is the aggregate of one filtered record set. It is built once by
// the traffic aggregator and must be treated as read-only afterwards.
//
// Example JSON:
//
//	{
//	  "totalRecords": 2,
//	  "totalBytes": 2000,
//	  "requestsByIp": {"1.1.1.1": 1, "2.2.2.2": 1},
//	  "requestsByStatus": {"200": 1, "404": 1},
//	  "requestsByMethod": {"GET": 1, "POST": 1},
//	  "requestsByPath": {"/a": 1, "/b": 1},
//	  "requestsByUserAgent": {},
//	  "clientErrors": 1,
//	  "serverErrors": 0,
//	  "recentRecords": 2,
//	  "firstTimestamp": 100,
//	  "lastTimestamp": 101
//	}
type TrafficSummary struct {
	TotalRecords int64 `json:"totalRecords"`
	TotalBytes   int64 `json:"totalBytes"`

	RequestsByIP        map[string]int64 `json:"requestsByIp"`
	RequestsByStatus    map[int]int64    `json:"requestsByStatus"`
	RequestsByMethod    map[Method]int64 `json:"requestsByMethod"`
	RequestsByPath      map[string]int64 `json:"requestsByPath"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`

	ClientErrors  int64 `json:"clientErrors"`
	ServerErrors  int64 `json:"serverErrors"`
	RecentRecords int64 `json:"recentRecords"` // records in the 24h before the as-of time

	// Zero when the summary is empty.
	FirstTimestamp int64 `json:"firstTimestamp"`
	LastTimestamp  int64 `json:"lastTimestamp"`
}

func NewEmptyTrafficSummary() *TrafficSummary {
	return &TrafficSummary{
		RequestsByIP:        make(map[string]int64),
		RequestsByStatus:    make(map[int]int64),
		RequestsByMethod:    make(map[Method]int64),
		RequestsByPath:      make(map[string]int64),
		RequestsByUserAgent: make(map[string]int64),
	}
}

func (s *TrafficSummary) IsEmpty() bool {
	return s.TotalRecords == 0
}

// ErrorRate is the share of 4xx and 5xx responses, in [0, 1].
func (s *TrafficSummary) ErrorRate() float64 {
	if s.TotalRecords == 0 {
		return 0
	}
	return float64(s.ClientErrors+s.ServerErrors) / float64(s.TotalRecords)
}

// RankedCount is one entry of a top-N list.
type RankedCount struct {
	Key   string `json:"key" yaml:"key"`
	Count int64  `json:"count" yaml:"count"`
}

// TopIPs returns the n IPs with the most requests.
func (s *TrafficSummary) TopIPs(n int) []RankedCount {
	return TopN(s.RequestsByIP, n)
}

// TopPaths returns the n most requested paths.
func (s *TrafficSummary) TopPaths(n int) []RankedCount {
	return TopN(s.RequestsByPath, n)
}

// TopUserAgents returns the n most frequent user-agent families.
func (s *TrafficSummary) TopUserAgents(n int) []RankedCount {
	return TopN(s.RequestsByUserAgent, n)
}

// TopN ranks counts by count descending, breaking ties by ascending key, and keeps
// at most n entries. The order is total, so it does not depend on map iteration or
// on the order the counts were accumulated in.
func TopN(counts map[string]int64, n int) []RankedCount {
	if n <= 0 || len(counts) == 0 {
		return []RankedCount{}
	}

	ranked := make([]RankedCount, 0, len(counts))
	for k, v := range counts {
		ranked = append(ranked, RankedCount{Key: k, Count: v})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
