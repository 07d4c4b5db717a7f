package models

import (
	"strconv"
	"strings"
)

// LogRecord is one validated access log entry.
//
// The on-disk grammar is one record per line, fields separated by whitespace:
//
//	ip timestamp method path status bytes [user-agent]
//
// Example:
//
//	203.0.113.7 1735408995 GET /about 200 5120 "Mozilla/5.0 (X11; Linux x86_64) Firefox/121.0"
//
// Everything after the sixth field is the optional user agent, with surrounding
// double quotes stripped. Records are only built by the record parser once every
// field passed validation, and are passed around by value.
type LogRecord struct {
	IP        string `json:"ip" validate:"required,ip"`
	Timestamp int64  `json:"timestamp" validate:"gt=0"`
	Method    Method `json:"method" validate:"oneof=GET POST PUT DELETE PATCH HEAD OPTIONS"`
	Path      string `json:"path" validate:"required"`
	Status    int    `json:"status" validate:"min=100,max=599"`
	BytesSent int64  `json:"bytesSent" validate:"min=0"`
	UserAgent string `json:"userAgent,omitempty"`
}

// String renders the record back into its log line form.
func (r LogRecord) String() string {
	var b strings.Builder
	b.WriteString(r.IP)
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(r.Timestamp, 10))
	b.WriteByte(' ')
	b.WriteString(string(r.Method))
	b.WriteByte(' ')
	b.WriteString(r.Path)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.Status))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(r.BytesSent, 10))
	if r.UserAgent != "" {
		b.WriteString(` "`)
		b.WriteString(r.UserAgent)
		b.WriteByte('"')
	}
	return b.String()
}

// IsClientError reports a 4xx status.
func (r LogRecord) IsClientError() bool {
	return r.Status >= 400 && r.Status <= 499
}

// IsServerError reports a 5xx status.
func (r LogRecord) IsServerError() bool {
	return r.Status >= 500 && r.Status <= 599
}
