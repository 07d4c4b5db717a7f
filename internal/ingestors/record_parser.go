package ingestors

import (
	"fmt"
	"strconv"
	"strings"

	"traffic-analyzer/internal/models"
	"traffic-analyzer/internal/shared/validators"
)

// requiredFields is the number of leading whitespace-separated tokens every line must carry:
// ip, timestamp, method, path, status, bytes.
const requiredFields = 6

// fieldReasons maps LogRecord fields to the failure reported when validation rejects them.
var fieldReasons = map[string]models.FailureReason{
	"IP":        models.ReasonInvalidIP,
	"Timestamp": models.ReasonInvalidTimestamp,
	"Method":    models.ReasonInvalidMethod,
	"Path":      models.ReasonInvalidPath,
	"Status":    models.ReasonInvalidStatus,
	"BytesSent": models.ReasonInvalidBytes,
}

// RecordParser converts one raw log line into a validated record. Exactly one of the
// returned values is meaningful: a non-nil failure means the record is the zero value.
//
//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	Parse(line string) (models.LogRecord, *models.ParseFailure)
}

type recordParser struct {
	validate *validators.Validate
}

func NewRecordParser() RecordParser {
	return &recordParser{validate: validators.New()}
}

func (p *recordParser) Parse(line string) (models.LogRecord, *models.ParseFailure) {
	fields := strings.Fields(line)
	if len(fields) < requiredFields {
		return models.LogRecord{}, failure(line, models.ReasonTooFewFields,
			fmt.Sprintf("expected at least %d fields, got %d", requiredFields, len(fields)))
	}

	timestamp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || nonCanonicalSign(fields[1], timestamp) {
		return models.LogRecord{}, failure(line, models.ReasonMalformedTimestamp,
			fmt.Sprintf("timestamp %q is not an integer", fields[1]))
	}
	status, err := strconv.Atoi(fields[4])
	if err != nil || nonCanonicalSign(fields[4], int64(status)) {
		return models.LogRecord{}, failure(line, models.ReasonMalformedStatus,
			fmt.Sprintf("status %q is not an integer", fields[4]))
	}
	bytesSent, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil || nonCanonicalSign(fields[5], bytesSent) {
		return models.LogRecord{}, failure(line, models.ReasonMalformedBytes,
			fmt.Sprintf("bytes %q is not an integer", fields[5]))
	}

	record := models.LogRecord{
		IP:        fields[0],
		Timestamp: timestamp,
		Method:    models.Method(fields[2]),
		Path:      fields[3],
		Status:    status,
		BytesSent: bytesSent,
		UserAgent: userAgent(fields[requiredFields:]),
	}

	if err := p.validate.Struct(&record); err != nil {
		return models.LogRecord{}, p.validationFailure(line, err)
	}
	return record, nil
}

// validationFailure reports the first rejected field, in struct field order.
func (p *recordParser) validationFailure(line string, err error) *models.ParseFailure {
	ve, ok := err.(validators.ValidationErrors)
	if !ok || len(ve) == 0 {
		return failure(line, models.ReasonInvalidRecord, err.Error())
	}
	first := ve[0]
	reason, ok := fieldReasons[first.StructField()]
	if !ok {
		reason = models.ReasonInvalidRecord
	}
	return failure(line, reason, fmt.Sprintf("%s %q violates %s", strings.ToLower(first.StructField()), fmt.Sprint(first.Value()), ruleString(first)))
}

func ruleString(e validators.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}

// nonCanonicalSign reports a sign LogRecord.String never writes: "+N" or "-0".
func nonCanonicalSign(token string, value int64) bool {
	return strings.HasPrefix(token, "+") || (strings.HasPrefix(token, "-") && value == 0)
}

// userAgent joins the trailing tokens and strips one pair of surrounding quotes.
func userAgent(tokens []string) string {
	ua := strings.Join(tokens, " ")
	if len(ua) >= 2 && ua[0] == '"' && ua[len(ua)-1] == '"' {
		ua = ua[1 : len(ua)-1]
	}
	return ua
}

func failure(line string, reason models.FailureReason, detail string) *models.ParseFailure {
	return &models.ParseFailure{
		Reason:  reason,
		Detail:  detail,
		RawLine: line,
	}
}
