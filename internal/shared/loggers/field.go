package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldSource    = "source"

	FieldLineNumber = "line_number"
	FieldReason     = "reason"
	FieldDetail     = "detail"

	FieldTotalLines = "total_lines"
	FieldBlankLines = "blank_lines"
	FieldParsed     = "parsed"
	FieldFailed     = "failed"
	FieldMatched    = "matched"
	FieldFilter     = "filter"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"
)
