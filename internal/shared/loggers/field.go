package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldLogKind   = "log_kind"
	FieldFileKey   = "file_key"
	FieldLineCount = "line_count"
	FieldSkipped   = "skipped"
	FieldSeries    = "series"
)
