package mylog

import "context"

type Severity string

const (
	SeverityDebug Severity = "DEBUG"
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// New is bound in init() to the standard or the gcloud logger, depending on GOOGLE_CLOUD_PROJECT.
var New func(componentName string) Logger

// Logger writes one line per call; traceLabel is the basket uid when there is one.
type Logger interface {
	Log(c context.Context, traceLabel string, severity Severity, format string, a ...any)
}
