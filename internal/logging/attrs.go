package logging

import (
	"log/slog"
	"time"
)

// Field keys shared by every component.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	// FieldEventType classifies a line for filtering, e.g. title_rejected.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to check next.
	FieldErrorHint = "error_hint"
	FieldTitle     = "title"
)

const defaultErrorHint = "check logs for details"

type Attr = slog.Attr

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func String(key, value string) Attr { return slog.String(key, value) }

// Error wraps err under the "error" key. A nil error is logged as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a no-op base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// WithRunID tags every line of logger with the run identifier.
func WithRunID(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if runID == "" {
		return logger
	}
	return logger.With(String(FieldRunID, runID))
}

// WarnWithContext logs a warning that always carries event_type and
// error_hint. Caller-supplied values for either key are kept.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	var hasEvent, hasHint bool
	args := make([]any, 0, len(attrs)+2)
	for _, a := range attrs {
		hasEvent = hasEvent || a.Key == FieldEventType
		hasHint = hasHint || a.Key == FieldErrorHint
		args = append(args, a)
	}
	if !hasEvent {
		args = append(args, String(FieldEventType, eventType))
	}
	if !hasHint {
		args = append(args, String(FieldErrorHint, defaultErrorHint))
	}
	logger.Warn(msg, args...)
}
