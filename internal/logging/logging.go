// Package logging provides the JSON loggers used across the app.
// Every event is one JSON object per line on standard output:
//
//	{"timestamp": ..., "level": ..., "message": ..., "logger": ...}
//
// Access logging is a separate stream with its own shape, see NewAccess.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// New creates a named application logger writing to w.
func New(w io.Writer, name string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})

	return slog.New(handler).With(slog.String("logger", name))
}

// NewAccess creates the access log stream writing to w:
//
//	{"timestamp": ..., "event": "request", "method": ..., "path": ...,
//	 "status": ..., "host": ..., "request_time": ...}
func NewAccess(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: accessReplaceAttr,
	})

	return slog.New(handler)
}

// Err shapes an error as the error sub-object used across log events
func Err(err error) slog.Attr {
	return slog.Group("error",
		slog.String("type", fmt.Sprintf("%T", err)),
		slog.String("message", err.Error()),
	)
}

// Panic shapes a recovered panic value and its stack
// as an error sub-object with a traceback
func Panic(value any, stack []byte) slog.Attr {
	return slog.Group("error",
		slog.String("type", fmt.Sprintf("%T", value)),
		slog.String("message", fmt.Sprint(value)),
		slog.String("traceback", string(stack)),
	)
}

// Rename the builtin slog keys to the schema the service logs in
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		a.Key = "timestamp"
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	case slog.MessageKey:
		a.Key = "message"
	}

	return a
}

// Access entries carry their own event field,
// so drop the builtin level and message keys entirely
func accessReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		a.Key = "timestamp"
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	case slog.LevelKey, slog.MessageKey:
		return slog.Attr{}
	}

	return a
}
