package errors

import (
	"log/slog"

	"github.com/go-drift/termdrift/pkg/logging"
)

// LogHandler is an ErrorHandler that writes errors through the framework logger.
// Output is silent until logging.SetLogger installs a real logger.
type LogHandler struct {
	// Verbose adds stack traces to the logged records.
	Verbose bool
}

// HandleError logs a TermError at error level.
func (h *LogHandler) HandleError(err *TermError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("termdrift error", attrs...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Error("termdrift panic", attrs...)
}

// HandleRefreshError logs a RefreshError at warn level; the failing
// Context keeps rendering its previous view.
func (h *LogHandler) HandleRefreshError(err *RefreshError) {
	if err == nil {
		return
	}
	attrs := []any{
		slog.String("component", err.Component),
		slog.String("context", err.Context),
		slog.String("err", err.Error()),
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logging.Logger().Warn("termdrift refresh failed", attrs...)
}
