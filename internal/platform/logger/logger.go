package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Text output locally, JSON
// when PLOTDESK_LOG_FORMAT=json (the deployment default).
func New() *slog.Logger {
	var handler slog.Handler
	if os.Getenv("PLOTDESK_LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(handler)
}
