package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newLogger builds the stderr logger from LOG_LEVEL (debug|info|warn|error,
// default warn) and LOG_FORMAT (text|json, default text).
func newLogger(w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
