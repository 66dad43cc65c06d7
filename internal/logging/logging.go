package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger. With an empty logFile, logs go to stderr as
// text; with a file set, they go to a size-rotated JSON log so a long-lived
// install doesn't grow an unbounded file.
func New(level, logFile string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	if logFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
