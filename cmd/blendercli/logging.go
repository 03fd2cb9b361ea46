package main

import (
	"log/slog"
	"os"
)

// newLogger builds the program logger from the -v count: warnings only by
// default, info at -v, debug at -vv and beyond. It writes to stderr so the
// host's own (very spammy) stdout stays separate.
func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
