package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		debug     bool
		info      bool
		warn      bool
	}{
		{0, false, false, true},
		{1, false, true, true},
		{2, true, true, true},
		{5, true, true, true},
	}

	for _, tt := range tests {
		log := newLogger(tt.verbosity)
		ctx := context.Background()
		assert.Equal(t, tt.debug, log.Enabled(ctx, slog.LevelDebug), "verbosity %d debug", tt.verbosity)
		assert.Equal(t, tt.info, log.Enabled(ctx, slog.LevelInfo), "verbosity %d info", tt.verbosity)
		assert.Equal(t, tt.warn, log.Enabled(ctx, slog.LevelWarn), "verbosity %d warn", tt.verbosity)
	}
}
