package asm

import (
	"context"
	"log/slog"
)

// LevelTrace sits below debug and carries one record per emitted word.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}
