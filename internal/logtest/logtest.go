// Package logtest emits records from a package outside the log package, so
// tests can observe how handlers treat foreign modules.
package logtest

import (
	"context"
	"log/slog"
)

// Module is the import path of this package.
const Module = "go.jacobcolvin.com/termlog/internal/logtest"

// Emit logs msg at level through l. The record's source is this package.
func Emit(l *slog.Logger, level slog.Level, msg string) {
	l.Log(context.Background(), level, msg)
}
