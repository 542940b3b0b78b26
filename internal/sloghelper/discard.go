package sloghelper

import (
	"context"
	"log/slog"
)

// A slog.Handler that drops everything. Used when a caller does not
// provide a logger of its own.
type DiscardHandler struct{}

func (DiscardHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (DiscardHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (d DiscardHandler) WithAttrs([]slog.Attr) slog.Handler {
	return d
}

func (d DiscardHandler) WithGroup(string) slog.Handler {
	return d
}

// Returns a logger that writes nothing.
func Discard() *slog.Logger {
	return slog.New(DiscardHandler{})
}
