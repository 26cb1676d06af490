package sl

import (
	"context"

	"golang.org/x/exp/slog"
)

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Discard Логгер, который ничего не пишет (для тестов)
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (h discardHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h discardHandler) WithGroup(_ string) slog.Handler { return h }
