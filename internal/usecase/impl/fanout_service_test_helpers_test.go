package impl

import (
	"io"
	"log/slog"

	"portal/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Fanout: &config.FanoutConfig{},
	}
}
