//go:build !fanlog_minimal

package dispatch

import (
	"log/slog"

	"github.com/ardnew/fanlog/log"
)

// reportError is the default [ErrorHandler]. It writes the failure to the
// diagnostics logger.
func reportError(slot int, err error) {
	log.Error("log target failed", slog.Int("slot", slot), slog.Any("error", err))
}

func announce(level LevelFilter) {
	log.Debug("log sink installed", slog.String("max_level", level.String()))
}
