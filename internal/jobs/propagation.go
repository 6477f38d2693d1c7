// Package jobs runs the recurring background work of the backend.
package jobs

import (
	"context"
	"time"

	"github.com/pennywise/backend/internal/ledger"
	"github.com/rs/zerolog/log"
)

// RunPropagation ticks once per interval and asks the engine to propagate
// recurring categories into the new month. The engine itself checks whether
// the tick falls on a month start and whether the month is already
// populated, so missed or duplicated ticks are harmless.
func RunPropagation(ctx context.Context, engine *ledger.Engine, interval time.Duration) error {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run once at startup so a restart on the 1st does not skip the month
	if err := engine.PropagateRecurringCategories(); err != nil {
		log.Error().Err(err).Msg("propagating recurring categories failed")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := engine.PropagateRecurringCategories(); err != nil {
				log.Error().Err(err).Msg("propagating recurring categories failed")
			}
		}
	}
}
