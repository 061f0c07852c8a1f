package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mkutlu/skylog/internal/journal"
	"github.com/mkutlu/skylog/internal/state"
)

const defaultPollInterval = 2 * time.Second

// StartPoller launches a background goroutine that re-reads the selected
// day and the date list at a fixed cadence, and immediately when the
// watcher kicks. It returns immediately. kicks may be nil.
func StartPoller(ctx context.Context, store *journal.Store, snapshots *state.Store, interval time.Duration, kicks <-chan struct{}) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			case _, ok := <-kicks:
				if !ok {
					kicks = nil
					continue
				}
			}
			refresh(store, snapshots)
		}
	}()
}

func refresh(store *journal.Store, snapshots *state.Store) {
	day := snapshots.ActiveDay()

	dayLog, err := store.ReadDay(day)
	if err != nil {
		snapshots.Update(journal.DayLog{}, nil, err)
		log.Error().Err(err).Str("day", journal.DayKey(day)).Msg("day read failed")
		return
	}
	dates, err := store.Dates()
	if err != nil {
		snapshots.Update(journal.DayLog{}, nil, err)
		log.Error().Err(err).Msg("date listing failed")
		return
	}
	snapshots.Update(dayLog, dates, nil)
}
