package main

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"rps-arena/internal/store"
)

const ipStartRetention = 24 * time.Hour

// startPurgeScheduler runs the hourly cleanup of stale per-IP start records.
// These only matter inside the throttle window, so anything older than a day
// is dead weight.
func startPurgeScheduler(st *store.Store) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			cutoff := time.Now().Add(-ipStartRetention)
			n, err := st.PurgeIPStartsBefore(ctx, cutoff)
			if err != nil {
				log.Error().Err(err).Msg("ip start purge failed")
				return
			}
			if n > 0 {
				log.Info().Int64("purged", n).Msg("purged stale ip start records")
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	sched.Start()
	return sched, nil
}
