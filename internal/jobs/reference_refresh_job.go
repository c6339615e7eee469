package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CacheRefresher reloads an in-memory cache from its backing store.
type CacheRefresher interface {
	Refresh(ctx context.Context) error
}

// ReferenceRefreshJob periodically reloads the cached reference data
// (countries, cities, currencies) so edits made directly in the database
// become visible without a restart.
type ReferenceRefreshJob struct {
	refreshers []CacheRefresher
	cron       *cron.Cron
	logger     *zap.SugaredLogger
}

// NewReferenceRefreshJob creates a job that refreshes the given caches
// every hour.
func NewReferenceRefreshJob(logger *zap.SugaredLogger, refreshers ...CacheRefresher) *ReferenceRefreshJob {
	return &ReferenceRefreshJob{
		refreshers: refreshers,
		cron:       cron.New(),
		logger:     logger.With("component", "reference_refresh_job"),
	}
}

// Start schedules the hourly refresh.
func (j *ReferenceRefreshJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		for _, refresher := range j.refreshers {
			if err := refresher.Refresh(ctx); err != nil {
				j.logger.Errorw("reference cache refresh failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Infow("reference refresh job started (running hourly)")
	return nil
}

// Stop stops the refresh job.
func (j *ReferenceRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.Infow("reference refresh job stopped")
}
