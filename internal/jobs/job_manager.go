package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	referenceRefreshJob *ReferenceRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(logger *zap.SugaredLogger, refreshers ...CacheRefresher) *JobManager {
	return &JobManager{
		referenceRefreshJob: NewReferenceRefreshJob(logger, refreshers...),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.referenceRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start reference refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.referenceRefreshJob.Stop()
}
