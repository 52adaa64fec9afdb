package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentJob *AssignmentJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes use-case handlers as dependencies to wire up the job execution.
func NewJobManager(
	pendingHandler queries.GetPendingDeliveriesQueryHandler,
	assignBestHandler commands.AssignBestAgentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentJob: NewAssignmentJob(pendingHandler, assignBestHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentJob.Stop()
}
