package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// AssignmentJob periodically matches pending deliveries with the best
// available agents. Each sweep reads the pending pool oldest first and runs
// the assignment use case per delivery, so one stubborn delivery cannot
// starve the rest of the pool.
type AssignmentJob struct {
	pendingHandler queries.GetPendingDeliveriesQueryHandler
	assignHandler  commands.AssignBestAgentCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewAssignmentJob creates a job that assigns pending deliveries every second.
func NewAssignmentJob(
	pendingHandler queries.GetPendingDeliveriesQueryHandler,
	assignHandler commands.AssignBestAgentCommandHandler,
	logger *slog.Logger,
) *AssignmentJob {
	return &AssignmentJob{
		pendingHandler: pendingHandler,
		assignHandler:  assignHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "assignment_job"),
	}
}

// Start begins the assignment job to run every second.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started (running every second)")
	return nil
}

// Stop stops the assignment job.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}

// sweep runs one pass over the pending pool.
func (j *AssignmentJob) sweep() {
	ctx := context.Background()

	pending, err := j.pendingHandler.Handle(ctx, queries.NewGetPendingDeliveriesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment sweep failed to list pending deliveries", "error", err)
		return
	}

	for _, d := range pending {
		cmd, cmdErr := commands.NewAssignBestAgentCommand(d.ID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Assignment sweep built an invalid command",
				"delivery_id", d.ID.String(), "error", cmdErr)
			continue
		}

		handleErr := j.assignHandler.Handle(ctx, cmd)
		if handleErr == nil {
			j.logger.InfoContext(ctx, "Delivery assigned", "delivery_id", d.ID.String())
			continue
		}

		// An empty agent pool ends the sweep; no later delivery can fare better.
		if errors.Is(handleErr, commands.ErrNoAvailableAgents) {
			return
		}

		// No eligible agent for this particular delivery is a normal outcome.
		if errors.Is(handleErr, services.ErrAgentNotFound) {
			continue
		}

		j.logger.ErrorContext(ctx, "Assignment sweep failed for delivery",
			"delivery_id", d.ID.String(), "error", handleErr)
	}
}
