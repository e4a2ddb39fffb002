package jobs

import (
	"context"
	"log/slog"
	"time"

	"osonish/internal/core/application/usecases/commands"
	"osonish/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// autoTransitionSchedule fires the daily cutoff at 20:00 local time.
const autoTransitionSchedule = "0 0 20 * * *"

// runTimeout bounds a single cutoff run. A run that cannot finish in this
// window returns whatever it processed so far; the next day's run picks up
// the rest.
const runTimeout = 10 * time.Minute

// AutoTransitionJob schedules the daily cutoff over the whole order store.
// Fires at 20:00 every day and runs the cutoff engine with an unrestricted scope.
type AutoTransitionJob struct {
	handler commands.AutoTransitionOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAutoTransitionJob creates the scheduled cutoff job.
// Uses AutoTransitionOrdersCommandHandler to process the daily run.
func NewAutoTransitionJob(handler commands.AutoTransitionOrdersCommandHandler, logger *slog.Logger) *AutoTransitionJob {
	return &AutoTransitionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "auto_transition_job"),
	}
}

// Start begins the cutoff job on its daily schedule.
func (j *AutoTransitionJob) Start() error {
	_, err := j.cron.AddFunc(autoTransitionSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		cmd, cmdErr := commands.NewAutoTransitionOrdersCommand(kernel.NewAllScope())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Auto transition job misconfigured", "error", cmdErr)
			return
		}

		result, runErr := j.handler.Handle(ctx, cmd)
		if runErr != nil {
			j.logger.ErrorContext(ctx, "Auto transition job failed", "error", runErr)
			return
		}

		j.logger.InfoContext(ctx, "Auto transition job finished",
			"completed", result.CompletedCount,
			"cancelled", result.CancelledCount,
			"skipped", result.SkippedCount,
			"failed", len(result.Errors))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Auto transition job started (daily at 20:00)")
	return nil
}

// Stop stops the cutoff job.
func (j *AutoTransitionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Auto transition job stopped")
}
