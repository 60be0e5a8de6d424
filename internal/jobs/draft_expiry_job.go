package jobs

import (
	"context"
	"log/slog"
	"time"

	"batching/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DraftExpiryJob manages the scheduled sweep of abandoned drafts.
// Runs hourly and marks every draft untouched for longer than the retention
// window as Expired.
type DraftExpiryJob struct {
	handler   commands.ExpireDraftsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDraftExpiryJob creates a new job for expiring stale drafts.
// Uses ExpireDraftsCommandHandler to sweep drafts older than the retention
// window.
func NewDraftExpiryJob(
	handler commands.ExpireDraftsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *DraftExpiryJob {
	return &DraftExpiryJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "draft_expiry_job"),
	}
}

// Start begins the draft expiry job to run hourly.
func (j *DraftExpiryJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireDraftsCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job misconfigured", "error", err)
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale drafts", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft expiry job started (running hourly)", "retention", j.retention)
	return nil
}

// Stop stops the draft expiry job.
func (j *DraftExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft expiry job stopped")
}
