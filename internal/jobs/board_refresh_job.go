package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// BoardRefresher reloads the board snapshot from storage.
type BoardRefresher interface {
	LoadAll(ctx context.Context) error
}

// BoardRefreshJob keeps the board snapshot fresh. Runs every thirty seconds
// to pick up orders created or changed outside this process.
type BoardRefreshJob struct {
	refresher BoardRefresher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewBoardRefreshJob creates a new job for refreshing the order boards.
func NewBoardRefreshJob(refresher BoardRefresher, logger *slog.Logger) *BoardRefreshJob {
	return &BoardRefreshJob{
		refresher: refresher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "board_refresh_job"),
	}
}

// Start begins the board refresh job to run every thirty seconds.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		if err := j.refresher.LoadAll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Board refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started (running every thirty seconds)")
	return nil
}

// Stop stops the board refresh job.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
