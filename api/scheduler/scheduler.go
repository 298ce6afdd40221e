package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/la-crime-api/models"
)

// DigestTimeout bounds a single digest run
const DigestTimeout = 5 * time.Minute

// digestSize is the number of leaderboard entries written to the log
const digestSize = 10

// UpvoteLeaderboard returns the most upvoted reports of a day
type UpvoteLeaderboard interface {
	TopUpvotedReportsForDay(ctx context.Context, date string) ([]models.ReportUpvotes, error)
}

// Scheduler runs the daily upvote digest
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	board    UpvoteLeaderboard
}

// NewScheduler creates a new scheduler instance. schedule is a five field cron expression evaluated in UTC.
func NewScheduler(board UpvoteLeaderboard, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		schedule: schedule,
		board:    board,
	}
}

// Start registers the digest job and begins the scheduler
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.runDigestJob)
	if err != nil {
		return fmt.Errorf("failed to register digest job with schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	zap.S().Infow("Digest scheduler started", "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Digest scheduler stopped")
}

func (s *Scheduler) runDigestJob() {
	ctx, cancel := context.WithTimeout(context.Background(), DigestTimeout)
	defer cancel()

	if _, err := s.RunDigest(ctx, time.Now()); err != nil {
		zap.S().Errorw("digest job failed", "error", err)
	}
}

// RunDigest logs the most upvoted reports of the UTC day before now
func (s *Scheduler) RunDigest(ctx context.Context, now time.Time) ([]models.ReportUpvotes, error) {
	day := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")

	rows, err := s.board.TopUpvotedReportsForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	top := rows
	if len(top) > digestSize {
		top = top[:digestSize]
	}
	zap.S().Infow("Daily upvote digest",
		"day", day,
		"reports", len(rows),
		"top", top,
	)
	return rows, nil
}
