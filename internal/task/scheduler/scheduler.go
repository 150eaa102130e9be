package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gregschwartz/jobseeker-analytics/internal/task/repository"
)

// Runner restarts an ingestion run for a user.
type Runner interface {
	ProcessEmails(ctx context.Context, userID string) error
}

// StaleRunScheduler periodically looks for runs that are still marked
// STARTED but have not made progress, and re-triggers them. Runs end up in
// that state when the process crashed or an upstream call failed mid-run.
type StaleRunScheduler struct {
	taskRepo   repository.TaskRunRepository
	runner     Runner
	staleAfter time.Duration
	interval   time.Duration
	stopChan   chan struct{}
	log        zerolog.Logger
}

// NewStaleRunScheduler creates a new scheduler
func NewStaleRunScheduler(
	taskRepo repository.TaskRunRepository,
	runner Runner,
	staleAfter time.Duration,
	log zerolog.Logger,
) *StaleRunScheduler {
	return &StaleRunScheduler{
		taskRepo:   taskRepo,
		runner:     runner,
		staleAfter: staleAfter,
		interval:   5 * time.Minute,
		stopChan:   make(chan struct{}),
		log:        log.With().Str("component", "stale_run_scheduler").Logger(),
	}
}

// Start begins the scheduler loop
func (s *StaleRunScheduler) Start() {
	s.log.Info().Dur("interval", s.interval).Dur("stale_after", s.staleAfter).Msg("starting stale run scheduler")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.retryStaleRuns()
			case <-s.stopChan:
				s.log.Info().Msg("scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *StaleRunScheduler) Stop() {
	close(s.stopChan)
}

func (s *StaleRunScheduler) retryStaleRuns() {
	cutoff := time.Now().Add(-s.staleAfter)

	runs, err := s.taskRepo.FindStale(cutoff)
	if err != nil {
		s.log.Error().Err(err).Msg("error finding stale runs")
		return
	}
	if len(runs) == 0 {
		return
	}

	s.log.Info().Int("count", len(runs)).Msg("found stale runs, retrying")

	for _, run := range runs {
		if err := s.runner.ProcessEmails(context.Background(), run.UserID); err != nil {
			s.log.Error().Err(err).Str("user_id", run.UserID).Msg("stale run retry failed")
		}
	}
}
