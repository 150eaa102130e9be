package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gregschwartz/jobseeker-analytics/internal/task/domain"
)

type fakeTaskRepo struct {
	runs []*domain.TaskRun
	err  error

	gotCutoff time.Time
}

func (f *fakeTaskRepo) Find(userID string) (*domain.TaskRun, error) { return nil, nil }
func (f *fakeTaskRepo) Save(run *domain.TaskRun) error              { return nil }

func (f *fakeTaskRepo) FindStale(cutoff time.Time) ([]*domain.TaskRun, error) {
	f.gotCutoff = cutoff
	return f.runs, f.err
}

type fakeRunner struct {
	userIDs []string
	err     error
}

func (f *fakeRunner) ProcessEmails(_ context.Context, userID string) error {
	f.userIDs = append(f.userIDs, userID)
	return f.err
}

func TestRetryStaleRuns(t *testing.T) {
	repo := &fakeTaskRepo{runs: []*domain.TaskRun{
		{UserID: "u1", Status: domain.RunStarted},
		{UserID: "u2", Status: domain.RunStarted},
	}}
	runner := &fakeRunner{}

	s := NewStaleRunScheduler(repo, runner, 30*time.Minute, zerolog.Nop())
	s.retryStaleRuns()

	if len(runner.userIDs) != 2 || runner.userIDs[0] != "u1" || runner.userIDs[1] != "u2" {
		t.Errorf("retried users = %v, want [u1 u2]", runner.userIDs)
	}

	wantCutoff := time.Now().Add(-30 * time.Minute)
	if diff := repo.gotCutoff.Sub(wantCutoff); diff < -time.Minute || diff > time.Minute {
		t.Errorf("cutoff = %v, want about %v", repo.gotCutoff, wantCutoff)
	}
}

func TestRetryStaleRunsRepoError(t *testing.T) {
	repo := &fakeTaskRepo{err: errors.New("db down")}
	runner := &fakeRunner{}

	s := NewStaleRunScheduler(repo, runner, 30*time.Minute, zerolog.Nop())
	s.retryStaleRuns()

	if len(runner.userIDs) != 0 {
		t.Errorf("no runs should be retried on repository error, got %v", runner.userIDs)
	}
}

func TestRetryStaleRunsKeepsGoingOnFailure(t *testing.T) {
	repo := &fakeTaskRepo{runs: []*domain.TaskRun{
		{UserID: "u1", Status: domain.RunStarted},
		{UserID: "u2", Status: domain.RunStarted},
	}}
	runner := &fakeRunner{err: errors.New("still failing")}

	s := NewStaleRunScheduler(repo, runner, 30*time.Minute, zerolog.Nop())
	s.retryStaleRuns()

	if len(runner.userIDs) != 2 {
		t.Errorf("both runs should be attempted, got %v", runner.userIDs)
	}
}
