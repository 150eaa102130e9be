package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testPolicy(slept *[]time.Duration) Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: 60 * time.Second,
		Sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
	}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := Do(context.Background(), zerolog.Nop(), "op", testPolicy(&slept), func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(slept) != 0 {
		t.Errorf("slept %v, want no sleeps", slept)
	}
}

func TestDoRetriesRateLimitThenSucceeds(t *testing.T) {
	var slept []time.Duration
	calls := 0

	err := Do(context.Background(), zerolog.Nop(), "op", testPolicy(&slept), func() error {
		calls++
		if calls < 3 {
			return &RateLimitError{Err: errors.New("quota")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}

	want := []time.Duration{60 * time.Second, 120 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("slept %v, want %v", slept, want)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep[%d] = %v, want %v", i, slept[i], want[i])
		}
	}
}

func TestDoFatalErrorReturnsImmediately(t *testing.T) {
	var slept []time.Duration
	calls := 0
	fatal := errors.New("bad credentials")

	err := Do(context.Background(), zerolog.Nop(), "op", testPolicy(&slept), func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("Do() error = %v, want %v", err, fatal)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if len(slept) != 0 {
		t.Errorf("slept %v, want no sleeps", slept)
	}
}

func TestDoExhaustsBudget(t *testing.T) {
	var slept []time.Duration
	calls := 0
	rateLimited := &RateLimitError{Err: errors.New("quota")}

	err := Do(context.Background(), zerolog.Nop(), "op", testPolicy(&slept), func() error {
		calls++
		return rateLimited
	})

	var exhausted *ExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Do() error = %T, want *ExhaustedError", err)
	}
	if exhausted.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", exhausted.Attempts)
	}
	if !errors.Is(err, rateLimited) {
		t.Error("ExhaustedError should wrap the last failure")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	// No sleep after the final attempt.
	if len(slept) != 2 {
		t.Errorf("sleeps = %d, want 2", len(slept))
	}
}

func TestDoCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var slept []time.Duration
	err := Do(ctx, zerolog.Nop(), "op", testPolicy(&slept), func() error {
		t.Fatal("fn should not run with a canceled context")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() error = %v, want context.Canceled", err)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "rate limit", err: &RateLimitError{Err: errors.New("quota")}, want: true},
		{name: "wrapped rate limit", err: fmt.Errorf("call failed: %w", &RateLimitError{Err: errors.New("quota")}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}
