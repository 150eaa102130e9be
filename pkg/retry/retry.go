// Package retry wraps remote calls with an attempt/backoff policy.
// Failures are split into retryable ones (rate limits, malformed model
// responses) and fatal ones that surface immediately.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultMaxAttempts is the total attempt budget shared by rate-limit
	// and parse retries.
	DefaultMaxAttempts = 3
	// DefaultInitialDelay is the first backoff sleep; it doubles after
	// every retryable failure.
	DefaultInitialDelay = 60 * time.Second
)

// RateLimitError wraps a remote failure attributable to quota or rate
// limiting. Transport adapters are expected to produce it so the policy
// never has to inspect free-text error messages.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

func (e *RateLimitError) Retryable() bool { return true }

// ExhaustedError is returned when the attempt budget ran out. Err holds the
// failure from the final attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error { return e.Err }

// retryable is implemented by errors that should consume another attempt.
type retryable interface {
	Retryable() bool
}

// IsRetryable reports whether err (or anything it wraps) opts into the
// backoff-and-retry path.
func IsRetryable(err error) bool {
	var r retryable
	return errors.As(err, &r) && r.Retryable()
}

// Policy controls the attempt budget and backoff schedule.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration

	// Sleep is swapped out in tests. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = DefaultInitialDelay
	}
	if p.Sleep == nil {
		p.Sleep = time.Sleep
	}
	return p
}

// Do runs fn up to p.MaxAttempts times. Retryable failures sleep the current
// delay and double it; any other failure returns immediately. When the
// budget runs out the last failure is wrapped in *ExhaustedError. The label
// identifies the operation in logs (a company name, "process_email", ...).
func Do(ctx context.Context, log zerolog.Logger, label string, p Policy, fn func() error) error {
	p = p.withDefaults()
	delay := p.InitialDelay

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		log.Debug().Str("op", label).Int("attempt", attempt).Msg("calling remote operation")

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) {
			log.Error().Err(err).Str("op", label).Int("attempt", attempt).Msg("unrecoverable failure")
			return err
		}
		if attempt == p.MaxAttempts {
			break
		}

		log.Warn().
			Err(err).
			Str("op", label).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("retryable failure, backing off")
		p.Sleep(delay)
		delay *= 2
	}

	log.Error().Err(lastErr).Str("op", label).Int("attempts", p.MaxAttempts).Msg("attempt budget exhausted")
	return &ExhaustedError{Attempts: p.MaxAttempts, Err: lastErr}
}
