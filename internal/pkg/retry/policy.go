package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/fleetdispatch/internal/pkg/logger"
)

// ErrExhausted wraps the last error once every attempt has failed
var ErrExhausted = errors.New("retry attempts exhausted")

// Policy says how many times an operation runs and how long to wait between
// runs. The zero value runs the operation once.
type Policy struct {
	Name      string           // used in log lines
	Attempts  int              // total runs, including the first
	BaseDelay time.Duration    // wait before the second run; zero retries at once
	MaxDelay  time.Duration    // cap on a single wait
	Factor    float64          // growth per retry, 1 when unset
	Jitter    float64          // fraction of each wait added at random
	Retryable func(error) bool // nil retries every error

	// OnFailure sees every retryable failure, including the last one
	OnFailure func(attempt int, err error)
}

// Upstream is the policy for calls to external HTTP services
func Upstream(name string) Policy {
	return Policy{
		Name:      name,
		Attempts:  4,
		BaseDelay: 100 * time.Millisecond,
		MaxDelay:  5 * time.Second,
		Factor:    2,
		Jitter:    0.1,
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, runs out of
// attempts or ctx ends. Non-retryable errors are returned as is; running out
// returns an error matching both ErrExhausted and the last failure.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				logger.DebugCtx(ctx, "Retry succeeded",
					logger.String("operation", p.Name),
					logger.Int("attempt", attempt))
			}
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		last = err
		if p.OnFailure != nil {
			p.OnFailure(attempt, err)
		}
		if attempt == attempts {
			break
		}

		wait := p.Backoff(attempt)
		logger.DebugCtx(ctx, "Retrying",
			logger.String("operation", p.Name),
			logger.Int("attempt", attempt),
			logger.Duration("wait", wait),
			logger.Err(err))
		if wait <= 0 {
			continue
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	logger.WarnCtx(ctx, "Giving up after retries",
		logger.String("operation", p.Name),
		logger.Int("attempts", attempts),
		logger.Err(last))
	return fmt.Errorf("%s: %w after %d attempts: %w", p.Name, ErrExhausted, attempts, last)
}

// Backoff is the wait after the given failed attempt, starting at 1
func (p Policy) Backoff(attempt int) time.Duration {
	if p.BaseDelay <= 0 || attempt < 1 {
		return 0
	}
	factor := p.Factor
	if factor < 1 {
		factor = 1
	}
	d := float64(p.BaseDelay) * math.Pow(factor, float64(attempt-1))
	if p.MaxDelay > 0 && d > float64(p.MaxDelay) {
		d = float64(p.MaxDelay)
	}
	if p.Jitter > 0 {
		d += d * p.Jitter * rand.Float64()
	}
	return time.Duration(d)
}
