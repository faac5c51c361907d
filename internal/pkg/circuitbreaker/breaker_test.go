package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	cb := New(Config{Name: "tracking", FailureThreshold: 2, OpenTimeout: 10 * time.Second}, nil)
	cb.now = func() time.Time { return now }

	fail := func(context.Context) error { return errors.New("upstream down") }
	ok := func(context.Context) error { return nil }
	ctx := context.Background()

	assert.Error(t, cb.Execute(ctx, fail))
	assert.Equal(t, StateClosed, cb.State())
	assert.Error(t, cb.Execute(ctx, fail))
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)

	now = now.Add(11 * time.Second)
	assert.NoError(t, cb.Execute(ctx, ok))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	cb := New(Config{Name: "tracking", FailureThreshold: 1, OpenTimeout: time.Second}, nil)
	cb.now = func() time.Time { return now }
	ctx := context.Background()

	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("x") })
	assert.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	_ = cb.Execute(ctx, func(context.Context) error { return errors.New("still down") })
	assert.Equal(t, StateOpen, cb.State())
}

func TestManager_ReusesBreakerPerName(t *testing.T) {
	m := NewManager(nil)
	assert.Same(t, m.Get("gps.local"), m.Get("gps.local"))
	assert.NotSame(t, m.Get("gps.local"), m.Get("other"))
}
