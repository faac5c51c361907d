package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 0)
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)

	gs = NewGracefulServer(echo.New(), logger.NewNopLogger(), 8080, 5*time.Second)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	gs := NewGracefulServer(e, logger.NewNopLogger(), 0, time.Second)

	var closed bool
	gs.OnShutdown(func(context.Context) error {
		closed = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, closed)
}

func TestShutdownManager_ReverseOrderAndJoinedErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())

	var mu sync.Mutex
	var order []string
	record := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			order = append(order, name)
			mu.Unlock()
			return err
		}
	}

	natsErr := errors.New("drain failed")
	sm.Register(record("postgres", nil))
	sm.Register(record("nats", natsErr))
	sm.Register(record("consumer", nil))

	err := sm.Shutdown(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, natsErr)
	assert.Equal(t, []string{"consumer", "nats", "postgres"}, order)
}

func TestShutdownManager_Empty(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	assert.NoError(t, sm.Shutdown(context.Background()))
}
