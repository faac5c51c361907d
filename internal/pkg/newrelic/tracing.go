package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext returns the transaction carried by ctx, or nil
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// WithSegment times fn as a custom segment. Ride transitions use it so the
// locked section of each lifecycle event shows up on its own.
func WithSegment(ctx context.Context, name string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// WithSegmentAndReturn is WithSegment for calls that produce a value
func WithSegmentAndReturn[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(name).End()
	}
	return fn()
}

// TraceHandler names the transaction after the route and reports the
// handler's error
func TraceHandler(name string, handler echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		txn := nrecho.FromContext(c)
		if txn == nil {
			return handler(c)
		}
		txn.SetName(name)
		err := handler(c)
		if err != nil {
			txn.NoticeError(err)
		}
		return err
	}
}
