package requestcontext

import (
	"context"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for the HTTP request ID
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for the authenticated user ID
	UserIDKey ContextKey = "user_id"
	// EventIDKey is the context key for the ride event being consumed
	EventIDKey ContextKey = "event_id"
)

// WithRequestID stores the request ID on ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithUserID stores the caller's user ID on ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithEventID stores the ID of the event a worker is handling
func WithEventID(ctx context.Context, eventID string) context.Context {
	if eventID == "" {
		return ctx
	}
	return context.WithValue(ctx, EventIDKey, eventID)
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	return get(ctx, RequestIDKey)
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	return get(ctx, UserIDKey)
}

// GetEventID extracts the event ID from context
func GetEventID(ctx context.Context) string {
	return get(ctx, EventIDKey)
}

// Fields returns every ID present on ctx, keyed for logging
func Fields(ctx context.Context) map[string]string {
	out := make(map[string]string, 3)
	for _, k := range []ContextKey{RequestIDKey, UserIDKey, EventIDKey} {
		if v := get(ctx, k); v != "" {
			out[string(k)] = v
		}
	}
	return out
}

func get(ctx context.Context, key ContextKey) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
