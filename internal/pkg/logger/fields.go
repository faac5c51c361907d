package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field type alias so callers never import zap directly
type Field = zap.Field

// Field constructors re-exported from zap
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Err      = zap.Error
)

// UUID logs an id in its canonical string form
func UUID(key string, id uuid.UUID) Field {
	return zap.Stringer(key, id)
}
