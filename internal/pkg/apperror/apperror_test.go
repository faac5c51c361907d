package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesCode(t *testing.T) {
	sentinel := Guard("driver_conflict", "driver already booked at this time")
	specific := sentinel.WithMessage("Driver is already assigned to another ride at this time (Ride #%s)", "AB12CD")

	assert.True(t, errors.Is(specific, sentinel))
	assert.True(t, errors.Is(fmt.Errorf("assign: %w", specific), sentinel))
	assert.False(t, errors.Is(specific, Guard("vehicle_conflict", "vehicle already booked")))
	assert.Equal(t, "Driver is already assigned to another ride at this time (Ride #AB12CD)", specific.Error())
	assert.Equal(t, "driver already booked at this time", sentinel.Message)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad_input", "bad"), KindValidation},
		{"wrapped not found", fmt.Errorf("get ride: %w", NotFound("ride_not_found", "Ride not found")), KindNotFound},
		{"downstream", Downstream("failed to update ride", errors.New("conn reset")), KindDownstream},
		{"plain error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestDownstream_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Downstream("failed to load ride", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load ride: connection refused", err.Error())
	assert.Equal(t, "downstream_failure", CodeOf(err))
}
