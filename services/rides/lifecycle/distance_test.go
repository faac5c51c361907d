package lifecycle

import (
	"testing"

	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	colombo := models.Coordinates{Lat: 6.9271, Lng: 79.8612}
	kandy := models.Coordinates{Lat: 7.2906, Lng: 80.6337}

	d := Distance(colombo, kandy, nil)
	assert.InDelta(t, 94.0, d, 1.0)
	assert.Equal(t, d, float64(int(d*10+0.5))/10, "rounded to one decimal")

	assert.Equal(t, 0.0, Distance(colombo, colombo, nil))
	assert.Equal(t, 120.4, Distance(colombo, kandy, ptr(120.4)))
}

func TestCalculatedDistance(t *testing.T) {
	assert.Equal(t, 18.0, CalculatedDistance(models.RideTypeReturn, 9))
	assert.Equal(t, 9.0, CalculatedDistance(models.RideTypeOneWay, 9))
}
