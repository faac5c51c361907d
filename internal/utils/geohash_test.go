package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 6.9271, Longitude: 79.8612},
			point2:    GeoPoint{Latitude: 6.9271, Longitude: 79.8612},
			expected:  0,
			tolerance: 0.001,
		},
		{
			name:      "One degree of latitude",
			point1:    GeoPoint{Latitude: 0, Longitude: 0},
			point2:    GeoPoint{Latitude: 1, Longitude: 0},
			expected:  111.19,
			tolerance: 0.01,
		},
		{
			name:      "Jakarta to Bandung",
			point1:    GeoPoint{Latitude: -6.175392, Longitude: 106.827153},
			point2:    GeoPoint{Latitude: -6.914744, Longitude: 107.609810},
			expected:  119.0,
			tolerance: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CalculateDistance(tt.point1, tt.point2), tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	a := GeoPoint{Latitude: 6.9271, Longitude: 79.8612}
	b := GeoPoint{Latitude: 7.2906, Longitude: 80.6337}
	assert.InDelta(t, CalculateDistance(a, b), CalculateDistance(b, a), 1e-9)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 12.3, Round1(12.34))
	assert.Equal(t, 12.4, Round1(12.35))
	assert.Equal(t, 0.0, Round1(0.04))
	assert.Equal(t, 16.0, Round1(15.96))
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}

func TestTravelMinutes(t *testing.T) {
	assert.Equal(t, 20, TravelMinutes(10, 30, 30))
	assert.Equal(t, 10, TravelMinutes(10, 60, 30))
	assert.Equal(t, 20, TravelMinutes(10, 0, 30), "stopped vehicles use the fallback speed")
	assert.Equal(t, 0, TravelMinutes(10, 0, 0))
}

func TestEncodeDecodeGeohash(t *testing.T) {
	point := GeoPoint{Latitude: 6.9271, Longitude: 79.8612}
	hash := EncodeLocation(point, 7)
	assert.Len(t, hash, 7)

	lat, lng, err := DecodeGeohash(hash)
	require.NoError(t, err)
	assert.InDelta(t, point.Latitude, lat, 0.001)
	assert.InDelta(t, point.Longitude, lng, 0.001)

	_, _, err = DecodeGeohash("not-a-hash!")
	assert.Error(t, err)
}
