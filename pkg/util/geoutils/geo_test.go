package geoutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(-7.36, 109.90, -7.36, 109.90))

	// One degree of latitude is ~111.2 km on a 6371 km sphere.
	d := Haversine(0, 0, 1, 0)
	assert.InDelta(t, 111195, d, 1)

	assert.InDelta(t, Haversine(-7.3, 109.9, -7.4, 110.0), Haversine(-7.4, 110.0, -7.3, 109.9), 1e-6)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-7.36, 109.9))
	assert.True(t, ValidCoordinates(90, -180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, 180.5))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
}

func TestInterpolate(t *testing.T) {
	points := Interpolate(0, 0, 1, 2, 3)
	assert.Equal(t, [][2]float64{{0, 0}, {0.5, 1}, {1, 2}}, points)

	assert.Len(t, Interpolate(0, 0, 1, 1, 0), 2)
}
