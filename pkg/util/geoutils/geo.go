package geoutils

import "math"

const (
	// EarthRadiusMeters is the mean radius used by Haversine.
	EarthRadiusMeters = 6371000.0

	// MetersPerDegree approximates one degree of latitude.
	MetersPerDegree = 111320.0
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance in meters between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ValidCoordinates reports whether lat/lon are within ±90/±180.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180 &&
		!math.IsNaN(lat) && !math.IsNaN(lon)
}

// Interpolate returns n evenly spaced points from start to end, both included.
// n below 2 is treated as 2.
func Interpolate(startLat, startLon, endLat, endLon float64, n int) [][2]float64 {
	if n < 2 {
		n = 2
	}
	points := make([][2]float64, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n-1)
		points[i] = [2]float64{
			startLat + (endLat-startLat)*f,
			startLon + (endLon-startLon)*f,
		}
	}
	return points
}
