package entity

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ElevationPoint is a sampled coordinate with its elevation in meters.
type ElevationPoint struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Elevation float64 `json:"elevation"`
	// Distance from the first point of a profile, in meters.
	Distance float64 `json:"distance,omitempty"`
}

// SlopeAnalysis is the landslide-risk estimate around a coordinate.
type SlopeAnalysis struct {
	Lat             float64          `json:"lat"`
	Lon             float64          `json:"lon"`
	RadiusMeters    float64          `json:"radius_meters"`
	Elevation       float64          `json:"elevation"`
	SlopePercent    float64          `json:"slope_percent"`
	SlopeDegrees    float64          `json:"slope_degrees"`
	RiskLevel       string           `json:"risk_level"`
	Recommendations []string         `json:"recommendations"`
	Samples         []ElevationPoint `json:"samples"`
}
