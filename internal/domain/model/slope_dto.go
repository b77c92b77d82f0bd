package model

import "ecoscope/internal/domain/entity"

type SlopeProfileResponse struct {
	Success     bool                    `json:"success"`
	Samples     int                     `json:"samples"`
	TotalMeters float64                 `json:"total_meters"`
	MaxSlope    float64                 `json:"max_slope_percent"`
	Points      []entity.ElevationPoint `json:"points"`
}
