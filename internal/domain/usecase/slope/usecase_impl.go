package slope

import (
	"context"
	"fmt"
	"math"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/api"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/geoutils"
	"ecoscope/pkg/util/numberutils"
)

const (
	lowRiskMaxPercent    = 20
	mediumRiskMaxPercent = 30

	maxRadiusMeters = 5000
	defaultSamples  = 10
	maxSamples      = 100
)

var recommendationKeys = map[string][]string{
	entity.RiskLow: {
		"slope.rec.low.farming",
		"slope.rec.low.drainage",
	},
	entity.RiskMedium: {
		"slope.rec.medium.terrace",
		"slope.rec.medium.cover-crop",
		"slope.rec.medium.monitor",
	},
	entity.RiskHigh: {
		"slope.rec.high.avoid",
		"slope.rec.high.vegetation",
		"slope.rec.high.evacuation",
	},
}

type slopeUseCase struct {
	elevationGateway api.ElevationGateway
	defaultRadius    float64
}

func NewSlopeUseCase(elevationGateway api.ElevationGateway, defaultRadius float64) UseCase {
	if defaultRadius <= 0 {
		defaultRadius = 100
	}
	return &slopeUseCase{elevationGateway: elevationGateway, defaultRadius: defaultRadius}
}

// grid returns the centre first, followed by its eight neighbours.
func grid(lat, lon, radius float64) []entity.ElevationPoint {
	offset := radius / geoutils.MetersPerDegree
	points := []entity.ElevationPoint{{Lat: lat, Lon: lon}}
	for _, dLat := range []float64{-1, 0, 1} {
		for _, dLon := range []float64{-1, 0, 1} {
			if dLat == 0 && dLon == 0 {
				continue
			}
			points = append(points, entity.ElevationPoint{Lat: lat + dLat*offset, Lon: lon + dLon*offset})
		}
	}
	return points
}

// RiskLevel classifies a slope percentage.
func RiskLevel(percent float64) string {
	switch {
	case percent <= lowRiskMaxPercent:
		return entity.RiskLow
	case percent <= mediumRiskMaxPercent:
		return entity.RiskMedium
	default:
		return entity.RiskHigh
	}
}

func Recommendations(risk string) []string {
	keys := recommendationKeys[risk]
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = msg.GetMessage(k)
	}
	return out
}

// slopePercent is the rise over run between two sampled points, in percent.
func slopePercent(a, b entity.ElevationPoint) float64 {
	run := geoutils.Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
	if run == 0 {
		return 0
	}
	return math.Abs(b.Elevation-a.Elevation) / run * 100
}

func (uc *slopeUseCase) Analyze(ctx context.Context, lat, lon, radius float64) (*entity.SlopeAnalysis, error) {
	if !geoutils.ValidCoordinates(lat, lon) {
		return nil, model.ErrInvalidCoordinates
	}
	if radius <= 0 {
		radius = uc.defaultRadius
	}
	radius = math.Min(radius, maxRadiusMeters)

	samples, err := uc.elevationGateway.Lookup(ctx, grid(lat, lon, radius))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	center := samples[0]
	var steepest float64
	for _, n := range samples[1:] {
		steepest = math.Max(steepest, slopePercent(center, n))
	}

	risk := RiskLevel(steepest)
	return &entity.SlopeAnalysis{
		Lat:             lat,
		Lon:             lon,
		RadiusMeters:    radius,
		Elevation:       numberutils.Round(center.Elevation, 1),
		SlopePercent:    numberutils.Round(steepest, 1),
		SlopeDegrees:    numberutils.Round(math.Atan(steepest/100)*180/math.Pi, 1),
		RiskLevel:       risk,
		Recommendations: Recommendations(risk),
		Samples:         samples,
	}, nil
}

func (uc *slopeUseCase) Profile(ctx context.Context, start, end model.Coordinates, samples int) (*model.SlopeProfileResponse, error) {
	if !geoutils.ValidCoordinates(start.Lat, start.Lon) || !geoutils.ValidCoordinates(end.Lat, end.Lon) {
		return nil, model.ErrInvalidCoordinates
	}
	if samples <= 0 {
		samples = defaultSamples
	}
	samples = min(samples, maxSamples)

	line := geoutils.Interpolate(start.Lat, start.Lon, end.Lat, end.Lon, samples)
	points := make([]entity.ElevationPoint, len(line))
	for i, p := range line {
		points[i] = entity.ElevationPoint{Lat: p[0], Lon: p[1]}
	}

	points, err := uc.elevationGateway.Lookup(ctx, points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	var maxSlope float64
	for i := range points {
		points[i].Distance = numberutils.Round(geoutils.Haversine(start.Lat, start.Lon, points[i].Lat, points[i].Lon), 1)
		if i > 0 {
			maxSlope = math.Max(maxSlope, slopePercent(points[i-1], points[i]))
		}
	}

	return &model.SlopeProfileResponse{
		Success:     true,
		Samples:     len(points),
		TotalMeters: numberutils.Round(geoutils.Haversine(start.Lat, start.Lon, end.Lat, end.Lon), 1),
		MaxSlope:    numberutils.Round(maxSlope, 1),
		Points:      points,
	}, nil
}
