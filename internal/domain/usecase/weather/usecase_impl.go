package weather

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/api"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/redis"
	"ecoscope/pkg/util/geoutils"
	"ecoscope/pkg/util/numberutils"
)

const (
	districtConcurrency = 4

	// interpolationNeighbours is how many districts with data feed an estimate.
	interpolationNeighbours = 3
)

// cachedForecast is what lives in redis under bmkg::<adm4>.
type cachedForecast struct {
	Location  entity.Location          `json:"location"`
	Forecasts []entity.WeatherForecast `json:"forecasts"`
}

type weatherUseCase struct {
	bmkgGateway    api.BMKGGateway
	wilayahGateway api.WilayahGateway
	cache          *redis.Cache
}

// NewWeatherUseCase wires the BMKG and region gateways. cache may be nil.
func NewWeatherUseCase(bmkgGateway api.BMKGGateway, wilayahGateway api.WilayahGateway, cache *redis.Cache) UseCase {
	return &weatherUseCase{
		bmkgGateway:    bmkgGateway,
		wilayahGateway: wilayahGateway,
		cache:          cache,
	}
}

func (uc *weatherUseCase) load(ctx context.Context, adm4 string) (cachedForecast, error) {
	if !numberutils.IsDottedCode(adm4, 4) {
		return cachedForecast{}, fmt.Errorf("%w: adm4 %q", model.ErrUnknownLocation, adm4)
	}

	fetch := func(ctx context.Context) (cachedForecast, error) {
		response, err := uc.bmkgGateway.GetForecast(ctx, adm4)
		if err != nil {
			return cachedForecast{}, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
		}
		return cachedForecast{
			Location:  response.Lokasi.ToEntity(),
			Forecasts: response.Flatten(),
		}, nil
	}

	if uc.cache == nil {
		return fetch(ctx)
	}

	return redis.GetOrLoad(ctx, uc.cache, adm4, fetch, func(err error) {
		log.Warn(msg.GetMessage("weather.cache-error", adm4), zap.Error(err))
	})
}

func (uc *weatherUseCase) GetCurrent(ctx context.Context, adm4 string) (*model.CurrentWeatherResponse, error) {
	data, err := uc.load(ctx, adm4)
	if err != nil {
		return nil, err
	}
	return &model.CurrentWeatherResponse{
		Success:  true,
		Total:    len(data.Forecasts),
		Location: data.Location,
		Data:     data.Forecasts,
	}, nil
}

func (uc *weatherUseCase) GetDaily(ctx context.Context, adm4 string) (*model.DailyWeatherResponse, error) {
	data, err := uc.load(ctx, adm4)
	if err != nil {
		return nil, err
	}
	return &model.DailyWeatherResponse{
		Success:  true,
		Location: data.Location,
		Days:     insight.DailySummaries(data.Forecasts),
	}, nil
}

func (uc *weatherUseCase) Forecasts(ctx context.Context, adm4 string) ([]entity.WeatherForecast, error) {
	data, err := uc.load(ctx, adm4)
	if err != nil {
		return nil, err
	}
	return data.Forecasts, nil
}

func (uc *weatherUseCase) Districts() []entity.District {
	out := make([]entity.District, len(entity.Districts))
	copy(out, entity.Districts)
	return out
}

func (uc *weatherUseCase) GetAllDistricts(ctx context.Context) (*model.DistrictsWeatherResponse, error) {
	districts := uc.Districts()
	results := make([]*model.DistrictWeather, len(districts))

	var mu sync.Mutex
	var failures []model.DistrictError

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(districtConcurrency)

	for i, district := range districts {
		g.Go(func() error {
			data, err := uc.load(gctx, district.Adm4)
			if err != nil {
				log.Warn(msg.GetMessage("weather.district-failed", district.Name), zap.Error(err))
				mu.Lock()
				failures = append(failures, model.DistrictError{District: district.Name, Error: err.Error()})
				mu.Unlock()
				// One district failing must not cancel the others.
				return nil
			}

			days := insight.DailySummaries(data.Forecasts)
			result := &model.DistrictWeather{District: district, Days: days}
			if len(days) > 0 {
				result.Today = &days[0]
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Estimates only draw on districts that BMKG answered for.
	estimates := make([]*model.DistrictWeather, len(districts))
	for i, district := range districts {
		if results[i] != nil {
			continue
		}
		if estimate := interpolate(district, districts, results); estimate != nil {
			log.Info(msg.GetMessage("weather.district-interpolated", district.Name,
				strings.Join(estimate.InterpolationSources, ", ")))
			estimates[i] = estimate
		}
	}

	observed := 0
	data := make([]model.DistrictWeather, 0, len(districts))
	for i, r := range results {
		switch {
		case r != nil:
			observed++
			data = append(data, *r)
		case estimates[i] != nil:
			data = append(data, *estimates[i])
		}
	}

	return &model.DistrictsWeatherResponse{
		Success: observed > 0,
		Total:   len(data),
		Data:    data,
		Errors:  failures,
	}, nil
}

// interpolate estimates target from its nearest districts with data, each
// weighted by the inverse square of its distance in km plus 0.1. It returns
// nil when no district has data.
func interpolate(target entity.District, districts []entity.District, results []*model.DistrictWeather) *model.DistrictWeather {
	type neighbour struct {
		name string
		km   float64
		days []insight.DaySummary
	}

	var neighbours []neighbour
	for i, r := range results {
		if r == nil || len(r.Days) == 0 {
			continue
		}
		d := districts[i]
		km := geoutils.Haversine(target.Lat, target.Lon, d.Lat, d.Lon) / 1000
		neighbours = append(neighbours, neighbour{name: d.Name, km: km, days: r.Days})
	}
	if len(neighbours) == 0 {
		return nil
	}

	sort.SliceStable(neighbours, func(i, j int) bool { return neighbours[i].km < neighbours[j].km })
	neighbours = neighbours[:min(interpolationNeighbours, len(neighbours))]

	sources := make([]insight.WeightedDays, len(neighbours))
	names := make([]string, len(neighbours))
	for i, n := range neighbours {
		sources[i] = insight.WeightedDays{Days: n.days, Weight: 1 / ((n.km + 0.1) * (n.km + 0.1))}
		names[i] = n.name
	}

	days := insight.BlendDays(sources)
	estimate := &model.DistrictWeather{
		District:             target,
		Days:                 days,
		Interpolated:         true,
		InterpolationSources: names,
	}
	if len(days) > 0 {
		estimate.Today = &days[0]
	}
	return estimate
}

func (uc *weatherUseCase) Wilayah(ctx context.Context) ([]external.WilayahEntry, error) {
	entries, err := uc.wilayahGateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
	return entries, nil
}

func (uc *weatherUseCase) FindWilayah(ctx context.Context, name string) (external.WilayahEntry, error) {
	entries, err := uc.Wilayah(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), strings.TrimSpace(name)) {
			return entry, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", model.ErrUnknownLocation, name)
}
