package client

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/model/external"
	ecohttp "ecoscope/pkg/http"
)

// Forecast is a location with its flattened forecast slots.
type Forecast struct {
	Location entity.Location
	Slots    []entity.WeatherForecast
}

type WeatherClient struct {
	bmkg *ecohttp.Client
	api  *ecohttp.Client
}

func NewWeatherClient(bmkg, api *ecohttp.Client) *WeatherClient {
	return &WeatherClient{bmkg: bmkg, api: api}
}

// Fetch calls BMKG directly. Total is the number of flattened slots.
func (w *WeatherClient) Fetch(ctx context.Context, adm4 string) Result[Forecast] {
	response, errResp, err := fetch[external.BMKGResponse](ctx, w.bmkg, "bmkg", call{
		path:  "/publik/prakiraan-cuaca",
		query: map[string]string{"adm4": adm4},
	})
	if err != nil {
		return failure[Forecast]("bmkg", err, errResp)
	}

	slots := response.Flatten()
	return success(Forecast{Location: response.Lokasi.ToEntity(), Slots: slots}, len(slots))
}

// FetchCurrent goes through the backend passthrough, which caches BMKG.
func (w *WeatherClient) FetchCurrent(ctx context.Context, adm4 string) Result[Forecast] {
	query := map[string]string{}
	if adm4 != "" {
		query["adm4"] = adm4
	}
	response, errResp, err := fetch[model.CurrentWeatherResponse](ctx, w.api, "weather", call{
		path:  "/weather/current",
		query: query,
	})
	if err != nil {
		return failure[Forecast]("weather", err, errResp)
	}
	return success(Forecast{Location: response.Location, Slots: response.Data}, len(response.Data))
}

// Daily returns the backend's per-day aggregates.
func (w *WeatherClient) Daily(ctx context.Context, adm4 string) Result[model.DailyWeatherResponse] {
	response, errResp, err := fetch[model.DailyWeatherResponse](ctx, w.api, "weather", call{
		path:  "/weather/daily",
		query: map[string]string{"adm4": adm4},
	})
	if err != nil {
		return failure[model.DailyWeatherResponse]("weather", err, errResp)
	}
	return success(response, len(response.Days))
}
