package client

import (
	"context"
	"net/url"
	"strconv"

	"ecoscope/internal/domain/model"
	ecohttp "ecoscope/pkg/http"
)

type ForecastClient struct {
	api *ecohttp.Client
}

func NewForecastClient(api *ecohttp.Client) *ForecastClient {
	return &ForecastClient{api: api}
}

// Commodity asks the backend to forecast one commodity. Total is the number
// of predicted days.
func (f *ForecastClient) Commodity(ctx context.Context, name string, daysForward int) Result[model.PriceForecastResponse] {
	query := map[string]string{}
	if daysForward > 0 {
		query["days_forward"] = strconv.Itoa(daysForward)
	}

	response, errResp, err := fetch[model.PriceForecastResponse](ctx, f.api, "forecast", call{
		path:  "/forecast/commodity/" + url.PathEscape(name),
		query: query,
	})
	if err != nil {
		return failure[model.PriceForecastResponse]("forecast", err, errResp)
	}
	return success(response, len(response.Predictions))
}
