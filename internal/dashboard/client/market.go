package client

import (
	"context"
	"strconv"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	ecohttp "ecoscope/pkg/http"
)

type MarketClient struct {
	api *ecohttp.Client
}

func NewMarketClient(api *ecohttp.Client) *MarketClient {
	return &MarketClient{api: api}
}

// List returns prices newest first, as the backend orders them.
func (m *MarketClient) List(ctx context.Context, filter model.MarketFilter) Result[[]entity.MarketPrice] {
	query := map[string]string{}
	for key, value := range map[string]string{
		"commodity":  filter.Commodity,
		"location":   filter.Location,
		"start_date": filter.StartDate,
		"end_date":   filter.EndDate,
	} {
		if value != "" {
			query[key] = value
		}
	}
	if filter.Limit > 0 {
		query["limit"] = strconv.Itoa(filter.Limit)
	}

	response, errResp, err := fetch[model.MarketListResponse](ctx, m.api, "market", call{path: "/market/list", query: query})
	if err != nil {
		return failure[[]entity.MarketPrice]("market", err, errResp)
	}
	return success(response.Data, response.Total)
}

// Trends returns one trend per commodity.
func (m *MarketClient) Trends(ctx context.Context) Result[[]model.CommodityTrend] {
	response, errResp, err := fetch[model.TrendsResponse](ctx, m.api, "market", call{path: "/market/trends"})
	if err != nil {
		return failure[[]model.CommodityTrend]("market", err, errResp)
	}
	return success(response.Data, response.Total)
}

// Sync asks the backend to pull the Disdagkopukm feeds. It needs an admin token.
func (m *MarketClient) Sync(ctx context.Context, token string) Result[model.SyncResult] {
	response, errResp, err := fetch[model.SyncResult](ctx, m.api, "market", call{
		method: ecohttp.POST,
		path:   "/market/sync",
		token:  token,
	})
	if err != nil {
		return failure[model.SyncResult]("market", err, errResp)
	}
	return success(response, response.TotalSaved)
}
