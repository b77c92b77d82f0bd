package api

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/http"
)

type marketSourceGatewayImpl struct {
	httpClient *http.Client
}

func NewMarketSourceGateway(baseUrl string, clientOptions http.ClientOptions) MarketSourceGateway {
	return &marketSourceGatewayImpl{httpClient: http.NewHttpClient(baseUrl, clientOptions)}
}

func (m *marketSourceGatewayImpl) FetchPrices(ctx context.Context) ([]external.DisdagPriceItem, error) {
	return fetchList[external.DisdagPriceItem](ctx, m.httpClient, "/produk-komoditas")
}

func (m *marketSourceGatewayImpl) FetchCommodities(ctx context.Context) ([]external.DisdagCommodity, error) {
	return fetchList[external.DisdagCommodity](ctx, m.httpClient, "/komoditas")
}

func (m *marketSourceGatewayImpl) FetchAll(ctx context.Context) ([]external.DisdagPriceItem, []external.DisdagCommodity, error) {
	var prices []external.DisdagPriceItem
	var commodities []external.DisdagCommodity

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prices, err = m.FetchPrices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		commodities, err = m.FetchCommodities(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return prices, commodities, nil
}

// fetchList decodes either a bare JSON array or a {"data": [...]} envelope;
// the feeds have used both over time.
func fetchList[T any](ctx context.Context, client *http.Client, path string) ([]T, error) {
	successResp, errResp, _, err := client.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			if text := errResp.(*external.APIErrorResponse).Text(); text != "" {
				return nil, fmt.Errorf("market source %s: %s: %w", path, text, err)
			}
		}
		return nil, fmt.Errorf("market source %s: %w", path, err)
	}

	raw := *successResp.(*json.RawMessage)
	if len(raw) == 0 {
		return []T{}, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var envelope external.DisdagEnvelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("market source %s: unexpected payload: %w", path, err)
	}
	if envelope.Data == nil {
		return []T{}, nil
	}
	return envelope.Data, nil
}
