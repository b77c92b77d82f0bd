package api

import (
	"context"

	"ecoscope/internal/domain/model/external"
)

// MarketSourceGateway reads the Disdagkopukm Wonosobo price feeds.
type MarketSourceGateway interface {
	// FetchPrices returns the produk-komoditas rows.
	FetchPrices(ctx context.Context) ([]external.DisdagPriceItem, error)

	// FetchCommodities returns the komoditas rows as sent upstream.
	FetchCommodities(ctx context.Context) ([]external.DisdagCommodity, error)

	// FetchAll pulls both feeds concurrently.
	FetchAll(ctx context.Context) ([]external.DisdagPriceItem, []external.DisdagCommodity, error)
}
