package db

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type MarketPriceGateway interface {
	// FindAll returns prices ordered by date desc, then price_id desc
	FindAll(ctx context.Context, filter model.MarketFilter) ([]entity.MarketPrice, error)

	// FindByID returns nil when the price does not exist
	FindByID(ctx context.Context, id int64) (*entity.MarketPrice, error)

	Create(ctx context.Context, price entity.MarketPrice) (*entity.MarketPrice, error)
	Update(ctx context.Context, price entity.MarketPrice) (*entity.MarketPrice, error)

	// Delete reports whether a row was removed
	Delete(ctx context.Context, id int64) (bool, error)

	// Commodities returns the distinct commodity names, sorted
	Commodities(ctx context.Context) ([]string, error)

	// UpsertAll writes prices keyed by (commodity_name, market_location, date)
	// in one transaction and returns the number of rows written
	UpsertAll(ctx context.Context, prices []entity.MarketPrice) (int, error)
}
