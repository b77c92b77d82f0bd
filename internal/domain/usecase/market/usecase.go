package market

import (
	"context"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
)

type UseCase interface {
	// Add stores a manually entered price; the date defaults to today
	Add(ctx context.Context, userID *int64, request model.MarketPriceRequest) (*entity.MarketPrice, error)

	List(ctx context.Context, filter model.MarketFilter) (*model.MarketListResponse, error)
	Update(ctx context.Context, id int64, request model.MarketPriceUpdate) (*entity.MarketPrice, error)
	Delete(ctx context.Context, id int64) error

	// Sync pulls the Disdagkopukm feeds and upserts them
	Sync(ctx context.Context) (*model.SyncResult, error)

	// Trends groups listed prices per commodity and compares the two newest entries
	Trends(ctx context.Context, filter model.MarketFilter) (*model.TrendsResponse, error)

	// Realtime passes the upstream commodity list through, filtered by name
	Realtime(ctx context.Context, commodity string) (*model.RealtimeResponse, error)
}
