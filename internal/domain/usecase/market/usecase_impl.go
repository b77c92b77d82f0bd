package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/gateway/api"
	"ecoscope/internal/domain/gateway/db"
	"ecoscope/internal/domain/insight"
	"ecoscope/internal/domain/model"
	"ecoscope/internal/domain/model/external"
	"ecoscope/pkg/log"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

const (
	defaultLimit  = 100
	manualSource  = "manual"
	syncSource    = "disdagkopukm"
	unknownName   = "Tidak diketahui"
	unknownMarket = "-"
)

type marketUseCase struct {
	priceGateway  db.MarketPriceGateway
	sourceGateway api.MarketSourceGateway
	now           func() time.Time
}

func NewMarketUseCase(priceGateway db.MarketPriceGateway, sourceGateway api.MarketSourceGateway) UseCase {
	return &marketUseCase{
		priceGateway:  priceGateway,
		sourceGateway: sourceGateway,
		now:           time.Now,
	}
}

func (uc *marketUseCase) today() entity.Date {
	return entity.NewDate(uc.now())
}

func (uc *marketUseCase) Add(ctx context.Context, userID *int64, request model.MarketPriceRequest) (*entity.MarketPrice, error) {
	date := uc.today()
	if request.Date != "" {
		parsed, err := entity.ParseDate(request.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	source := request.Source
	if source == "" {
		source = manualSource
	}

	return uc.priceGateway.Create(ctx, entity.MarketPrice{
		UserID:         userID,
		CommodityName:  strings.TrimSpace(request.CommodityName),
		Category:       request.Category,
		Unit:           request.Unit,
		Price:          request.Price,
		MarketLocation: strings.TrimSpace(request.MarketLocation),
		Date:           date,
		Source:         source,
	})
}

func (uc *marketUseCase) List(ctx context.Context, filter model.MarketFilter) (*model.MarketListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}

	prices, err := uc.priceGateway.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &model.MarketListResponse{Success: true, Total: len(prices), Data: prices}, nil
}

func (uc *marketUseCase) Update(ctx context.Context, id int64, request model.MarketPriceUpdate) (*entity.MarketPrice, error) {
	price, err := uc.priceGateway.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, model.ErrPriceNotFound
	}

	if request.CommodityName != nil {
		price.CommodityName = strings.TrimSpace(*request.CommodityName)
	}
	if request.Category != nil {
		price.Category = *request.Category
	}
	if request.Unit != nil {
		price.Unit = *request.Unit
	}
	if request.Price != nil {
		price.Price = *request.Price
	}
	if request.MarketLocation != nil {
		price.MarketLocation = strings.TrimSpace(*request.MarketLocation)
	}
	if request.Date != nil {
		date, err := entity.ParseDate(*request.Date)
		if err != nil {
			return nil, err
		}
		price.Date = date
	}
	if request.Source != nil {
		price.Source = *request.Source
	}

	updated, err := uc.priceGateway.Update(ctx, *price)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, model.ErrPriceNotFound
	}
	return updated, nil
}

func (uc *marketUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.priceGateway.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.ErrPriceNotFound
	}
	return nil
}

func (uc *marketUseCase) Sync(ctx context.Context) (*model.SyncResult, error) {
	items, commodities, err := uc.sourceGateway.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	prices := make([]entity.MarketPrice, 0, len(items))
	for _, item := range items {
		price, ok := uc.toEntity(item)
		if !ok {
			continue
		}
		prices = append(prices, price)
	}

	saved := 0
	if len(prices) > 0 {
		saved, err = uc.priceGateway.UpsertAll(ctx, prices)
		if err != nil {
			return nil, err
		}
	}

	log.Info(msg.GetMessage("market.sync-done", len(items), saved),
		zap.Int("commodities", len(commodities)),
		zap.Int("skipped", len(items)-len(prices)))

	return &model.SyncResult{
		Message:      msg.GetMessage("market.sync-success"),
		TotalFetched: len(items),
		TotalSaved:   saved,
	}, nil
}

// toEntity maps one upstream row. Rows without a positive price are dropped.
func (uc *marketUseCase) toEntity(item external.DisdagPriceItem) (entity.MarketPrice, bool) {
	price, err := numberutils.ParsePrice(item.Harga)
	if err != nil || price <= 0 {
		return entity.MarketPrice{}, false
	}

	tanggal := strings.TrimSpace(item.Tanggal)
	if len(tanggal) > len(time.DateOnly) {
		tanggal = tanggal[:len(time.DateOnly)]
	}
	date, err := entity.ParseDate(tanggal)
	if err != nil {
		date = uc.today()
	}

	return entity.MarketPrice{
		CommodityName:  withDefault(item.Komoditas, unknownName),
		Category:       item.Kategori,
		Unit:           withDefault(item.Satuan, unknownMarket),
		Price:          price,
		MarketLocation: withDefault(item.Pasar, unknownMarket),
		Date:           date,
		Source:         syncSource,
	}, true
}

func withDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func (uc *marketUseCase) Trends(ctx context.Context, filter model.MarketFilter) (*model.TrendsResponse, error) {
	listed, err := uc.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := insight.GroupBy(listed.Data, func(p entity.MarketPrice) string { return p.CommodityName })

	trends := make([]model.CommodityTrend, 0, groups.Len())
	groups.Each(func(commodity string, prices []entity.MarketPrice) {
		latest, _ := insight.Latest(prices)
		trend := model.CommodityTrend{
			Commodity: commodity,
			Unit:      latest.Unit,
			Latest:    latest,
			Trend:     insight.Trend(prices),
			Count:     len(prices),
		}
		if len(prices) > 1 {
			previous := prices[1]
			trend.Previous = &previous
		}
		trends = append(trends, trend)
	})

	return &model.TrendsResponse{Success: true, Total: len(trends), Data: trends}, nil
}

func (uc *marketUseCase) Realtime(ctx context.Context, commodity string) (*model.RealtimeResponse, error) {
	commodities, err := uc.sourceGateway.FetchCommodities(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}

	needle := strings.ToLower(strings.TrimSpace(commodity))
	data := make([]any, 0, len(commodities))
	for _, c := range commodities {
		if needle == "" || strings.Contains(strings.ToLower(c.Name()), needle) {
			data = append(data, c)
		}
	}

	if needle != "" && len(data) == 0 {
		return &model.RealtimeResponse{Success: false, Error: msg.GetMessage("market.commodity-not-found")}, nil
	}
	return &model.RealtimeResponse{Success: true, Total: len(data), Data: data}, nil
}
