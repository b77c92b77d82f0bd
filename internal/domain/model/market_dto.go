package model

import (
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/insight"
)

type MarketPriceRequest struct {
	CommodityName  string  `json:"commodity_name" validate:"required,max=100"`
	Category       string  `json:"category" validate:"max=50"`
	Unit           string  `json:"unit" validate:"required,max=20"`
	Price          float64 `json:"price" validate:"gt=0"`
	MarketLocation string  `json:"market_location" validate:"required,max=100"`
	Date           string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Source         string  `json:"source" validate:"max=50"`
}

// MarketPriceUpdate is a partial update; nil fields are left untouched.
type MarketPriceUpdate struct {
	CommodityName  *string  `json:"commodity_name" validate:"omitempty,min=1,max=100"`
	Category       *string  `json:"category" validate:"omitempty,max=50"`
	Unit           *string  `json:"unit" validate:"omitempty,min=1,max=20"`
	Price          *float64 `json:"price" validate:"omitempty,gt=0"`
	MarketLocation *string  `json:"market_location" validate:"omitempty,min=1,max=100"`
	Date           *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Source         *string  `json:"source" validate:"omitempty,max=50"`
}

type MarketFilter struct {
	Commodity string
	Location  string
	StartDate string
	EndDate   string
	Limit     int
}

type MarketListResponse struct {
	Success bool                 `json:"success"`
	Total   int                  `json:"total"`
	Data    []entity.MarketPrice `json:"data"`
}

type SyncResult struct {
	Message      string `json:"message"`
	TotalFetched int    `json:"total_fetched"`
	TotalSaved   int    `json:"total_saved"`
}

// CommodityTrend summarizes one commodity's recent movement.
type CommodityTrend struct {
	Commodity string              `json:"commodity"`
	Unit      string              `json:"unit"`
	Latest    entity.MarketPrice  `json:"latest"`
	Previous  *entity.MarketPrice `json:"previous"`
	Trend     insight.PriceTrend  `json:"trend"`
	Count     int                 `json:"count"`
}

type TrendsResponse struct {
	Success bool             `json:"success"`
	Total   int              `json:"total"`
	Data    []CommodityTrend `json:"data"`
}

type RealtimeResponse struct {
	Success bool   `json:"success"`
	Total   int    `json:"total,omitempty"`
	Data    []any  `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
