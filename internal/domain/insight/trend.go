package insight

import (
	"fmt"

	"ecoscope/internal/domain/entity"
	"ecoscope/pkg/util/numberutils"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Flat Direction = "flat"
)

// PriceTrend compares the two most recent observations of a commodity.
// Defined is false when there is nothing to compare or the older price is
// zero; Percent is then 0 and Change reads "n/a".
type PriceTrend struct {
	Direction Direction `json:"direction"`
	Percent   float64   `json:"percent"`
	Change    string    `json:"change"`
	Defined   bool      `json:"defined"`
}

// Trend expects prices ordered most recent first.
func Trend(prices []entity.MarketPrice) PriceTrend {
	if len(prices) < 2 {
		return PriceTrend{Direction: Flat, Change: "n/a"}
	}
	return Compare(prices[0].Price, prices[1].Price)
}

// Compare classifies the move from older to newer.
func Compare(newer, older float64) PriceTrend {
	trend := PriceTrend{Direction: Flat}
	switch {
	case newer > older:
		trend.Direction = Up
	case newer < older:
		trend.Direction = Down
	}

	if older == 0 {
		trend.Change = "n/a"
		return trend
	}

	pct := (newer - older) / older * 100
	trend.Percent = numberutils.Round(pct, 1)
	trend.Change = fmt.Sprintf("%+.1f%%", pct)
	trend.Defined = true
	return trend
}

// Latest returns the first price, the newest under a date-descending order.
func Latest(prices []entity.MarketPrice) (entity.MarketPrice, bool) {
	if len(prices) == 0 {
		return entity.MarketPrice{}, false
	}
	return prices[0], true
}
