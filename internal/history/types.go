package history

import (
	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/daterange"
	"github.com/shopspring/decimal"
)

// QueryRequest identifies one product and the chart page to return.
// Offset nil selects the most recent page.
type QueryRequest struct {
	UserID    string
	Name      string
	Brand     string
	Store     string
	Count     int
	Amount    decimal.Decimal
	Unit      v1.Unit
	TimeFrame daterange.TimeFrame
	Offset    *int
}

// PricePoint is one purchase plotted on the chart.
type PricePoint struct {
	ID     string          `json:"id"`
	Date   v1.Date         `json:"date"`
	Price  decimal.Decimal `json:"price"`
	IsSale bool            `json:"is_sale"`
}

// WeeklyBucket carries the price range of one Sunday-to-Saturday week.
type WeeklyBucket struct {
	WeekStart v1.Date         `json:"week_start"`
	WeekEnd   v1.Date         `json:"week_end"`
	Min       decimal.Decimal `json:"min"`
	Max       decimal.Decimal `json:"max"`
	Points    int             `json:"points"`
}

// QueryResponse is one page of a product's price history.
type QueryResponse struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	TimeFrame   string          `json:"timeframe"`
	Offset      int             `json:"offset"`
	Pages       int             `json:"pages"`
	Start       v1.Date         `json:"start"`
	End         v1.Date         `json:"end"`
	DataStart   v1.Date         `json:"data_start"`
	DataEnd     v1.Date         `json:"data_end"`
	HasPrevious bool            `json:"has_previous"`
	HasNext     bool            `json:"has_next"`
	Points      []PricePoint    `json:"points"`
	Weeks       []WeeklyBucket  `json:"weeks"`
	PriceMin    decimal.Decimal `json:"price_min"`
	PriceMax    decimal.Decimal `json:"price_max"`
}
