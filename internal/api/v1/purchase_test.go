package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validPurchase() Purchase {
	brand := "Tropicana"
	return Purchase{
		ID:     "p-1",
		UserID: "user-1",
		Name:   "Orange Juice",
		Brand:  &brand,
		Store:  "Safeway",
		Count:  1,
		Amount: decimal.RequireFromString("52"),
		Unit:   UnitFluidOunce,
		Price:  decimal.RequireFromString("4.99"),
		Date:   NewDate(time.Date(2024, 10, 5, 18, 30, 0, 0, time.UTC)),
	}
}

func TestPurchase_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Purchase)
		wantErr string
	}{
		{name: "valid", mutate: func(p *Purchase) {}},
		{name: "missing user", mutate: func(p *Purchase) { p.UserID = "" }, wantErr: "user_id is required"},
		{name: "blank name", mutate: func(p *Purchase) { p.Name = "   " }, wantErr: "name is required"},
		{name: "missing store", mutate: func(p *Purchase) { p.Store = "" }, wantErr: "store is required"},
		{name: "zero count", mutate: func(p *Purchase) { p.Count = 0 }, wantErr: "count must be >= 1"},
		{name: "zero amount", mutate: func(p *Purchase) { p.Amount = decimal.Zero }, wantErr: "amount must be > 0"},
		{name: "unknown unit", mutate: func(p *Purchase) { p.Unit = "bushel" }, wantErr: `invalid unit "bushel"`},
		{name: "negative price", mutate: func(p *Purchase) { p.Price = decimal.NewFromInt(-1) }, wantErr: "price must be >= 0"},
		{name: "free item allowed", mutate: func(p *Purchase) { p.Price = decimal.Zero }},
		{name: "price with sub-cent digits", mutate: func(p *Purchase) { p.Price = decimal.RequireFromString("3.999") }, wantErr: "price must have at most 2 decimal places"},
		{name: "price with trailing zeros allowed", mutate: func(p *Purchase) { p.Price = decimal.RequireFromString("3.900") }},
		{name: "amount with four decimals", mutate: func(p *Purchase) { p.Amount = decimal.RequireFromString("0.3335") }, wantErr: "amount must have at most 3 decimal places"},
		{name: "amount with three decimals allowed", mutate: func(p *Purchase) { p.Amount = decimal.RequireFromString("0.334") }},
		{name: "missing date", mutate: func(p *Purchase) { p.Date = Date{} }, wantErr: "date is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPurchase()
			tc.mutate(&p)
			err := p.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestPurchase_Normalize(t *testing.T) {
	blank := "   "
	p := Purchase{Name: "  Milk ", Store: " Costco", Brand: &blank, Unit: " GAL "}
	p.Normalize()

	require.Equal(t, "Milk", p.Name)
	require.Equal(t, "Costco", p.Store)
	require.Nil(t, p.Brand)
	require.Equal(t, UnitGallon, p.Unit)
	require.Equal(t, "", p.BrandOrEmpty())
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-02-29"}`), &payload))
	require.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), payload.Date.Time)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	require.JSONEq(t, `{"date":"2024-02-29"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-03-01T23:10:00Z"}`), &payload))
	require.Equal(t, "2024-03-01", payload.Date.String())

	require.Error(t, json.Unmarshal([]byte(`{"date":"03/01/2024"}`), &payload))
	require.Error(t, json.Unmarshal([]byte(`{"date":20240301}`), &payload))
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range Units {
		require.True(t, u.Valid(), string(u))
	}
	require.False(t, Unit("").Valid())
	require.False(t, Unit("LB").Valid())
}
