package v1

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for purchase dates.
const DateLayout = "2006-01-02"

// Unit is the measurement unit of a purchase amount.
type Unit string

const (
	UnitPound      Unit = "lb"
	UnitOunce      Unit = "oz"
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "l"
	UnitMilliliter Unit = "ml"
	UnitGallon     Unit = "gal"
	UnitFluidOunce Unit = "fl_oz"
	UnitCount      Unit = "ct"
)

// Units lists every supported unit in display order.
var Units = []Unit{
	UnitPound, UnitOunce, UnitKilogram, UnitGram,
	UnitLiter, UnitMilliliter, UnitGallon, UnitFluidOunce,
	UnitCount,
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Date is a calendar date without a time of day.
// It is stored as midnight UTC and serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in t's location and returns it as midnight UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		// Accept full timestamps from clients that send them.
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return err
		}
		parsed = NewDate(ts)
	}
	*d = parsed
	return nil
}

// Decimal places the purchases table stores for Price and Amount.
const (
	PriceScale  = 2
	AmountScale = 3
)

// Purchase is one recorded grocery purchase.
type Purchase struct {
	// ID is a server-assigned UUID.
	ID string `json:"id"`

	// UserID is the owning user (JWT subject). Never accepted from request bodies.
	UserID string `json:"-"`

	Name  string  `json:"name"`
	Brand *string `json:"brand,omitempty"`
	Store string  `json:"store"`

	// Count is the bulk multiplier, e.g. 2 for a two-pack.
	Count int `json:"count"`

	// Amount is the quantity per item measured in Unit.
	Amount decimal.Decimal `json:"amount"`
	Unit   Unit            `json:"unit"`

	Price  decimal.Decimal `json:"price"`
	Date   Date            `json:"date"`
	IsSale bool            `json:"is_sale"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandOrEmpty returns the brand, or "" when no brand was recorded.
func (p *Purchase) BrandOrEmpty() string {
	if p.Brand == nil {
		return ""
	}
	return *p.Brand
}

// Normalize trims free-text fields and drops a blank brand.
// It does not change letter case: grouping handles case-insensitivity.
func (p *Purchase) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Store = strings.TrimSpace(p.Store)
	if p.Brand != nil {
		b := strings.TrimSpace(*p.Brand)
		if b == "" {
			p.Brand = nil
		} else {
			p.Brand = &b
		}
	}
	p.Unit = Unit(strings.ToLower(strings.TrimSpace(string(p.Unit))))
}

// Validate checks the fields a purchase must carry before it is stored.
func (p *Purchase) Validate() error {
	if p.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Store) == "" {
		return fmt.Errorf("store is required")
	}
	if p.Count < 1 {
		return fmt.Errorf("count must be >= 1")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("amount must be > 0")
	}
	if !p.Amount.Equal(p.Amount.Round(AmountScale)) {
		return fmt.Errorf("amount must have at most %d decimal places", AmountScale)
	}
	if !p.Unit.Valid() {
		return fmt.Errorf("invalid unit %q", p.Unit)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price must be >= 0")
	}
	if !p.Price.Equal(p.Price.Round(PriceScale)) {
		return fmt.Errorf("price must have at most %d decimal places", PriceScale)
	}
	if p.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
