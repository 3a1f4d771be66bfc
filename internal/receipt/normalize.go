package receipt

import (
	"strings"
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/itemname"
	"github.com/aevon-lab/grocery-tracker/internal/core/money"
	"github.com/aevon-lab/grocery-tracker/internal/core/units"
	"github.com/shopspring/decimal"
)

// receiptDateLayouts are tried in order after YYYY-MM-DD.
var receiptDateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
	time.RFC3339,
}

// maxLineQuantity bounds quantities read off a receipt. It keeps Count well inside int32
// and Amount inside the NUMERIC(12,3) column.
var maxLineQuantity = decimal.NewFromInt(1_000_000)

// Overrides replace values the analyzer read from the receipt.
type Overrides struct {
	Store string
	Date  v1.Date
}

type normalizer struct {
	units *units.Table
	today func() time.Time
}

// normalize converts a raw receipt into draft purchases without IDs or owner.
// Lines without a name or a readable price are counted in skipped.
func (n normalizer) normalize(r *Receipt, ov Overrides) (store string, date v1.Date, items []v1.Purchase, skipped int) {
	store = strings.TrimSpace(ov.Store)
	if store == "" {
		store = itemname.CapitalizeWords(strings.Join(strings.Fields(r.Merchant), " "))
	}

	date = ov.Date
	if date.IsZero() {
		date = parseReceiptDate(r.Date, n.today)
	}

	items = make([]v1.Purchase, 0, len(r.Items))
	for _, line := range r.Items {
		p, ok := n.normalizeLine(line)
		if !ok {
			skipped++
			continue
		}
		p.Store = store
		p.Date = date
		items = append(items, p)
	}
	return store, date, items, skipped
}

func (n normalizer) normalizeLine(line LineItem) (v1.Purchase, bool) {
	desc := line.Description
	name := itemname.ProcessSaleItemName(&desc)
	if name.NormalizedName == nil || *name.NormalizedName == "" {
		return v1.Purchase{}, false
	}

	price, ok := money.ParseAmount(line.Price)
	if !ok || price.IsNegative() {
		return v1.Purchase{}, false
	}
	price = price.Round(v1.PriceScale)

	unit, ok := n.units.Normalize(line.Unit)
	if !ok {
		unit = v1.UnitCount
	}

	p := v1.Purchase{
		Name:   *name.NormalizedName,
		Count:  1,
		Amount: decimal.NewFromInt(1),
		Unit:   unit,
		Price:  price,
		IsSale: name.IsSale,
	}

	// Larger quantities are OCR noise and are ignored.
	qty, ok := money.ParseAmount(line.Quantity)
	qty = qty.Round(v1.AmountScale)
	if ok && qty.IsPositive() && qty.LessThanOrEqual(maxLineQuantity) {
		if unit == v1.UnitCount && qty.IsInteger() {
			// "3 ea" is three single items, not one item of amount 3.
			p.Count = int(qty.IntPart())
		} else {
			p.Amount = qty
		}
	}

	return p, true
}

// parseReceiptDate accepts the common printed date formats and falls back to today.
func parseReceiptDate(raw string, today func() time.Time) v1.Date {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if d, err := v1.ParseDate(raw); err == nil {
			return d
		}
		for _, layout := range receiptDateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return v1.NewDate(t)
			}
		}
	}
	return v1.NewDate(today())
}
