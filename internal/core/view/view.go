// Package view turns a user's flat purchase list into what the UI renders:
// a filtered, sorted list or per-product summaries with price ranges.
package view

import (
	"encoding/json"
	"sort"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/search"
	"github.com/shopspring/decimal"
)

// PriceRange is the lowest and highest price seen for a product.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// GroupedSummary describes every purchase sharing one GroupKey.
// Display fields come from the first purchase in the sorted order.
type GroupedSummary struct {
	Key        GroupKey        `json:"-"`
	KeyString  string          `json:"key"`
	Name       string          `json:"name"`
	Brand      *string         `json:"brand,omitempty"`
	Store      string          `json:"store"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Unit       v1.Unit         `json:"unit"`
	PriceRange PriceRange      `json:"price_range"`
	Records    int             `json:"records"`
}

// Result is either a list of purchases or a list of group summaries,
// selected by Kind. Only the field matching Kind is populated.
type Result struct {
	Kind   ViewMode
	Items  []v1.Purchase
	Groups []GroupedSummary
}

// MarshalJSON emits {"kind":"list","items":[...]} or {"kind":"group","groups":[...]}.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Kind == ViewGroup {
		groups := r.Groups
		if groups == nil {
			groups = []GroupedSummary{}
		}
		return json.Marshal(struct {
			Kind   string           `json:"kind"`
			Groups []GroupedSummary `json:"groups"`
		}{Kind: ViewGroup.String(), Groups: groups})
	}

	items := r.Items
	if items == nil {
		items = []v1.Purchase{}
	}
	return json.Marshal(struct {
		Kind  string        `json:"kind"`
		Items []v1.Purchase `json:"items"`
	}{Kind: ViewList.String(), Items: items})
}

// ComputeView filters records by query, sorts them by sortMode and renders them
// according to viewMode. records is never modified.
//
// An unrecognized sortMode leaves the filtered order untouched and an
// unrecognized viewMode renders a list; use ParseSortMode and ParseViewMode to
// reject bad input before calling.
func ComputeView(records []v1.Purchase, query string, sortMode SortMode, viewMode ViewMode) Result {
	filtered := Filter(records, query)
	Sort(filtered, sortMode)

	if viewMode == ViewGroup {
		return Result{Kind: ViewGroup, Groups: Group(filtered)}
	}
	return Result{Kind: ViewList, Items: filtered}
}

// Filter returns a new slice holding the records whose "name brand" text matches query.
func Filter(records []v1.Purchase, query string) []v1.Purchase {
	out := make([]v1.Purchase, 0, len(records))
	for _, r := range records {
		if search.MatchName(r.Name+" "+r.BrandOrEmpty(), query) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders records in place. The sort is stable.
func Sort(records []v1.Purchase, mode SortMode) {
	switch mode {
	case SortLowestPrice:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Price.LessThan(records[j].Price)
		})
	case SortRecentlyAdded:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date.Time)
		})
	}
}

// Group partitions records by GroupKey in first-encounter order.
func Group(records []v1.Purchase) []GroupedSummary {
	index := make(map[GroupKey]int)
	groups := make([]GroupedSummary, 0)

	for _, r := range records {
		key := KeyOf(r)
		i, ok := index[key]
		if !ok {
			index[key] = len(groups)
			groups = append(groups, GroupedSummary{
				Key:        key,
				KeyString:  key.String(),
				Name:       r.Name,
				Brand:      r.Brand,
				Store:      r.Store,
				Count:      r.Count,
				Amount:     r.Amount,
				Unit:       r.Unit,
				PriceRange: PriceRange{Min: r.Price, Max: r.Price},
				Records:    1,
			})
			continue
		}

		g := &groups[i]
		g.Records++
		if r.Price.LessThan(g.PriceRange.Min) {
			g.PriceRange.Min = r.Price
		}
		if r.Price.GreaterThan(g.PriceRange.Max) {
			g.PriceRange.Max = r.Price
		}
	}

	return groups
}
