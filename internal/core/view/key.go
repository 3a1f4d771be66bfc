package view

import (
	"strconv"
	"strings"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
)

// GroupKey identifies a product across purchases: the same item, brand and
// store in the same pack size. Text fields are normalized so that casing and
// stray whitespace do not split a group.
//
// GroupKey is comparable and is used directly as a map key; String is only
// for display and transport.
type GroupKey struct {
	Name   string
	Brand  string
	Store  string
	Count  int
	Amount string
	Unit   string
}

// KeyOf computes the GroupKey of a purchase.
func KeyOf(p v1.Purchase) GroupKey {
	return GroupKey{
		Name:   NormalizeText(p.Name),
		Brand:  NormalizeText(p.BrandOrEmpty()),
		Store:  NormalizeText(p.Store),
		Count:  p.Count,
		Amount: p.Amount.String(),
		Unit:   NormalizeText(string(p.Unit)),
	}
}

// NormalizeText trims, collapses internal whitespace and lowercases s.
func NormalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`)

// String renders the key as "|"-separated fields with "\" and "|" escaped,
// so distinct keys never render to the same string.
func (k GroupKey) String() string {
	parts := []string{
		keyEscaper.Replace(k.Name),
		keyEscaper.Replace(k.Brand),
		keyEscaper.Replace(k.Store),
		strconv.Itoa(k.Count),
		k.Amount,
		keyEscaper.Replace(k.Unit),
	}
	return strings.Join(parts, "|")
}
