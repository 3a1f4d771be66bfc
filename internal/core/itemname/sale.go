// Package itemname cleans up item names read off receipts.
package itemname

import (
	"regexp"
	"strings"
)

// Sale markers in order of precedence. Only the first marker found is removed.
// The bare word must be a whitespace-delimited token: "sale-priced" is not a marker.
var saleMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(\s*sale\s*\)`),
	regexp.MustCompile(`(?i)\[\s*sale\s*\]`),
	regexp.MustCompile(`(?i)(^|\s)sale(\s|$)`),
}

// Result is the outcome of ProcessSaleItemName.
type Result struct {
	// NormalizedName is nil only when the input was nil or blank.
	NormalizedName *string `json:"normalized_name"`
	IsSale         bool    `json:"is_sale"`
}

// ProcessSaleItemName strips a sale marker such as "(SALE)", "[sale]" or a bare
// "sale" word from rawName, collapses whitespace and capitalizes each word.
// "sale" inside a longer word ("wholesale") is not a marker.
func ProcessSaleItemName(rawName *string) Result {
	if rawName == nil || strings.TrimSpace(*rawName) == "" {
		return Result{}
	}

	name, isSale := stripSaleMarker(*rawName)
	cleaned := CapitalizeWords(collapseSpaces(name))
	return Result{NormalizedName: &cleaned, IsSale: isSale}
}

func stripSaleMarker(s string) (string, bool) {
	for _, re := range saleMarkers {
		loc := re.FindStringIndex(s)
		if loc == nil {
			continue
		}
		return s[:loc[0]] + " " + s[loc[1]:], true
	}
	return s, false
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
