package itemname

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProcessSaleItemName(t *testing.T) {
	tests := []struct {
		name     string
		raw      *string
		wantName *string
		wantSale bool
	}{
		{name: "nil", raw: nil},
		{name: "empty", raw: strPtr("")},
		{name: "whitespace only", raw: strPtr(" \t ")},
		{name: "paren marker upper", raw: strPtr("bread (SALE)"), wantName: strPtr("Bread"), wantSale: true},
		{name: "paren marker lower", raw: strPtr("(sale) bananas"), wantName: strPtr("Bananas"), wantSale: true},
		{name: "paren marker with inner spaces", raw: strPtr("ham ( Sale ) sliced"), wantName: strPtr("Ham Sliced"), wantSale: true},
		{name: "bracket marker", raw: strPtr("eggs [sale] large"), wantName: strPtr("Eggs Large"), wantSale: true},
		{name: "bare word start", raw: strPtr("SALE chicken breast"), wantName: strPtr("Chicken Breast"), wantSale: true},
		{name: "bare word middle", raw: strPtr("greek sale yogurt"), wantName: strPtr("Greek Yogurt"), wantSale: true},
		{name: "bare word end", raw: strPtr("ground beef Sale"), wantName: strPtr("Ground Beef"), wantSale: true},
		{name: "wholesale is not a marker", raw: strPtr("wholesale items"), wantName: strPtr("Wholesale Items")},
		{name: "hyphenated word is not a marker", raw: strPtr("sale-priced jam"), wantName: strPtr("Sale-priced Jam")},
		{name: "trailing punctuation is not a marker", raw: strPtr("jam sale!"), wantName: strPtr("Jam Sale!")},
		{name: "tab delimited bare word", raw: strPtr("jam\tsale"), wantName: strPtr("Jam"), wantSale: true},
		{name: "salted is not a marker", raw: strPtr("SALTED butter"), wantName: strPtr("Salted Butter")},
		{name: "no marker", raw: strPtr("  ORGANIC   whole milk "), wantName: strPtr("Organic Whole Milk")},
		{name: "paren wins over bare word", raw: strPtr("sale price (SALE) jam"), wantName: strPtr("Sale Price Jam"), wantSale: true},
		{name: "only first marker removed", raw: strPtr("sale sale"), wantName: strPtr("Sale"), wantSale: true},
		{name: "punctuation kept", raw: strPtr("2% milk (sale)"), wantName: strPtr("2% Milk"), wantSale: true},
		{name: "marker only", raw: strPtr("(SALE)"), wantName: strPtr(""), wantSale: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ProcessSaleItemName(tc.raw)
			require.Equal(t, tc.wantSale, got.IsSale)
			if tc.wantName == nil {
				require.Nil(t, got.NormalizedName)
				return
			}
			require.NotNil(t, got.NormalizedName)
			require.Equal(t, *tc.wantName, *got.NormalizedName)
		})
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "bread", want: "Bread"},
		{in: "ORANGE JUICE", want: "Orange Juice"},
		{in: "oRgAnIc  eggs", want: "Organic  Eggs"},
		{in: " leading", want: " Leading"},
		{in: "2% milk", want: "2% Milk"},
		{in: "crème fraîche", want: "Crème Fraîche"},
		{in: "half-and-half", want: "Half-and-half"},
		{in: "tab\tseparated", want: "Tab\tSeparated"},
		{in: "ßahne", want: "ßahne"},
		{in: "ǆem", want: "ǅem"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, CapitalizeWords(tc.in), "input %q", tc.in)
	}
}
