// Package receipt turns receipt images into draft purchases.
package receipt

import (
	"context"
	"errors"
)

// ErrAnalyze marks failures of the document-analysis backend.
var ErrAnalyze = errors.New("receipt analysis failed")

// Receipt is the raw text a document analyzer extracted from one image.
// Values are left unparsed; normalization happens in the service.
type Receipt struct {
	Merchant string     `json:"merchant"`
	Date     string     `json:"date"`
	Items    []LineItem `json:"items"`
}

// LineItem is one purchased line as printed on the receipt.
type LineItem struct {
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Unit        string `json:"unit"`
}

// Analyzer extracts receipt fields from an image.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*Receipt, error)
}
