package receipt

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/api/documentai/v1"
	"google.golang.org/api/option"
)

// Document AI entity types emitted by the expense (receipt) processor.
const (
	entitySupplierName    = "supplier_name"
	entityReceiptDate     = "receipt_date"
	entityLineItem        = "line_item"
	entityItemDescription = "line_item/description"
	entityItemAmount      = "line_item/amount"
	entityItemQuantity    = "line_item/quantity"
	entityItemUnit        = "line_item/unit"
)

// DocumentAIConfig locates the processor to call.
type DocumentAIConfig struct {
	ProjectID       string
	Location        string
	ProcessorID     string
	CredentialsFile string
}

// ProcessorName returns the fully qualified processor resource name.
func (c DocumentAIConfig) ProcessorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// DocumentAIAnalyzer implements Analyzer with a Google Document AI expense processor.
type DocumentAIAnalyzer struct {
	service   *documentai.Service
	processor string
}

var _ Analyzer = (*DocumentAIAnalyzer)(nil)

// NewDocumentAIAnalyzer builds a client against the processor's regional endpoint.
// Extra options are appended after the defaults, so callers may override them.
func NewDocumentAIAnalyzer(ctx context.Context, cfg DocumentAIConfig, opts ...option.ClientOption) (*DocumentAIAnalyzer, error) {
	base := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("https://%s-documentai.googleapis.com/", cfg.Location)),
	}
	if cfg.CredentialsFile != "" {
		base = append(base, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	svc, err := documentai.NewService(ctx, append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create document ai client: %w", err)
	}

	slog.Info("[Receipts] Document AI analyzer configured", "processor", cfg.ProcessorName())
	return &DocumentAIAnalyzer{service: svc, processor: cfg.ProcessorName()}, nil
}

func (a *DocumentAIAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (*Receipt, error) {
	req := &documentai.GoogleCloudDocumentaiV1ProcessRequest{
		RawDocument: &documentai.GoogleCloudDocumentaiV1RawDocument{
			Content:  base64.StdEncoding.EncodeToString(image),
			MimeType: mimeType,
		},
		SkipHumanReview: true,
	}

	resp, err := a.service.Projects.Locations.Processors.Process(a.processor, req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalyze, err)
	}
	if resp.Document == nil {
		return nil, fmt.Errorf("%w: empty document in response", ErrAnalyze)
	}

	return receiptFromDocument(resp.Document), nil
}

// receiptFromDocument maps processor entities onto a Receipt.
// The first supplier_name and receipt_date win; every line_item becomes a LineItem.
func receiptFromDocument(doc *documentai.GoogleCloudDocumentaiV1Document) *Receipt {
	r := &Receipt{Items: make([]LineItem, 0)}

	for _, e := range doc.Entities {
		if e == nil {
			continue
		}
		switch e.Type {
		case entitySupplierName:
			if r.Merchant == "" {
				r.Merchant = entityText(e)
			}
		case entityReceiptDate:
			if r.Date == "" {
				r.Date = entityDate(e)
			}
		case entityLineItem:
			r.Items = append(r.Items, lineItemFromEntity(e))
		}
	}

	return r
}

func lineItemFromEntity(e *documentai.GoogleCloudDocumentaiV1DocumentEntity) LineItem {
	var item LineItem
	for _, p := range e.Properties {
		if p == nil {
			continue
		}
		switch p.Type {
		case entityItemDescription:
			item.Description = entityText(p)
		case entityItemAmount:
			item.Price = entityMoney(p)
		case entityItemQuantity:
			item.Quantity = entityText(p)
		case entityItemUnit:
			item.Unit = entityText(p)
		}
	}
	// Some processors only fill the parent mention text.
	if item.Description == "" && len(e.Properties) == 0 {
		item.Description = strings.TrimSpace(e.MentionText)
	}
	return item
}

func entityText(e *documentai.GoogleCloudDocumentaiV1DocumentEntity) string {
	if e.NormalizedValue != nil && strings.TrimSpace(e.NormalizedValue.Text) != "" && e.NormalizedValue.MoneyValue == nil {
		return strings.TrimSpace(e.NormalizedValue.Text)
	}
	return strings.TrimSpace(e.MentionText)
}

func entityDate(e *documentai.GoogleCloudDocumentaiV1DocumentEntity) string {
	if nv := e.NormalizedValue; nv != nil && nv.DateValue != nil && nv.DateValue.Year > 0 {
		d := nv.DateValue
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	return entityText(e)
}

func entityMoney(e *documentai.GoogleCloudDocumentaiV1DocumentEntity) string {
	if nv := e.NormalizedValue; nv != nil && nv.MoneyValue != nil {
		m := nv.MoneyValue
		return decimal.NewFromInt(m.Units).Add(decimal.New(m.Nanos, -9)).String()
	}
	return strings.TrimSpace(e.MentionText)
}
