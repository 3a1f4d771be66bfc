package receipt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/documentai/v1"
	"google.golang.org/api/option"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var testProcessor = DocumentAIConfig{ProjectID: "proj", Location: "us", ProcessorID: "abc123"}

func newTestAnalyzer(t *testing.T, rt roundTripFunc) *DocumentAIAnalyzer {
	t.Helper()
	a, err := NewDocumentAIAnalyzer(context.Background(), testProcessor,
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithEndpoint("https://documentai.test/"),
	)
	require.NoError(t, err)
	return a
}

const processResponse = `{
  "document": {
    "entities": [
      {"type": "supplier_name", "mentionText": "CORNER MARKET"},
      {"type": "receipt_date", "mentionText": "01/15/2026", "normalizedValue": {"text": "2026-01-15", "dateValue": {"year": 2026, "month": 1, "day": 15}}},
      {"type": "line_item", "mentionText": "(Sale) gala apples 2 lb 3.98", "properties": [
        {"type": "line_item/description", "mentionText": "(Sale) gala apples"},
        {"type": "line_item/quantity", "mentionText": "2"},
        {"type": "line_item/unit", "mentionText": "lb"},
        {"type": "line_item/amount", "mentionText": "$3.98", "normalizedValue": {"text": "3.98 USD", "moneyValue": {"currencyCode": "USD", "units": "3", "nanos": 980000000}}}
      ]},
      {"type": "line_item", "mentionText": "BAG FEE"},
      {"type": "total_amount", "mentionText": "4.08"}
    ]
  }
}`

func TestDocumentAIAnalyzer_Analyze(t *testing.T) {
	image := []byte("fake-jpeg")

	a := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/projects/proj/locations/us/processors/abc123:process", r.URL.Path)

		var req documentai.GoogleCloudDocumentaiV1ProcessRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.RawDocument)
		require.Equal(t, base64.StdEncoding.EncodeToString(image), req.RawDocument.Content)
		require.Equal(t, "image/jpeg", req.RawDocument.MimeType)
		require.True(t, req.SkipHumanReview)

		return jsonResponse(http.StatusOK, processResponse), nil
	})

	rec, err := a.Analyze(context.Background(), image, "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "CORNER MARKET", rec.Merchant)
	require.Equal(t, "2026-01-15", rec.Date)
	require.Equal(t, []LineItem{
		{Description: "(Sale) gala apples", Price: "3.98", Quantity: "2", Unit: "lb"},
		{Description: "BAG FEE"},
	}, rec.Items)
}

func TestDocumentAIAnalyzer_APIErrorWrapsErrAnalyze(t *testing.T) {
	a := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, `{"error":{"code":400,"message":"Unsupported input file format.","status":"INVALID_ARGUMENT"}}`), nil
	})

	_, err := a.Analyze(context.Background(), []byte("x"), "text/plain")
	require.ErrorIs(t, err, ErrAnalyze)
}

func TestDocumentAIAnalyzer_EmptyDocument(t *testing.T) {
	a := newTestAnalyzer(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	_, err := a.Analyze(context.Background(), []byte("x"), "image/png")
	require.ErrorIs(t, err, ErrAnalyze)
}

func TestDocumentAIConfig_ProcessorName(t *testing.T) {
	require.Equal(t, "projects/proj/locations/us/processors/abc123", testProcessor.ProcessorName())
}

func TestEntityMoney(t *testing.T) {
	tests := []struct {
		name   string
		entity *documentai.GoogleCloudDocumentaiV1DocumentEntity
		want   string
	}{
		{
			name: "money value",
			entity: &documentai.GoogleCloudDocumentaiV1DocumentEntity{
				MentionText:     "ignored",
				NormalizedValue: &documentai.GoogleCloudDocumentaiV1DocumentEntityNormalizedValue{MoneyValue: &documentai.GoogleTypeMoney{Units: 12, Nanos: 50000000}},
			},
			want: "12.05",
		},
		{
			name:   "mention text fallback",
			entity: &documentai.GoogleCloudDocumentaiV1DocumentEntity{MentionText: " $1.25 "},
			want:   "$1.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, entityMoney(tt.entity))
		})
	}
}
