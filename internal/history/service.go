package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/daterange"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/aevon-lab/grocery-tracker/internal/core/view"
)

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	ErrInvalidQuery = errors.New("invalid history query")

	// ErrNoHistory is returned when the user has no purchases of the product.
	ErrNoHistory = errors.New("no purchases for product")
)

// Service serves price-history pages computed from a user's purchases.
type Service struct {
	store storage.PurchaseStore
}

func NewService(store storage.PurchaseStore) *Service {
	if store == nil {
		panic("history: store must not be nil")
	}
	return &Service{store: store}
}

// QueryHistory returns the requested page of the product's price history.
func (s *Service) QueryHistory(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	all, err := s.store.ListPurchases(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	records := matching(all, req)
	if len(records) == 0 {
		return nil, ErrNoHistory
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date.Time)
	})
	minDate := records[0].Date.Time
	maxDate := records[len(records)-1].Date.Time

	pages, err := daterange.BucketCount(minDate, maxDate, req.TimeFrame)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	offset := pages - 1
	if req.Offset != nil {
		offset = *req.Offset
	}
	if offset < 0 {
		offset = 0
	}
	if offset > pages-1 {
		offset = pages - 1
	}

	rng, err := daterange.CalculateDateRange(minDate, maxDate, req.TimeFrame, offset)
	if err != nil {
		return nil, invalidQueryf("%v", err)
	}

	points := make([]PricePoint, 0)
	for _, p := range records {
		if rng.Contains(p.Date.Time) {
			points = append(points, PricePoint{ID: p.ID, Date: p.Date, Price: p.Price, IsSale: p.IsSale})
		}
	}

	priceMin, priceMax := records[0].Price, records[0].Price
	for _, p := range records[1:] {
		if p.Price.LessThan(priceMin) {
			priceMin = p.Price
		}
		if p.Price.GreaterThan(priceMax) {
			priceMax = p.Price
		}
	}

	return &QueryResponse{
		Key:         view.KeyOf(records[0]).String(),
		Name:        records[len(records)-1].Name,
		TimeFrame:   string(req.TimeFrame),
		Offset:      offset,
		Pages:       pages,
		Start:       v1.NewDate(rng.Start),
		End:         v1.NewDate(rng.End),
		DataStart:   v1.NewDate(minDate),
		DataEnd:     v1.NewDate(maxDate),
		HasPrevious: offset > 0,
		HasNext:     offset < pages-1,
		Points:      points,
		Weeks:       rollupToWeek(points),
		PriceMin:    priceMin,
		PriceMax:    priceMax,
	}, nil
}

func validate(req QueryRequest) error {
	if req.UserID == "" {
		return invalidQueryf("user_id is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return invalidQueryf("name is required")
	}
	if strings.TrimSpace(req.Store) == "" {
		return invalidQueryf("store is required")
	}
	if req.Count < 1 {
		return invalidQueryf("count must be >= 1")
	}
	if !req.Amount.IsPositive() {
		return invalidQueryf("amount must be > 0")
	}
	if !req.Unit.Valid() {
		return invalidQueryf("invalid unit %q", req.Unit)
	}
	if _, err := daterange.ParseTimeFrame(string(req.TimeFrame)); err != nil {
		return invalidQueryf("%v", err)
	}
	return nil
}

// matching keeps the records whose GroupKey equals the requested product's.
func matching(all []*v1.Purchase, req QueryRequest) []v1.Purchase {
	brand := req.Brand
	want := view.KeyOf(v1.Purchase{
		Name:   req.Name,
		Brand:  &brand,
		Store:  req.Store,
		Count:  req.Count,
		Amount: req.Amount,
		Unit:   req.Unit,
	})

	out := make([]v1.Purchase, 0)
	for _, p := range all {
		if p != nil && view.KeyOf(*p) == want {
			out = append(out, *p)
		}
	}
	return out
}

func invalidQueryf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}
