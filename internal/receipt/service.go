package receipt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/aevon-lab/grocery-tracker/internal/core/units"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Image is one uploaded receipt image.
type Image struct {
	Data     []byte
	MimeType string
}

// ScanResult is the outcome for one image, in upload order.
type ScanResult struct {
	Image     int           `json:"image"`
	Store     string        `json:"store"`
	Date      v1.Date       `json:"date"`
	Items     []v1.Purchase `json:"items"`
	Skipped   int           `json:"skipped"`
	Cached    bool          `json:"cached"`
	Committed bool          `json:"committed"`
}

// Options tunes a Service. Zero values fall back to defaults.
type Options struct {
	CacheTTL      time.Duration
	Concurrency   int
	Timeout       time.Duration
	MaxImages     int
	MaxImageBytes int64
}

type Service struct {
	analyzer    Analyzer
	store       storage.PurchaseStore
	cache       *cache.Cache
	inflight    singleflight.Group
	normalizer  normalizer
	concurrency int
	timeout     time.Duration
	maxImages   int
	maxBytes    int64
	newID       func() string
}

func NewService(analyzer Analyzer, store storage.PurchaseStore, table *units.Table, opts Options) *Service {
	if analyzer == nil {
		panic("receipt: analyzer must not be nil")
	}
	if store == nil {
		panic("receipt: store must not be nil")
	}
	if table == nil {
		table = units.NewTable()
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxImages <= 0 {
		opts.MaxImages = 5
	}
	if opts.MaxImageBytes <= 0 {
		opts.MaxImageBytes = 10 << 20
	}

	return &Service{
		analyzer:    analyzer,
		store:       store,
		cache:       cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		normalizer:  normalizer{units: table, today: time.Now},
		concurrency: opts.Concurrency,
		timeout:     opts.Timeout,
		maxImages:   opts.MaxImages,
		maxBytes:    opts.MaxImageBytes,
		newID:       uuid.NewString,
	}
}

// Scan analyzes every image concurrently and returns draft purchases per image.
// With commit set, the drafts are stored for userID and returned with their IDs.
// Any analyzer failure fails the whole scan with ErrAnalyze.
func (s *Service) Scan(ctx context.Context, userID string, images []Image, ov Overrides, commit bool) ([]ScanResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	results := make([]ScanResult, len(images))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, img := range images {
		g.Go(func() error {
			rec, cached, err := s.analyze(gctx, img)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}

			store, date, items, skipped := s.normalizer.normalize(rec, ov)
			results[i] = ScanResult{
				Image:   i,
				Store:   store,
				Date:    date,
				Items:   items,
				Skipped: skipped,
				Cached:  cached,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if commit {
		if err := s.commit(ctx, userID, results); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// analyze returns the cached receipt for identical image bytes, so each
// distinct image reaches the analyzer at most once per cache TTL.
func (s *Service) analyze(ctx context.Context, img Image) (*Receipt, bool, error) {
	sum := sha256.Sum256(img.Data)
	key := hex.EncodeToString(sum[:])

	if v, ok := s.cache.Get(key); ok {
		slog.Debug("[Receipts] Cache hit", "sha256", key)
		return v.(*Receipt), true, nil
	}

	// The shared call runs detached from any one caller; a caller that gives up
	// stops waiting without cancelling it for the others.
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		rec, err := s.analyzer.Analyze(callCtx, img.Data, img.MimeType)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: analyzer returned no receipt", ErrAnalyze)
		}
		s.cache.SetDefault(key, rec)
		return rec, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%w: %v", ErrAnalyze, ctx.Err())
	case res = <-ch:
	}
	if err := res.Err; err != nil {
		slog.Warn("[Receipts] Analysis failed", "sha256", key, "error", err)
		return nil, false, wrapAnalyze(err)
	}
	return res.Val.(*Receipt), false, nil
}

func wrapAnalyze(err error) error {
	if errors.Is(err, ErrAnalyze) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrAnalyze, err)
}

// commit validates every draft, then stores the survivors in one batch so a
// failed save leaves none of them behind.
func (s *Service) commit(ctx context.Context, userID string, results []ScanResult) error {
	kept := make([][]v1.Purchase, len(results))
	batch := make([]*v1.Purchase, 0)
	skipped := make([]int, len(results))

	for ri := range results {
		kept[ri] = make([]v1.Purchase, 0, len(results[ri].Items))
		for _, item := range results[ri].Items {
			p := item
			p.ID = s.newID()
			p.UserID = userID
			if err := p.Validate(); err != nil {
				slog.Debug("[Receipts] Dropping invalid line", "error", err, "name", p.Name)
				skipped[ri]++
				continue
			}
			kept[ri] = append(kept[ri], p)
		}
	}
	for ri := range kept {
		for i := range kept[ri] {
			batch = append(batch, &kept[ri][i])
		}
	}

	if len(batch) > 0 {
		if err := s.store.SavePurchases(ctx, batch); err != nil {
			return fmt.Errorf("save scanned purchases: %w", err)
		}
	}

	for ri := range results {
		results[ri].Items = kept[ri]
		results[ri].Skipped += skipped[ri]
		results[ri].Committed = true
	}
	slog.Info("[Receipts] Committed scanned purchases", "user_id", userID, "images", len(results), "count", len(batch))
	return nil
}
