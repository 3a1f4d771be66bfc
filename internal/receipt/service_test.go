package receipt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage/memory"
	"github.com/aevon-lab/grocery-tracker/internal/core/units"
	receiptmocks "github.com/aevon-lab/grocery-tracker/internal/mocks/receipt"
	storagemocks "github.com/aevon-lab/grocery-tracker/internal/mocks/storage"
	"github.com/aevon-lab/grocery-tracker/internal/receipt"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *receipt.Receipt {
	return &receipt.Receipt{
		Merchant: "CORNER MARKET",
		Date:     "2026-01-15",
		Items: []receipt.LineItem{
			{Description: "(sale) gala apples", Price: "3.98", Quantity: "2", Unit: "lb"},
			{Description: "whole milk", Price: "3.49", Unit: "gal"},
			{Description: "bag fee"},
		},
	}
}

func newService(analyzer receipt.Analyzer, store *storagemocks.PurchaseStore, concurrency int) *receipt.Service {
	return receipt.NewService(analyzer, store, units.NewTable(), receipt.Options{Concurrency: concurrency})
}

func TestScan_DraftsWithoutCommit(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, []byte("img-1"), "image/jpeg").Return(sampleReceipt(), nil).Once()

	svc := newService(analyzer, store, 2)
	results, err := svc.Scan(context.Background(), "user-1", []receipt.Image{{Data: []byte("img-1"), MimeType: "image/jpeg"}}, receipt.Overrides{}, false)

	require.NoError(t, err)
	require.Len(t, results, 1)
	res := results[0]
	require.Equal(t, 0, res.Image)
	require.Equal(t, "Corner Market", res.Store)
	require.Equal(t, "2026-01-15", res.Date.String())
	require.Equal(t, 1, res.Skipped)
	require.False(t, res.Cached)
	require.False(t, res.Committed)
	require.Len(t, res.Items, 2)
	require.Equal(t, "Gala Apples", res.Items[0].Name)
	require.True(t, res.Items[0].IsSale)
	require.Empty(t, res.Items[0].ID)
	require.Equal(t, v1.UnitGallon, res.Items[1].Unit)
}

func TestScan_IdenticalImagesAnalyzedOnce(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, []byte("same"), "image/png").Return(sampleReceipt(), nil).Once()

	svc := newService(analyzer, store, 4)
	images := []receipt.Image{
		{Data: []byte("same"), MimeType: "image/png"},
		{Data: []byte("same"), MimeType: "image/png"},
		{Data: []byte("same"), MimeType: "image/png"},
	}

	results, err := svc.Scan(context.Background(), "user-1", images, receipt.Overrides{}, false)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, res := range results {
		require.Equal(t, i, res.Image)
		require.Len(t, res.Items, 2)
	}

	again, err := svc.Scan(context.Background(), "user-2", images[:1], receipt.Overrides{}, false)
	require.NoError(t, err)
	require.True(t, again[0].Cached)
}

func TestScan_ResultsKeepUploadOrder(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, image []byte, _ string) (*receipt.Receipt, error) {
			return &receipt.Receipt{Merchant: string(image), Date: "2026-01-01"}, nil
		}).Times(3)

	svc := newService(analyzer, store, 3)
	images := []receipt.Image{{Data: []byte("first")}, {Data: []byte("second")}, {Data: []byte("third")}}

	results, err := svc.Scan(context.Background(), "user-1", images, receipt.Overrides{}, false)
	require.NoError(t, err)
	require.Equal(t, "First", results[0].Store)
	require.Equal(t, "Second", results[1].Store)
	require.Equal(t, "Third", results[2].Store)
}

func TestScan_AnalyzerFailure(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("backend down")).Once()

	svc := newService(analyzer, store, 1)
	_, err := svc.Scan(context.Background(), "user-1", []receipt.Image{{Data: []byte("bad")}}, receipt.Overrides{}, true)

	require.ErrorIs(t, err, receipt.ErrAnalyze)
	store.AssertNotCalled(t, "SavePurchases", mock.Anything, mock.Anything)
}

func TestScan_FailuresAreNotCached(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(nil, receipt.ErrAnalyze).Once()
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(sampleReceipt(), nil).Once()

	svc := newService(analyzer, store, 1)
	img := []receipt.Image{{Data: []byte("retry")}}

	_, err := svc.Scan(context.Background(), "user-1", img, receipt.Overrides{}, false)
	require.ErrorIs(t, err, receipt.ErrAnalyze)

	results, err := svc.Scan(context.Background(), "user-1", img, receipt.Overrides{}, false)
	require.NoError(t, err)
	require.False(t, results[0].Cached)
}

func TestScan_CommitPersistsDrafts(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(sampleReceipt(), nil).Once()

	store := memory.NewStore()
	svc := receipt.NewService(analyzer, store, units.NewTable(), receipt.Options{})

	results, err := svc.Scan(context.Background(), "user-1", []receipt.Image{{Data: []byte("img")}}, receipt.Overrides{Store: "Farm Stand"}, true)
	require.NoError(t, err)
	require.True(t, results[0].Committed)
	require.Len(t, results[0].Items, 2)

	stored, err := store.ListPurchases(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 2)

	ids := map[string]bool{}
	for _, item := range results[0].Items {
		require.NotEmpty(t, item.ID)
		require.Equal(t, "Farm Stand", item.Store)
		ids[item.ID] = true
	}
	for _, p := range stored {
		require.True(t, ids[p.ID])
		require.Equal(t, "user-1", p.UserID)
	}
}

func TestScan_CommitDropsDraftsThatFailValidation(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	// No merchant and no store override: drafts cannot be stored.
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(&receipt.Receipt{Date: "2026-01-15", Items: []receipt.LineItem{{Description: "milk", Price: "3.49"}}}, nil).Once()

	svc := newService(analyzer, store, 1)
	results, err := svc.Scan(context.Background(), "user-1", []receipt.Image{{Data: []byte("img")}}, receipt.Overrides{}, true)

	require.NoError(t, err)
	require.Empty(t, results[0].Items)
	require.Equal(t, 1, results[0].Skipped)
	store.AssertNotCalled(t, "SavePurchases", mock.Anything, mock.Anything)
}

func TestScan_CommitStoreFailure(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	store := storagemocks.NewPurchaseStore(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(sampleReceipt(), nil).Once()
	store.EXPECT().SavePurchases(mock.Anything, mock.MatchedBy(func(ps []*v1.Purchase) bool {
		return len(ps) == 2
	})).Return(errors.New("connection reset")).Once()

	svc := newService(analyzer, store, 1)
	_, err := svc.Scan(context.Background(), "user-1", []receipt.Image{{Data: []byte("img")}}, receipt.Overrides{}, true)

	require.Error(t, err)
	require.NotErrorIs(t, err, receipt.ErrAnalyze)
}

// failingBatchStore stores nothing when any purchase in a batch is rejected.
type failingBatchStore struct {
	*memory.Store
	failOn int
}

func (s *failingBatchStore) SavePurchases(ctx context.Context, ps []*v1.Purchase) error {
	if len(ps) >= s.failOn {
		return errors.New("db down")
	}
	return s.Store.SavePurchases(ctx, ps)
}

func TestScan_FailedCommitLeavesNothingStored(t *testing.T) {
	analyzer := receiptmocks.NewAnalyzer(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).Return(sampleReceipt(), nil).Times(2)

	store := &failingBatchStore{Store: memory.NewStore(), failOn: 2}
	svc := receipt.NewService(analyzer, store, units.NewTable(), receipt.Options{Concurrency: 2})
	images := []receipt.Image{{Data: []byte("first")}, {Data: []byte("second")}}

	_, err := svc.Scan(context.Background(), "user-1", images, receipt.Overrides{}, true)
	require.ErrorContains(t, err, "db down")

	stored, err := store.ListPurchases(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestScan_SharedAnalysisSurvivesCallerCancel(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	analyzer := receiptmocks.NewAnalyzer(t)
	analyzer.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []byte, _ string) (*receipt.Receipt, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return sampleReceipt(), nil
		}).Once()

	svc := newService(analyzer, storagemocks.NewPurchaseStore(t), 1)
	images := []receipt.Image{{Data: []byte("shared"), MimeType: "image/jpeg"}}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Scan(firstCtx, "user-1", images, receipt.Overrides{}, false)
		firstDone <- err
	}()

	<-started
	cancelFirst()
	require.ErrorIs(t, <-firstDone, receipt.ErrAnalyze)

	secondDone := make(chan error, 1)
	go func() {
		results, err := svc.Scan(context.Background(), "user-2", images, receipt.Overrides{}, false)
		if err == nil && len(results[0].Items) != 2 {
			err = errors.New("unexpected draft count")
		}
		secondDone <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)
	require.NoError(t, <-secondDone)
}
