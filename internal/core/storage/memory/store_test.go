package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newPurchase(userID, id string) *v1.Purchase {
	brand := "Acme"
	return &v1.Purchase{
		ID:     id,
		UserID: userID,
		Name:   "Oat Milk",
		Brand:  &brand,
		Store:  "Corner Market",
		Count:  1,
		Amount: decimal.RequireFromString("64"),
		Unit:   v1.UnitFluidOunce,
		Price:  decimal.RequireFromString("4.49"),
		Date:   v1.NewDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func TestStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p := newPurchase("user-1", "p-1")
	require.NoError(t, s.SavePurchase(ctx, p))
	require.False(t, p.CreatedAt.IsZero())
	require.ErrorIs(t, s.SavePurchase(ctx, newPurchase("user-1", "p-1")), storage.ErrDuplicate)

	got, err := s.GetPurchase(ctx, "user-1", "p-1")
	require.NoError(t, err)
	require.Equal(t, "Oat Milk", got.Name)

	_, err = s.GetPurchase(ctx, "user-2", "p-1")
	require.ErrorIs(t, err, storage.ErrNotFound, "purchases are scoped per user")

	got.Name = "Almond Milk"
	require.NoError(t, s.UpdatePurchase(ctx, got))
	again, err := s.GetPurchase(ctx, "user-1", "p-1")
	require.NoError(t, err)
	require.Equal(t, "Almond Milk", again.Name)
	require.Equal(t, p.CreatedAt, again.CreatedAt)

	require.ErrorIs(t, s.UpdatePurchase(ctx, newPurchase("user-1", "missing")), storage.ErrNotFound)

	require.NoError(t, s.DeletePurchase(ctx, "user-1", "p-1"))
	require.ErrorIs(t, s.DeletePurchase(ctx, "user-1", "p-1"), storage.ErrNotFound)
}

func TestStore_SavePurchasesIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.SavePurchase(ctx, newPurchase("user-1", "existing")))

	tests := []struct {
		name  string
		batch []*v1.Purchase
	}{
		{
			name:  "conflict with stored purchase",
			batch: []*v1.Purchase{newPurchase("user-1", "n-1"), newPurchase("user-1", "existing"), newPurchase("user-1", "n-2")},
		},
		{
			name:  "conflict inside batch",
			batch: []*v1.Purchase{newPurchase("user-1", "n-1"), newPurchase("user-1", "n-1")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, s.SavePurchases(ctx, tc.batch), storage.ErrDuplicate)

			list, err := s.ListPurchases(ctx, "user-1")
			require.NoError(t, err)
			require.Len(t, list, 1)
			require.Equal(t, "existing", list[0].ID)
		})
	}

	batch := []*v1.Purchase{newPurchase("user-1", "n-1"), newPurchase("user-1", "n-2")}
	require.NoError(t, s.SavePurchases(ctx, batch))
	require.False(t, batch[0].CreatedAt.IsZero())

	list, err := s.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p := newPurchase("user-1", "p-1")
	require.NoError(t, s.SavePurchase(ctx, p))
	*p.Brand = "Mutated"

	got, err := s.GetPurchase(ctx, "user-1", "p-1")
	require.NoError(t, err)
	require.Equal(t, "Acme", got.BrandOrEmpty())

	*got.Brand = "Mutated again"
	list, err := s.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "Acme", list[0].BrandOrEmpty())
}

func TestStore_ListOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ticks := []time.Time{base, base.Add(time.Minute), base.Add(time.Minute), base}
	i := 0
	s.now = func() time.Time {
		t := ticks[i]
		i++
		return t
	}

	require.NoError(t, s.SavePurchase(ctx, newPurchase("user-1", "a")))
	require.NoError(t, s.SavePurchase(ctx, newPurchase("user-1", "c")))
	require.NoError(t, s.SavePurchase(ctx, newPurchase("user-1", "b")))
	require.NoError(t, s.SavePurchase(ctx, &v1.Purchase{ID: "z", UserID: "user-2", CreatedAt: base}))

	list, err := s.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	require.Equal(t, []string{"b", "c", "a"}, ids)

	empty, err := s.ListPurchases(ctx, "nobody")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p := newPurchase("user-1", string(rune('A'+n)))
			_ = s.SavePurchase(ctx, p)
			_, _ = s.ListPurchases(ctx, "user-1")
		}(n)
	}
	wg.Wait()

	list, err := s.ListPurchases(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 50)
	require.NoError(t, s.Ping(ctx))
}
