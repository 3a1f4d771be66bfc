package storage

import (
	"context"
	"errors"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
)

// ErrDuplicate is returned when a purchase with the same (user_id, id) already exists.
var ErrDuplicate = errors.New("purchase already exists")

// ErrNotFound is returned when no purchase with the given (user_id, id) exists.
var ErrNotFound = errors.New("purchase not found")

// PurchaseStore defines the interface for storing and retrieving purchases.
// Every read and write is scoped to one user.
type PurchaseStore interface {
	SavePurchase(ctx context.Context, p *v1.Purchase) error

	// SavePurchases inserts every purchase or none of them.
	SavePurchases(ctx context.Context, ps []*v1.Purchase) error

	GetPurchase(ctx context.Context, userID, id string) (*v1.Purchase, error)

	// ListPurchases returns all of a user's purchases, most recently created first.
	ListPurchases(ctx context.Context, userID string) ([]*v1.Purchase, error)

	// UpdatePurchase replaces the mutable fields of an existing purchase and sets UpdatedAt.
	UpdatePurchase(ctx context.Context, p *v1.Purchase) error
	DeletePurchase(ctx context.Context, userID, id string) error

	Ping(ctx context.Context) error
}
