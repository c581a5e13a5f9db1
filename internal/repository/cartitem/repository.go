package cartitem

import (
	"context"

	"kabirclub/internal/domain"
)

// Repository is the durable cart store. Every operation is scoped by the
// owner key resolved at the HTTP boundary; no method trusts a
// client-supplied owner.
type Repository interface {
	// Add inserts a line item or, when one already exists for the same
	// (owner, product, size), atomically increments its quantity.
	Add(ctx context.Context, ownerKey, productRef int64, size string, quantity int) (*domain.LineItem, error)
	// SetQuantity overwrites the quantity of an owner's line item.
	// Quantities below 1 are rejected with domain.ErrInvalidQuantity.
	SetQuantity(ctx context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error)
	// Remove deletes a line item if the owner has it. Removing an unknown
	// id is a no-op.
	Remove(ctx context.Context, ownerKey, lineItemID int64) error
	// Clear deletes every line item of the owner.
	Clear(ctx context.Context, ownerKey int64) error
	// List returns the owner's line items. Order is unspecified.
	List(ctx context.Context, ownerKey int64) ([]domain.LineItem, error)
}
