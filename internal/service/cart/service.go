package cart

import (
	"context"
	"errors"
	"strings"

	"kabirclub/internal/domain"
	"github.com/rs/zerolog"
)

// Service owns the cart flow: validated mutations against the cart store
// and read-time assembly against the live catalog.
type Service struct {
	repo     lineItemRepo
	products productGetter
	logger   zerolog.Logger
}

type lineItemRepo interface {
	Add(ctx context.Context, ownerKey, productRef int64, size string, quantity int) (*domain.LineItem, error)
	SetQuantity(ctx context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error)
	Remove(ctx context.Context, ownerKey, lineItemID int64) error
	Clear(ctx context.Context, ownerKey int64) error
	List(ctx context.Context, ownerKey int64) ([]domain.LineItem, error)
}

type productGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

func New(repo lineItemRepo, products productGetter, logger zerolog.Logger) *Service {
	return &Service{repo: repo, products: products, logger: logger}
}

// AddLineItemCommand is the validated shape of an add-to-cart request.
type AddLineItemCommand struct {
	ProductRef int64  `json:"productId"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

func (c *AddLineItemCommand) validate() error {
	if c.ProductRef <= 0 {
		return errors.New("productId required")
	}
	c.Size = strings.TrimSpace(c.Size)
	if c.Size == "" {
		return errors.New("size required")
	}
	if c.Quantity == 0 {
		c.Quantity = 1
	}
	if c.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Add puts a product into the owner's cart, merging with an existing
// (product, size) row by incrementing its quantity. The referenced product
// must exist at add time; stock is intentionally not checked.
func (s *Service) Add(ctx context.Context, ownerKey int64, cmd AddLineItemCommand) (*domain.LineItem, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, cmd.ProductRef); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, ownerKey, cmd.ProductRef, cmd.Size, cmd.Quantity)
}

// SetQuantity overwrites a line item's quantity. Values below 1 are
// rejected and leave the stored quantity unchanged.
func (s *Service) SetQuantity(ctx context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error) {
	return s.repo.SetQuantity(ctx, ownerKey, lineItemID, quantity)
}

// Remove deletes one line item. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, ownerKey, lineItemID int64) error {
	return s.repo.Remove(ctx, ownerKey, lineItemID)
}

// Clear empties the owner's cart.
func (s *Service) Clear(ctx context.Context, ownerKey int64) error {
	return s.repo.Clear(ctx, ownerKey)
}

// Assemble joins the owner's line items with current catalog data. A line
// item whose product has been deleted is skipped and logged rather than
// failing the whole view; one bad row must not block checkout.
func (s *Service) Assemble(ctx context.Context, ownerKey int64) ([]domain.AssembledCartRow, error) {
	items, err := s.repo.List(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AssembledCartRow, 0, len(items))
	for _, item := range items {
		p, err := s.products.GetByID(ctx, item.ProductRef)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Warn().
					Int64("owner", ownerKey).
					Int64("lineItem", item.ID).
					Int64("product", item.ProductRef).
					Msg("cart: skipping line item with dangling product reference")
				continue
			}
			return nil, err
		}
		rows = append(rows, domain.AssembledCartRow{
			LineItem:    item,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			ImageURL:    p.ImageURL,
		})
	}
	return rows, nil
}
