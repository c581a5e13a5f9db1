package cart

import (
	"context"
	"errors"
	"testing"

	"kabirclub/internal/domain"

	"github.com/rs/zerolog"
)

type stubLineItemRepo struct {
	items  map[int64]*domain.LineItem
	nextID int64
}

func newStubLineItemRepo() *stubLineItemRepo {
	return &stubLineItemRepo{items: map[int64]*domain.LineItem{}, nextID: 1}
}

func (s *stubLineItemRepo) Add(_ context.Context, ownerKey, productRef int64, size string, quantity int) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	for _, it := range s.items {
		if it.OwnerKey == ownerKey && it.ProductRef == productRef && it.Size == size {
			it.Quantity += quantity
			cp := *it
			return &cp, nil
		}
	}
	it := &domain.LineItem{ID: s.nextID, OwnerKey: ownerKey, ProductRef: productRef, Size: size, Quantity: quantity}
	s.items[it.ID] = it
	s.nextID++
	cp := *it
	return &cp, nil
}

func (s *stubLineItemRepo) SetQuantity(_ context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	it, ok := s.items[lineItemID]
	if !ok || it.OwnerKey != ownerKey {
		return nil, domain.ErrNotFound
	}
	it.Quantity = quantity
	cp := *it
	return &cp, nil
}

func (s *stubLineItemRepo) Remove(_ context.Context, ownerKey, lineItemID int64) error {
	it, ok := s.items[lineItemID]
	if ok && it.OwnerKey == ownerKey {
		delete(s.items, lineItemID)
	}
	return nil
}

func (s *stubLineItemRepo) Clear(_ context.Context, ownerKey int64) error {
	for id, it := range s.items {
		if it.OwnerKey == ownerKey {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *stubLineItemRepo) List(_ context.Context, ownerKey int64) ([]domain.LineItem, error) {
	var out []domain.LineItem
	for id := int64(1); id < s.nextID; id++ {
		if it, ok := s.items[id]; ok && it.OwnerKey == ownerKey {
			out = append(out, *it)
		}
	}
	return out, nil
}

type stubProductGetter struct {
	products map[int64]*domain.Product
}

func (s *stubProductGetter) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func newTestService(products map[int64]*domain.Product) (*Service, *stubLineItemRepo) {
	repo := newStubLineItemRepo()
	return New(repo, &stubProductGetter{products: products}, zerolog.Nop()), repo
}

func TestAdd_MergesSameProductAndSize(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})
	ctx := context.Background()

	first, err := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 2})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 3})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected merge into existing row, got new id %d", second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
}

func TestAdd_DifferentSizeCreatesSeparateRow(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})
	ctx := context.Background()

	first, _ := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 1})
	second, err := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "L", Quantity: 1})
	if err != nil {
		t.Fatalf("add size L: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct rows for different sizes")
	}
}

func TestAdd_DefaultsQuantityToOne(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})

	item, err := svc.Add(context.Background(), 1, AddLineItemCommand{ProductRef: 7, Size: "M"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected defaulted quantity 1, got %d", item.Quantity)
	}
}

func TestAdd_RejectsNegativeQuantity(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})

	_, err := svc.Add(context.Background(), 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: -2})
	if !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestAdd_UnknownProductRejected(t *testing.T) {
	svc, repo := newTestService(map[int64]*domain.Product{})

	_, err := svc.Add(context.Background(), 1, AddLineItemCommand{ProductRef: 99, Size: "M", Quantity: 1})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected no rows stored, got %d", len(repo.items))
	}
}

func TestSetQuantity_InvalidLeavesStateUnchanged(t *testing.T) {
	svc, repo := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})
	ctx := context.Background()

	item, _ := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 2})

	if _, err := svc.SetQuantity(ctx, 1, item.ID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if repo.items[item.ID].Quantity != 2 {
		t.Fatalf("expected quantity untouched at 2, got %d", repo.items[item.ID].Quantity)
	}
}

func TestSetQuantity_OtherOwnersRowIsNotFound(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500},
	})
	ctx := context.Background()

	item, _ := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 2})

	if _, err := svc.SetQuantity(ctx, 2, item.ID, 3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestRemove_UnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{})

	if err := svc.Remove(context.Background(), 1, 12345); err != nil {
		t.Fatalf("expected idempotent remove, got %v", err)
	}
}

func TestAssemble_SkipsDanglingProductRef(t *testing.T) {
	products := map[int64]*domain.Product{
		7: {ID: 7, Name: "Tee", Price: 500, ImageURL: "https://example.com/tee.jpg"},
		8: {ID: 8, Name: "Hoodie", Price: 1200},
	}
	svc, _ := newTestService(products)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 7, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, 1, AddLineItemCommand{ProductRef: 8, Size: "L", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Product 8 disappears from the catalog after the cart row exists.
	delete(products, 8)

	rows, err := svc.Assemble(ctx, 1)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 assembled row, got %d", len(rows))
	}
	if rows[0].ProductRef != 7 || rows[0].ProductName != "Tee" || rows[0].UnitPrice != 500 {
		t.Fatalf("unexpected assembled row: %+v", rows[0])
	}
}

func TestAssemble_EmptyCart(t *testing.T) {
	svc, _ := newTestService(map[int64]*domain.Product{})

	rows, err := svc.Assemble(context.Background(), 1)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}
