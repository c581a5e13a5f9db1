package importer

import (
	"context"
	"strings"
	"testing"

	"kabirclub/internal/domain"
)

type stubProductWriter struct {
	items []domain.Product
}

func (s *stubProductWriter) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

type stubCategoryResolver struct {
	bySlug map[string]int64
	calls  int
}

func (s *stubCategoryResolver) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	s.calls++
	id, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Category{ID: id, Slug: slug}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `item_id,name,description,price,image_url,category_slug,sizes,stock_quantity,featured,trending
KC-SUM-001,Relaxed Linen Shirt,Breathable linen shirt,1299,https://example.com/shirt.jpg,summer-articles,S|M|L,40,true,false
KC-SUM-002,Printed Tee,,499,https://example.com/tee.jpg,summer-articles,M|L,25,,
KC-BTM-001,Tapered Chinos,Everyday chinos,999,https://example.com/chinos.jpg,bottom-wear,30|32|34,60,false,true
`

	writer := &stubProductWriter{}
	resolver := &stubCategoryResolver{bySlug: map[string]int64{"summer-articles": 1, "bottom-wear": 4}}
	imp := NewCSVImporter(strings.NewReader(csvData), writer, resolver)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}

	first := writer.items[0]
	if first.ItemID != "KC-SUM-001" || first.Price != 1299 || first.CategoryID != 1 || !first.Featured {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if len(first.Sizes) != 3 || first.Sizes[0] != "S" {
		t.Fatalf("unexpected sizes: %v", first.Sizes)
	}
	if writer.items[2].CategoryID != 4 || !writer.items[2].Trending {
		t.Fatalf("unexpected third product: %+v", writer.items[2])
	}

	// Slug lookups are cached per run.
	if resolver.calls != 2 {
		t.Fatalf("expected 2 category lookups, got %d", resolver.calls)
	}
}

func TestCSVImporter_UnknownCategory(t *testing.T) {
	csvData := `item_id,name,price,category_slug
KC-X-001,Mystery Item,100,no-such-category
`
	writer := &stubProductWriter{}
	resolver := &stubCategoryResolver{bySlug: map[string]int64{}}
	imp := NewCSVImporter(strings.NewReader(csvData), writer, resolver)

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if len(writer.items) != 0 {
		t.Fatalf("expected no products written, got %d", len(writer.items))
	}
}

func TestCSVImporter_InvalidPrice(t *testing.T) {
	csvData := `item_id,name,price,category_slug
KC-X-001,Bad Price,abc,summer-articles
`
	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductWriter{}, &stubCategoryResolver{bySlug: map[string]int64{"summer-articles": 1}})

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for invalid price")
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `item_id,name,price,category_slug
,,,
KC-X-001,Real Item,100,summer-articles
`
	writer := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csvData), writer, &stubCategoryResolver{bySlug: map[string]int64{"summer-articles": 1}})

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 || len(writer.items) != 1 {
		t.Fatalf("expected 1 product, got %d", count)
	}
}
