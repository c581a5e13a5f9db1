package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"kabirclub/internal/domain"
)

type ProductWriter interface {
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryResolver interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts products, resolving
// category slugs against the existing categories table.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryResolver
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryResolver) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

// Run parses CSV rows and inserts one product per row. It returns the
// number of products written before the first error.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	categoryIDs := map[string]int64{}
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, slug, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if p == nil {
			continue
		}

		catID, ok := categoryIDs[slug]
		if !ok {
			c, err := i.categories.GetBySlug(ctx, slug)
			if err != nil {
				return imported, fmt.Errorf("resolve category %q: %w", slug, err)
			}
			catID = c.ID
			categoryIDs[slug] = catID
		}
		p.CategoryID = catID

		if _, err := i.products.Create(ctx, *p); err != nil {
			return imported, fmt.Errorf("create product %q: %w", p.ItemID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*domain.Product, string, error) {
	itemID := pick(record, index, "item_id")
	name := pick(record, index, "name")
	slug := pick(record, index, "category_slug")

	// Blank lines and comment-ish rows are skipped silently.
	if itemID == "" && name == "" {
		return nil, "", nil
	}
	if itemID == "" || name == "" || slug == "" {
		return nil, "", fmt.Errorf("invalid row: item_id, name and category_slug are required (item_id=%q)", itemID)
	}

	price, err := strconv.ParseInt(pick(record, index, "price"), 10, 64)
	if err != nil || price < 0 {
		return nil, "", fmt.Errorf("invalid price for item %q", itemID)
	}

	stock := 0
	if raw := pick(record, index, "stock_quantity"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return nil, "", fmt.Errorf("invalid stock_quantity for item %q", itemID)
		}
	}

	sizes := []string{}
	if raw := pick(record, index, "sizes"); raw != "" {
		for _, s := range strings.Split(raw, "|") {
			if s = strings.TrimSpace(s); s != "" {
				sizes = append(sizes, s)
			}
		}
	}

	p := &domain.Product{
		ItemID:        itemID,
		Name:          name,
		Description:   pick(record, index, "description"),
		Price:         price,
		ImageURL:      pick(record, index, "image_url"),
		Sizes:         sizes,
		StockQuantity: stock,
		Featured:      parseBool(pick(record, index, "featured")),
		Trending:      parseBool(pick(record, index, "trending")),
	}
	return p, slug, nil
}

func parseBool(raw string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(raw))
	return b
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
