package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type categorySeed struct {
	Name     string
	Slug     string
	ImageURL string
}

type productSeed struct {
	ItemID        string
	Name          string
	Description   string
	Price         int64
	ImageURL      string
	CategorySlug  string
	Sizes         []string
	StockQuantity int
	Featured      bool
	Trending      bool
}

// Apply inserts the base storefront catalog and a default admin account.
// It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Summer Articles", Slug: "summer-articles", ImageURL: "https://images.pexels.com/photos/1043474/pexels-photo-1043474.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		{Name: "Winter Articles", Slug: "winter-articles", ImageURL: "https://images.pexels.com/photos/1183266/pexels-photo-1183266.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		{Name: "Party Wear", Slug: "party-wear", ImageURL: "https://images.pexels.com/photos/27313021/pexels-photo-27313021/free-photo-of-a-man-and-woman-posing-for-a-photo-in-front-of-a-chair.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		{Name: "Bottom Wear", Slug: "bottom-wear", ImageURL: "https://images.pexels.com/photos/3914693/pexels-photo-3914693.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		{Name: "Track Suits", Slug: "track-suits", ImageURL: "https://images.pexels.com/photos/18600731/pexels-photo-18600731/free-photo-of-attractive-woman-sitting-in-the-studio.jpeg?auto=compress&cs=tinysrgb&w=1600"},
		{Name: "Accessories", Slug: "accessories", ImageURL: "https://images.pexels.com/photos/31323080/pexels-photo-31323080/free-photo-of-elegant-leather-belts-displayed-on-gray-surface.jpeg"},
	}

	slugToID := make(map[string]int64, len(categories))
	for _, c := range categories {
		id, err := upsertCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		slugToID[c.Slug] = id
	}

	products := []productSeed{
		{
			ItemID:        "KC-SUM-001",
			Name:          "Relaxed Linen Shirt",
			Description:   "Breathable linen shirt for warm days",
			Price:         1299,
			ImageURL:      "https://images.pexels.com/photos/297933/pexels-photo-297933.jpeg?auto=compress&cs=tinysrgb&w=1600",
			CategorySlug:  "summer-articles",
			Sizes:         []string{"S", "M", "L", "XL"},
			StockQuantity: 40,
			Featured:      true,
		},
		{
			ItemID:        "KC-WIN-001",
			Name:          "Wool Blend Overcoat",
			Description:   "Heavy overcoat with a soft inner lining",
			Price:         3499,
			ImageURL:      "https://images.pexels.com/photos/1183266/pexels-photo-1183266.jpeg?auto=compress&cs=tinysrgb&w=1600",
			CategorySlug:  "winter-articles",
			Sizes:         []string{"M", "L", "XL"},
			StockQuantity: 15,
			Trending:      true,
		},
		{
			ItemID:        "KC-BTM-001",
			Name:          "Tapered Chinos",
			Description:   "Everyday chinos with a tapered fit",
			Price:         999,
			ImageURL:      "https://images.pexels.com/photos/3914693/pexels-photo-3914693.jpeg?auto=compress&cs=tinysrgb&w=1600",
			CategorySlug:  "bottom-wear",
			Sizes:         []string{"30", "32", "34", "36"},
			StockQuantity: 60,
			Featured:      true,
			Trending:      true,
		},
	}

	for _, p := range products {
		catID, ok := slugToID[p.CategorySlug]
		if !ok {
			return fmt.Errorf("unknown category slug %q for product %s", p.CategorySlug, p.ItemID)
		}
		if err := upsertProduct(ctx, pool, catID, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ItemID, err)
		}
	}

	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) (int64, error) {
	const q = `
INSERT INTO categories (name, slug, image_url)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    image_url = EXCLUDED.image_url
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, c.Name, c.Slug, c.ImageURL).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryID int64, p productSeed) error {
	sizes, err := json.Marshal(p.Sizes)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO products (item_id, name, description, price, image_url, category_id, sizes, stock_quantity, featured, trending)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (item_id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    image_url = EXCLUDED.image_url,
    category_id = EXCLUDED.category_id,
    sizes = EXCLUDED.sizes,
    stock_quantity = EXCLUDED.stock_quantity,
    featured = EXCLUDED.featured,
    trending = EXCLUDED.trending
`
	_, err = pool.Exec(ctx, q, p.ItemID, p.Name, p.Description, p.Price, p.ImageURL, categoryID, sizes, p.StockQuantity, p.Featured, p.Trending)
	return err
}

// ensureAdmin creates a default admin if no admin exists yet. The password
// is fixed for local development and must be rotated in real deployments.
func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE role = 'admin'`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
INSERT INTO users (email, name, password_hash, role)
VALUES ($1, $2, $3, 'admin')
ON CONFLICT (email) DO NOTHING
`, "admin@kabirclub.local", "Store Admin", string(hashed))
	return err
}
