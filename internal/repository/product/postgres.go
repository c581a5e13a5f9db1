package product

import (
	"context"
	"errors"

	"kabirclub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const columns = `id, item_id, name, description, price, image_url, category_id, sizes, stock_quantity, featured, trending`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	q := `SELECT ` + columns + ` FROM products WHERE id = $1`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.ItemID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
		&p.CategoryID, &p.Sizes, &p.StockQuantity, &p.Featured, &p.Trending,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Int64("id", id).Msg("product repo: get failed")
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	q := `SELECT ` + columns + ` FROM products WHERE category_id = $1 ORDER BY id ASC`
	return r.list(ctx, q, categoryID)
}

func (r *postgresRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + columns + ` FROM products WHERE featured ORDER BY id ASC`
	return r.list(ctx, q)
}

func (r *postgresRepo) ListTrending(ctx context.Context) ([]domain.Product, error) {
	q := `SELECT ` + columns + ` FROM products WHERE trending ORDER BY id ASC`
	return r.list(ctx, q)
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (item_id, name, description, price, image_url, category_id, sizes, stock_quantity, featured, trending)
VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '[]'::jsonb), $8, $9, $10)
RETURNING id
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.ItemID, p.Name, p.Description, p.Price, p.ImageURL,
		p.CategoryID, p.Sizes, p.StockQuantity, p.Featured, p.Trending,
	).Scan(&out.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Error().Err(err).Str("name", p.Name).Msg("product repo: create failed")
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET item_id = $1,
    name = $2,
    description = $3,
    price = $4,
    image_url = $5,
    category_id = $6,
    sizes = COALESCE($7, '[]'::jsonb),
    stock_quantity = $8,
    featured = $9,
    trending = $10
WHERE id = $11
RETURNING ` + columns
	var out domain.Product
	err := r.pool.QueryRow(ctx, q,
		p.ItemID, p.Name, p.Description, p.Price, p.ImageURL,
		p.CategoryID, p.Sizes, p.StockQuantity, p.Featured, p.Trending, p.ID,
	).Scan(
		&out.ID, &out.ItemID, &out.Name, &out.Description, &out.Price, &out.ImageURL,
		&out.CategoryID, &out.Sizes, &out.StockQuantity, &out.Featured, &out.Trending,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) list(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.ItemID, &p.Name, &p.Description, &p.Price, &p.ImageURL,
			&p.CategoryID, &p.Sizes, &p.StockQuantity, &p.Featured, &p.Trending,
		); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
