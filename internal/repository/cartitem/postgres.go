package cartitem

import (
	"context"
	"errors"

	"kabirclub/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Add(ctx context.Context, ownerKey, productRef int64, size string, quantity int) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	// Single atomic upsert: two racing adds for the same row both land on
	// the unique index and the loser turns into an increment.
	const q = `
INSERT INTO cart_items (user_id, product_id, size, quantity)
VALUES ($1, $2, $3, $4)
ON CONFLICT ON CONSTRAINT uq_cart_items_owner_product_size
DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
RETURNING id, user_id, product_id, size, quantity
`
	var item domain.LineItem
	err := r.pool.QueryRow(ctx, q, ownerKey, productRef, size, quantity).Scan(
		&item.ID,
		&item.OwnerKey,
		&item.ProductRef,
		&item.Size,
		&item.Quantity,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("owner", ownerKey).Int64("product", productRef).Msg("cart repo: add failed")
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) SetQuantity(ctx context.Context, ownerKey, lineItemID int64, quantity int) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	const q = `
UPDATE cart_items
SET quantity = $1
WHERE id = $2 AND user_id = $3
RETURNING id, user_id, product_id, size, quantity
`
	var item domain.LineItem
	err := r.pool.QueryRow(ctx, q, quantity, lineItemID, ownerKey).Scan(
		&item.ID,
		&item.OwnerKey,
		&item.ProductRef,
		&item.Size,
		&item.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Remove(ctx context.Context, ownerKey, lineItemID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, lineItemID, ownerKey)
	return err
}

func (r *postgresRepo) Clear(ctx context.Context, ownerKey int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, ownerKey)
	return err
}

func (r *postgresRepo) List(ctx context.Context, ownerKey int64) ([]domain.LineItem, error) {
	const q = `
SELECT id, user_id, product_id, size, quantity
FROM cart_items
WHERE user_id = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, ownerKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		if err := rows.Scan(&item.ID, &item.OwnerKey, &item.ProductRef, &item.Size, &item.Quantity); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
