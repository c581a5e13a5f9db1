package engagement

import (
	"context"
	"errors"

	"kabirclub/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) AddWaitlistEntry(ctx context.Context, e domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	const q = `
INSERT INTO waitlist (name, email)
VALUES ($1, $2)
RETURNING id, created_at
`
	out := e
	if err := r.pool.QueryRow(ctx, q, e.Name, e.Email).Scan(&out.ID, &out.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) AddContactMessage(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error) {
	const q = `
INSERT INTO contact_messages (name, email, subject, message)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	out := m
	if err := r.pool.QueryRow(ctx, q, m.Name, m.Email, m.Subject, m.Message).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
