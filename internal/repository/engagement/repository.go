package engagement

import (
	"context"

	"kabirclub/internal/domain"
)

type Repository interface {
	AddWaitlistEntry(ctx context.Context, e domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	AddContactMessage(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
}
