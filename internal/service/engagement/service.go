package engagement

import (
	"context"
	"errors"
	"strings"

	"kabirclub/internal/domain"
	engagementrepo "kabirclub/internal/repository/engagement"
)

// Service takes waitlist signups and contact messages.
type Service struct {
	repo engagementrepo.Repository
}

func New(repo engagementrepo.Repository) *Service {
	return &Service{repo: repo}
}

type JoinWaitlistInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JoinWaitlist adds an email to the waitlist. Duplicate emails surface as
// domain.ErrAlreadyExists.
func (s *Service) JoinWaitlist(ctx context.Context, in JoinWaitlistInput) (*domain.WaitlistEntry, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if name == "" {
		return nil, errors.New("name required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email required")
	}
	return s.repo.AddWaitlistEntry(ctx, domain.WaitlistEntry{Name: name, Email: email})
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Message) == "" {
		return nil, errors.New("name, subject and message required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email required")
	}
	return s.repo.AddContactMessage(ctx, domain.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	})
}
