package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kabirclub/internal/domain"
	sessionrepo "kabirclub/internal/repository/session"
	userrepo "kabirclub/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	// Deliberately indistinguishable between unknown email and bad password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles registration, login and session resolution.
type Service struct {
	users       userrepo.Repository
	sessions    *sessionManager
	sessionTTL  time.Duration
	passwordMin int
}

func New(users userrepo.Repository, sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		users:       users,
		sessions:    newSessionManager(sessions),
		sessionTTL:  sessionTTL,
		passwordMin: 8,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register creates a customer account and logs it in, returning the user
// and a fresh session token for the cookie.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", errors.New("valid email required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", errors.New("name required")
	}
	if len(in.Password) < s.passwordMin {
		return nil, "", fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", errors.New("passwords do not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, "", err
	}

	u, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashed),
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Issue(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login validates credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, u.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// ResolveOwner maps a session token to the authenticated user. This is the
// single place identity is derived; everything downstream receives the
// owner key as an explicit argument.
func (s *Service) ResolveOwner(ctx context.Context, token string) (*domain.User, error) {
	userID, ok := s.sessions.Validate(ctx, token)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, err
	}
	return u, nil
}

// SessionTTLSeconds exposes the cookie lifetime in seconds.
func (s *Service) SessionTTLSeconds() int {
	return int(s.sessionTTL.Seconds())
}
