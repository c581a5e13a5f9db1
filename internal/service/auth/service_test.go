package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"kabirclub/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: map[string]*domain.User{}, byID: map[int64]*domain.User{}, nextID: 1}
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	u.ID = s.nextID
	s.nextID++
	u.CreatedAt = time.Now()
	cp := u
	s.byEmail[u.Email] = &cp
	s.byID[u.ID] = &cp
	out := cp
	return &out, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type stubSessionRepo struct {
	sessions map[string]domain.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]domain.Session{}}
}

func (s *stubSessionRepo) Create(_ context.Context, sess domain.Session) error {
	if _, ok := s.sessions[sess.Token]; ok {
		return domain.ErrAlreadyExists
	}
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubSessionRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &sess, nil
}

func (s *stubSessionRepo) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newTestService() (*Service, *stubUserRepo, *stubSessionRepo) {
	users := newStubUserRepo()
	sessions := newStubSessionRepo()
	return New(users, sessions, 24*time.Hour), users, sessions
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:           "user@example.com",
		Name:            "Test User",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}
}

func TestRegister_CreatesCustomerWithSession(t *testing.T) {
	svc, _, sessions := newTestService()

	u, token, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != domain.RoleCustomer {
		t.Fatalf("expected customer role, got %q", u.Role)
	}
	if u.PasswordHash == "longenough" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if token == "" {
		t.Fatalf("expected session token")
	}
	if _, ok := sessions.sessions[token]; !ok {
		t.Fatalf("session not persisted")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, users, _ := newTestService()

	in := validInput()
	in.Email = "  User@Example.COM "
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, ok := users.byEmail["user@example.com"]; !ok {
		t.Fatalf("expected lowercased trimmed email key, have %v", users.byEmail)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	in := validInput()
	in.Password = "short"
	in.ConfirmPassword = "short"
	if _, _, err := svc.Register(context.Background(), in); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestRegister_RejectsPasswordMismatch(t *testing.T) {
	svc, _, _ := newTestService()

	in := validInput()
	in.ConfirmPassword = "different1"
	if _, _, err := svc.Register(context.Background(), in); err == nil {
		t.Fatalf("expected error for mismatched passwords")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(ctx, validInput())
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, err := svc.Login(ctx, "user@example.com", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestResolveOwner_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := svc.ResolveOwner(ctx, token)
	if err != nil {
		t.Fatalf("resolve owner: %v", err)
	}
	if resolved.ID != u.ID {
		t.Fatalf("expected user %d, got %d", u.ID, resolved.ID)
	}
}

func TestResolveOwner_ExpiredSession(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	sess := sessions.sessions[token]
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	sessions.sessions[token] = sess

	if _, err := svc.ResolveOwner(ctx, token); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Fatalf("expected expired session to be deleted")
	}
}

func TestLogout_RevokesSession(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()

	_, token, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Fatalf("expected session removed")
	}
	if _, err := svc.ResolveOwner(ctx, token); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after logout, got %v", err)
	}
}
