package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront-backend/internal/domain"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, ok := s.byEmail[u.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	u.ID = fmt.Sprintf("u-%d", len(s.byID)+1)
	s.byEmail[u.Email] = &u
	s.byID[u.ID] = &u
	return &u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := New(newStubUserRepo(), "test-secret", time.Hour)

	u, token, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Jess",
		Email:    "Jess@Example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "jess@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if token == "" {
		t.Fatalf("expected token on register")
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != u.ID || claims.IsAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	logged, _, err := svc.Login(context.Background(), "jess@example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != u.ID {
		t.Fatalf("login returned wrong user: %s", logged.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := New(newStubUserRepo(), "test-secret", time.Hour)

	if _, _, err := svc.Register(context.Background(), RegisterInput{Password: "longenough"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "short"}); err == nil {
		t.Fatalf("expected error for short password")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := New(newStubUserRepo(), "test-secret", time.Hour)
	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "a@b.c", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@b.c", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestParseTokenRejectsForgedToken(t *testing.T) {
	issuer := New(newStubUserRepo(), "issuer-secret", time.Hour)
	verifier := New(newStubUserRepo(), "other-secret", time.Hour)

	_, token, err := issuer.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: got %v, want ErrInvalidToken", err)
	}
	if _, err := issuer.ParseToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	svc := New(newStubUserRepo(), "test-secret", -time.Minute)
	_, token, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: got %v, want ErrInvalidToken", err)
	}
}
