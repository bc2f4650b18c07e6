package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-backend/internal/domain"
	userrepo "storefront-backend/internal/repository/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the authenticated identity carried by an access token.
type Claims struct {
	UserID  string
	IsAdmin bool
}

// Service handles registration, login and token validation.
type Service struct {
	repo        userrepo.Repository
	secret      []byte
	ttl         time.Duration
	passwordMin int
}

func New(repo userrepo.Repository, secret string, ttl time.Duration) *Service {
	return &Service{
		repo:        repo,
		secret:      []byte(secret),
		ttl:         ttl,
		passwordMin: 8,
	}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and returns it with a fresh access token.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, "", errors.New("email required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login validates credentials and returns the user plus an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Lookup resolves the user behind validated claims.
func (s *Service) Lookup(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// ParseToken validates a signed token and extracts its claims.
func (s *Service) ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, ErrInvalidToken
	}
	admin, _ := mapClaims["admin"].(bool)
	return Claims{UserID: sub, IsAdmin: admin}, nil
}

func (s *Service) issueToken(u *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"admin": u.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}
