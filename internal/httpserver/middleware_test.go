package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-backend/internal/domain"
	authsvc "storefront-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type stubAuthSvc struct {
	claims   authsvc.Claims
	parseErr error
}

func (s *stubAuthSvc) Register(_ context.Context, _ authsvc.RegisterInput) (*domain.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuthSvc) Lookup(_ context.Context, _ string) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthSvc) ParseToken(_ string) (authsvc.Claims, error) {
	return s.claims, s.parseErr
}

func protectedRouter(svc *stubAuthSvc, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{authRequired(svc)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": claimsFrom(c).UserID})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	svc := &stubAuthSvc{claims: authsvc.Claims{UserID: "u1"}}
	r := protectedRouter(svc)

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status = %d, want 401", w.Code)
	}
	if w := get(r, "Basic abc123"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: status = %d, want 401", w.Code)
	}
	if w := get(r, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Fatalf("empty token: status = %d, want 401", w.Code)
	}

	failing := protectedRouter(&stubAuthSvc{parseErr: authsvc.ErrInvalidToken})
	if w := get(failing, "Bearer bad-token"); w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: status = %d, want 401", w.Code)
	}

	w := get(r, "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"userId":"u1"}` {
		t.Fatalf("claims not propagated: %s", body)
	}
}

func TestAdminRequired(t *testing.T) {
	member := protectedRouter(&stubAuthSvc{claims: authsvc.Claims{UserID: "u1"}}, adminRequired())
	if w := get(member, "Bearer token"); w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status = %d, want 403", w.Code)
	}

	admin := protectedRouter(&stubAuthSvc{claims: authsvc.Claims{UserID: "u1", IsAdmin: true}}, adminRequired())
	if w := get(admin, "Bearer token"); w.Code != http.StatusOK {
		t.Fatalf("admin: status = %d, want 200", w.Code)
	}
}
