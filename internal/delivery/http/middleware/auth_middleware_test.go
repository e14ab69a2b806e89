package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/medilab/lab-api/config"
	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/pkg/jwt"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *jwt.SessionService, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessionService := jwt.NewSessionService(config.SessionConfig{
		Secret:     "test-secret",
		Expiry:     time.Hour,
		CookieName: "lab_session",
	})

	return NewAuthMiddleware(sessionService, client), sessionService, client
}

func openSession(t *testing.T, sessionService *jwt.SessionService, client *redis.Client, userID int, name, role string) string {
	t.Helper()

	token, tokenID, err := sessionService.GenerateSessionToken(userID, name, role)
	if err != nil {
		t.Fatal(err)
	}
	if err := client.Set(context.Background(), SessionKey(userID, tokenID), "valid", time.Hour).Err(); err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthenticateWithCookie(t *testing.T) {
	authMiddleware, sessionService, client := newAuthFixture(t)
	token := openSession(t, sessionService, client, 7, "Dr. House", entity.RoleDoctor)

	var gotUserID int
	var gotRole string
	handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: "lab_session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotUserID != 7 || gotRole != entity.RoleDoctor {
		t.Fatalf("expected user 7/doctor in context, got %d/%s", gotUserID, gotRole)
	}
}

func TestAuthenticateWithBearerHeader(t *testing.T) {
	authMiddleware, sessionService, client := newAuthFixture(t)
	token := openSession(t, sessionService, client, 3, "Mona", entity.RoleSecretary)

	handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	authMiddleware, _, _ := newAuthFixture(t)

	handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticateRevokedSession(t *testing.T) {
	authMiddleware, sessionService, _ := newAuthFixture(t)

	// Valid token but no session key in redis, i.e. logged out.
	token, _, err := sessionService.GenerateSessionToken(7, "Dr. House", entity.RoleDoctor)
	if err != nil {
		t.Fatal(err)
	}

	handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a revoked session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: "lab_session", Value: token})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "revoked") {
		t.Fatalf("expected revocation message, got %s", w.Body.String())
	}
}

func TestAuthenticateGarbageToken(t *testing.T) {
	authMiddleware, _, _ := newAuthFixture(t)

	handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a malformed token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.AddCookie(&http.Cookie{Name: "lab_session", Value: "garbage"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireDoctor(t *testing.T) {
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("doctor allowed", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RoleKey, entity.RoleDoctor)
		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("secretary forbidden", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), RoleKey, entity.RoleSecretary)
		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("missing role unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
