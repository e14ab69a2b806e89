package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/medilab/lab-api/pkg/jwt"
	"github.com/medilab/lab-api/pkg/response"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserNameKey contextKey = "user_name"
	RoleKey     contextKey = "role"
	TokenIDKey  contextKey = "token_id"
)

// SessionKey builds the redis key a live session is stored under.
func SessionKey(userID int, tokenID string) string {
	return fmt.Sprintf("session:%d:%s", userID, tokenID)
}

type AuthMiddleware struct {
	sessionService *jwt.SessionService
	redisClient    *redis.Client
}

func NewAuthMiddleware(sessionService *jwt.SessionService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		sessionService: sessionService,
		redisClient:    redisClient,
	}
}

// Authenticate validates the signed session token. The token normally
// travels in the session cookie; a Bearer header is accepted as well
// for non-browser clients.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := m.extractToken(r)
		if tokenString == "" {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		claims, err := m.sessionService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired session")
			return
		}

		// A logged-out session no longer exists in redis.
		exists, err := m.redisClient.Exists(r.Context(), SessionKey(claims.UserID, claims.TokenID)).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Session has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserNameKey, claims.Name)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(m.sessionService.CookieName()); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// GetUserIDFromContext extracts the logged-in user's ID from context.
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetUserNameFromContext extracts the logged-in user's name from context.
func GetUserNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(UserNameKey).(string)
	return name, ok
}

// GetRoleFromContext extracts the session role from context.
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetTokenIDFromContext extracts the session token ID from context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
