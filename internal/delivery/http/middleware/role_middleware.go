package middleware

import (
	"net/http"

	"github.com/medilab/lab-api/internal/domain/entity"
	"github.com/medilab/lab-api/pkg/response"
)

// RequireRole checks that the session role is one of the allowed roles.
// Role is read from context (set by AuthMiddleware from the session claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor guards doctor-only endpoints (reports, predictions).
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}
