package middleware

import (
	"net/http"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/response"
)

// RequireRole creates a middleware that checks if the caller has any of the allowed roles.
// The identity is read from context (set by AuthMiddleware).
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if identity.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.FromError(w, apperror.ErrForbidden, false)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
