package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/response"
)

type contextKey string

const IdentityKey contextKey = "identity"

const bearerPrefix = "Bearer "

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	devMode     bool
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, devMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		devMode:     devMode,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract token from "Bearer <token>"
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.FromError(w, apperror.ErrNoToken, m.devMode)
			return
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			response.FromError(w, apperror.ErrNoToken, m.devMode)
			return
		}

		identity, err := m.authUsecase.Authenticate(r.Context(), tokenString)
		if err != nil {
			// Missing accounts answer 401 here.
			if apperror.KindOf(err) == apperror.KindAccountNotFound {
				response.Error(w, http.StatusUnauthorized, apperror.ErrAccountNotFound.Message, apperror.KindAccountNotFound.String())
				return
			}
			response.FromError(w, err, m.devMode)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
	})
}

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity entity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

// GetIdentityFromContext extracts the authenticated caller from context
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(entity.Identity)
	return identity, ok
}
