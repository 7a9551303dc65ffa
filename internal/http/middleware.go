package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/service"
)

// AuthedHandler is a handler that runs with the verified request user.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, user *domain.User)

// AuthMiddleware resolves the Authorization bearer token to a user before
// the wrapped handler runs.
type AuthMiddleware struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthMiddleware(auth service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, logger: logger}
}

func (m *AuthMiddleware) Wrap(next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			writeJSON(w, http.StatusUnauthorized, Fail("Not authorized to access this route"))
			return
		}
		user, err := m.auth.VerifyToken(r.Context(), strings.TrimPrefix(header, prefix))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, Fail("Not authorized to access this route"))
			return
		}
		next(w, r, user)
	}
}
