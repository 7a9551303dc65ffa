package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"banyan-data/internal/domain"
	"banyan-data/internal/service"
)

type AuthHandler struct {
	auth   service.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	if _, err := h.auth.Register(r.Context(), req); err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, Fail(verr.Violations[0]))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, Fail("Email already registered"))
		case errors.Is(err, service.ErrInvalidAdminKey):
			writeJSON(w, http.StatusBadRequest, Fail("Invalid admin key"))
		default:
			h.logger.Error("Registration failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("Server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, OkStatus("Registration successful"))
}

// loginResult flattens the token next to the success flag, matching what the
// portal login page reads.
type loginResult struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("Invalid request body"))
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, Fail(verr.Violations[0]))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, Fail("Invalid credentials"))
		default:
			h.logger.Error("Login failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, Fail("Server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, loginResult{Success: true, Token: resp.Token, User: resp.User})
}

// Verify confirms the bearer token and echoes the resolved user. The
// middleware already did the verification.
func (h *AuthHandler) Verify(w http.ResponseWriter, _ *http.Request, user *domain.User) {
	writeJSON(w, http.StatusOK, Ok(map[string]any{"user": user}))
}
