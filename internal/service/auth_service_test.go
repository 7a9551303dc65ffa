package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"banyan-data/internal/config"
	"banyan-data/internal/repository"
)

func newTestAuth(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(repository.NewMemoryUsersRepo(), config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   1,
		AdminKey:   "letmein",
		BcryptCost: 4,
	}, zap.NewNop())
}

func validRegister() RegisterRequest {
	return RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.org",
		Password: "secret123",
		Facility: "Chennai",
		Role:     "user",
	}
}

func TestRegisterLoginVerify(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	resp, err := auth.Login(ctx, LoginRequest{Email: "asha@example.org", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	verified, err := auth.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, "Chennai", verified.Facility)
}

func TestRegisterValidation(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*RegisterRequest)
		message string
	}{
		{"missing name", func(r *RegisterRequest) { r.Name = "" }, "Name is required"},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "Please enter a valid email"},
		{"short password", func(r *RegisterRequest) { r.Password = "abc" }, "Password must be at least 6 characters long"},
		{"missing facility", func(r *RegisterRequest) { r.Facility = "" }, "Facility is required"},
		{"missing role", func(r *RegisterRequest) { r.Role = "" }, "Invalid role"},
		{"bad role", func(r *RegisterRequest) { r.Role = "superuser" }, "Invalid role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)
			_, err := auth.Register(ctx, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Violations[0])
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = auth.Register(ctx, validRegister())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdmin(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	req := validRegister()
	req.Role = "admin"
	req.AdminKey = "wrong"
	_, err := auth.Register(ctx, req)
	assert.ErrorIs(t, err, ErrInvalidAdminKey)

	req.AdminKey = "letmein"
	user, err := auth.Register(ctx, req)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	_, err = auth.Login(ctx, LoginRequest{Email: "asha@example.org", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, LoginRequest{Email: "nobody@example.org", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.VerifyToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different secret.
	other := NewAuthService(repository.NewMemoryUsersRepo(), config.AuthConfig{
		JWTSecret:  "other-secret",
		TokenTTL:   1,
		BcryptCost: 4,
	}, zap.NewNop())
	_, err = other.Register(ctx, validRegister())
	require.NoError(t, err)
	resp, err := other.Login(ctx, LoginRequest{Email: "asha@example.org", Password: "secret123"})
	require.NoError(t, err)

	_, err = auth.VerifyToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
