package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"banyan-data/internal/config"
	"banyan-data/internal/domain"
	"banyan-data/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest is the payload for account creation. AdminKey is only
// consulted when Role is admin.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Facility string `json:"facility"`
	Role     string `json:"role"`
	AdminKey string `json:"adminKey"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries a signed bearer token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// AuthService handles registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

type authService struct {
	users      repository.UsersRepo
	jwtSecret  []byte
	tokenTTL   time.Duration
	adminKey   string
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthService(users repository.UsersRepo, cfg config.AuthConfig, logger *zap.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	ttlHours := cfg.TokenTTL
	if ttlHours == 0 {
		ttlHours = 24
	}
	return &authService{
		users:      users,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   time.Duration(ttlHours) * time.Hour,
		adminKey:   cfg.AdminKey,
		bcryptCost: cost,
		logger:     logger,
	}
}

var _ AuthService = (*authService)(nil)

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	rules := []domain.Rule{
		{Field: "name", Message: "Name is required", OK: func() bool { return req.Name != "" }},
		{Field: "email", Message: "Please enter a valid email", OK: func() bool { return emailPattern.MatchString(req.Email) }},
		{Field: "password", Message: "Password must be at least 6 characters long", OK: func() bool { return len(req.Password) >= 6 }},
		{Field: "facility", Message: "Facility is required", OK: func() bool { return req.Facility != "" }},
		{Field: "role", Message: "Invalid role", OK: func() bool { return domain.ValidRole(req.Role) }},
	}
	if v := domain.Violations(rules); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	if req.Role == domain.RoleAdmin && req.AdminKey != s.adminKey {
		return nil, ErrInvalidAdminKey
	}

	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Facility:     req.Facility,
		Role:         req.Role,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("facility", user.Facility),
		zap.String("role", user.Role))
	return user, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	rules := []domain.Rule{
		{Field: "email", Message: "Please enter a valid email", OK: func() bool { return emailPattern.MatchString(req.Email) }},
		{Field: "password", Message: "Password is required", OK: func() bool { return req.Password != "" }},
	}
	if v := domain.Violations(rules); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return &LoginResponse{Token: token, User: user}, nil
}

func (s *authService) signToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func (s *authService) VerifyToken(ctx context.Context, tokenStr string) (*domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetUserByID(ctx, sub)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load token user: %w", err)
	}
	return user, nil
}
