package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/auth"
	"github.com/shopkit/admin/pkg/logger"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The
// message never says which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService is the admin session gate: accounts live in the users
// collection, passwords are bcrypt hashes, and the issued JWT carries a
// verified role claim. There is exactly one authentication scheme.
type AuthService struct {
	store gateway.Store
}

func NewAuthService(store gateway.Store) *AuthService {
	return &AuthService{store: store}
}

// Login verifies the credentials and returns a signed token plus the
// account. Any role may log in; admin-only routes check the role claim.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", models.User{}, ValidationError{"email": "email and password are required"}
	}

	user, err := s.findByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		logger.Warn("failed login attempt", "email", email)
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.User{}, err
	}

	logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return token, user.Public(), nil
}

// Logout denylists the token until its natural expiry.
func (s *AuthService) Logout(token string) error {
	return auth.Revoke(token)
}

// IsAuthorized reports whether the token belongs to an admin account.
func (s *AuthService) IsAuthorized(token string) bool {
	return s.CurrentRole(token) == models.RoleAdmin
}

// CurrentRole returns the verified role claim, or "" for an invalid token.
func (s *AuthService) CurrentRole(token string) string {
	claims, err := auth.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.Role
}

func (s *AuthService) findByEmail(ctx context.Context, email string) (models.User, error) {
	var users []models.User
	if err := s.store.List(ctx, gateway.Users, &users); err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, gateway.ErrNotFound
}
