package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/auth"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/queue"
)

// UserInput carries the mutable fields of an account.
type UserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type UserService struct {
	store gateway.Store
}

func NewUserService(store gateway.Store) *UserService {
	return &UserService{store: store}
}

// List returns every account sorted by creation time, newest first.
// Password hashes are stripped before the slice leaves the service.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.store.List(ctx, gateway.Users, &users); err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	for i := range users {
		users[i] = users[i].Public()
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := s.store.Get(ctx, gateway.Users, id, &user); err != nil {
		return models.User{}, err
	}
	return user.Public(), nil
}

// Create registers an account. Email must be unique; role defaults to
// customer unless explicitly set.
func (s *UserService) Create(ctx context.Context, in UserInput) (models.User, error) {
	if in.Password == "" {
		return models.User{}, ValidationError{"password": "password is required"}
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := s.byEmail(ctx, email); err == nil {
		return models.User{}, ValidationError{"email": "email already registered"}
	} else if !errors.Is(err, gateway.ErrNotFound) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleCustomer
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           gateway.NewID(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        in.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, gateway.Users, user.ID, user); err != nil {
		return models.User{}, err
	}

	logger.Info("user created", "user_id", user.ID, "role", user.Role)
	queue.Dispatch(jobs.RecordActivity{Kind: "user", Title: "User registered", Detail: user.Email})
	return user.Public(), nil
}

// Update changes profile fields. A non-empty Password re-hashes; an
// empty one leaves the stored hash alone.
func (s *UserService) Update(ctx context.Context, id string, in UserInput) (models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	fields := map[string]any{
		"name":       in.Name,
		"email":      strings.ToLower(strings.TrimSpace(in.Email)),
		"phone":      in.Phone,
		"updated_at": time.Now().UTC(),
	}
	if in.Role != "" {
		fields["role"] = in.Role
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, err
		}
		fields["password_hash"] = hash
	}

	if err := s.store.Update(ctx, gateway.Users, id, fields); err != nil {
		return models.User{}, err
	}
	return s.Get(ctx, user.ID)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, gateway.Users, id); err != nil {
		return err
	}
	logger.Info("user deleted", "user_id", id)
	queue.Dispatch(jobs.RecordActivity{Kind: "user", Title: "User removed", Detail: user.Email})
	return nil
}

func (s *UserService) byEmail(ctx context.Context, email string) (models.User, error) {
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
