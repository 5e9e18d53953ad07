package seeders

import (
	"context"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/auth"
	"github.com/shopkit/admin/pkg/logger"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the initial admin account when no admin exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD; the seeder is
// skipped entirely when ADMIN_PASSWORD is unset.
func SeedAdmin(ctx context.Context, store gateway.Store) error {
	email := config.Get("ADMIN_EMAIL", "admin@example.com")
	password := config.Get("ADMIN_PASSWORD", "")
	if password == "" {
		return nil
	}

	var users []models.User
	if err := store.List(ctx, gateway.Users, &users); err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == models.RoleAdmin {
			return nil
		}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := models.User{
		ID:           gateway.NewID(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := store.Create(ctx, gateway.Users, admin.ID, admin); err != nil {
		return err
	}

	logger.Info("seeded admin account", "email", email)
	return nil
}
