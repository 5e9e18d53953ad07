package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
)

func seedAccount(t *testing.T, store gateway.Store, email, password, role string) models.User {
	t.Helper()
	user, err := services.NewUserService(store).Create(context.Background(), services.UserInput{
		Name:     "Test Account",
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestLogin(t *testing.T) {
	store := gateway.NewMemory()
	seeded := seedAccount(t, store, "admin@example.com", "s3cret", models.RoleAdmin)
	svc := services.NewAuthService(store)

	token, user, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, seeded.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	assert.Equal(t, models.RoleAdmin, svc.CurrentRole(token))
	assert.True(t, svc.IsAuthorized(token))
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	store := gateway.NewMemory()
	seedAccount(t, store, "admin@example.com", "s3cret", models.RoleAdmin)
	svc := services.NewAuthService(store)

	_, _, err := svc.Login(context.Background(), "  Admin@Example.COM ", "s3cret")
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := gateway.NewMemory()
	seedAccount(t, store, "admin@example.com", "s3cret", models.RoleAdmin)
	svc := services.NewAuthService(store)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	var verr services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCustomerIsNotAuthorized(t *testing.T) {
	store := gateway.NewMemory()
	seedAccount(t, store, "shopper@example.com", "s3cret", models.RoleCustomer)
	svc := services.NewAuthService(store)

	token, _, err := svc.Login(context.Background(), "shopper@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, svc.CurrentRole(token))
	assert.False(t, svc.IsAuthorized(token))
}

func TestCurrentRoleInvalidToken(t *testing.T) {
	svc := services.NewAuthService(gateway.NewMemory())
	assert.Empty(t, svc.CurrentRole("garbage"))
	assert.False(t, svc.IsAuthorized("garbage"))
}
