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

func TestCreateUserDefaultsToCustomer(t *testing.T) {
	svc := services.NewUserService(gateway.NewMemory())

	user, err := svc.Create(context.Background(), services.UserInput{
		Name:     "Ana",
		Email:    "Ana@Example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestCreateUserRequiresPassword(t *testing.T) {
	svc := services.NewUserService(gateway.NewMemory())

	_, err := svc.Create(context.Background(), services.UserInput{Name: "Ana", Email: "a@b.co"})
	var verr services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "password")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := services.NewUserService(gateway.NewMemory())
	ctx := context.Background()

	_, err := svc.Create(ctx, services.UserInput{Name: "Ana", Email: "ana@example.com", Password: "x1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, services.UserInput{Name: "Ana 2", Email: "ANA@example.com", Password: "x2"})
	var verr services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "email")
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	store := gateway.NewMemory()
	usvc := services.NewUserService(store)
	asvc := services.NewAuthService(store)
	ctx := context.Background()

	created, err := usvc.Create(ctx, services.UserInput{
		Name: "Ana", Email: "ana@example.com", Password: "s3cret", Role: models.RoleAdmin,
	})
	require.NoError(t, err)

	updated, err := usvc.Update(ctx, created.ID, services.UserInput{
		Name: "Ana Maria", Email: "ana@example.com", Phone: "555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, models.RoleAdmin, updated.Role)

	// The old password still works.
	_, _, err = asvc.Login(ctx, "ana@example.com", "s3cret")
	assert.NoError(t, err)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	store := gateway.NewMemory()
	usvc := services.NewUserService(store)
	asvc := services.NewAuthService(store)
	ctx := context.Background()

	created, err := usvc.Create(ctx, services.UserInput{
		Name: "Ana", Email: "ana@example.com", Password: "old-pass",
	})
	require.NoError(t, err)

	_, err = usvc.Update(ctx, created.ID, services.UserInput{
		Name: "Ana", Email: "ana@example.com", Password: "new-pass",
	})
	require.NoError(t, err)

	_, _, err = asvc.Login(ctx, "ana@example.com", "old-pass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, _, err = asvc.Login(ctx, "ana@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestListUsersNewestFirst(t *testing.T) {
	svc := services.NewUserService(gateway.NewMemory())
	ctx := context.Background()

	first, err := svc.Create(ctx, services.UserInput{Name: "First", Email: "one@example.com", Password: "x1"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, services.UserInput{Name: "Second", Email: "two@example.com", Password: "x2"})
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	if users[0].CreatedAt.Equal(users[1].CreatedAt) {
		// Same-instant creation falls back to id order.
		assert.Less(t, users[0].ID, users[1].ID)
	} else {
		assert.Equal(t, second.ID, users[0].ID)
		assert.Equal(t, first.ID, users[1].ID)
	}
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}

func TestDeleteUser(t *testing.T) {
	svc := services.NewUserService(gateway.NewMemory())
	ctx := context.Background()

	user, err := svc.Create(ctx, services.UserInput{Name: "Ana", Email: "ana@example.com", Password: "x1"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))
	_, err = svc.Get(ctx, user.ID)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, user.ID), gateway.ErrNotFound)
}
