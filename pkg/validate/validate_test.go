package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/pkg/validate"
)

type productForm struct {
	Name   string  `json:"name" validate:"required,min=2,max=255"`
	Email  string  `json:"email" validate:"required,email"`
	Price  float64 `json:"price" validate:"required,gt=0"`
	Stock  int     `json:"stock" validate:"gte=0"`
	Status string  `json:"status" validate:"nullable,in=active,inactive,out_of_stock"`
	Slug   string  `json:"slug" validate:"nullable,alpha_dash"`
	Image  string  `json:"image" validate:"nullable,url"`
}

func TestStructValid(t *testing.T) {
	errs := validate.Struct(productForm{
		Name:   "Desk Lamp",
		Email:  "admin@example.com",
		Price:  19.99,
		Stock:  3,
		Status: "active",
		Slug:   "desk-lamp",
		Image:  "https://cdn.example.com/lamp.jpg",
	})
	assert.Empty(t, errs)
	assert.False(t, validate.HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := validate.Struct(productForm{Price: 1, Email: "a@b.co"})
	require.True(t, validate.HasErrors(errs))
	assert.Equal(t, "The name field is required.", errs["name"])
}

func TestStructFirstFailingRuleWins(t *testing.T) {
	// "x" passes required but fails min=2; only one message per field.
	errs := validate.Struct(productForm{Name: "x", Email: "a@b.co", Price: 1})
	assert.Equal(t, "The name must be at least 2 characters.", errs["name"])
}

func TestStructEmail(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "not-an-email", Price: 1})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestStructNumericBounds(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 0})
	assert.Contains(t, errs, "price") // required fails on zero value

	errs = validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: -1})
	assert.Equal(t, "The price must be greater than 0.", errs["price"])

	errs = validate.Struct(struct {
		Stock int `json:"stock" validate:"required,gte=0"`
	}{Stock: -2})
	assert.Equal(t, "The stock must be greater than or equal to 0.", errs["stock"])
}

func TestStructNullableSkipsWhenEmpty(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1})
	assert.NotContains(t, errs, "status")
	assert.NotContains(t, errs, "slug")
	assert.NotContains(t, errs, "image")
}

func TestStructInMultiValue(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1, Status: "out_of_stock"})
	assert.NotContains(t, errs, "status")

	errs = validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1, Status: "archived"})
	assert.Equal(t, "The selected status is invalid.", errs["status"])
}

func TestStructAlphaDash(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1, Slug: "has space"})
	assert.Contains(t, errs, "slug")

	errs = validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1, Slug: "a-b_c9"})
	assert.NotContains(t, errs, "slug")
}

func TestStructURL(t *testing.T) {
	errs := validate.Struct(productForm{Name: "ok", Email: "a@b.co", Price: 1, Image: "ftp://x/y"})
	assert.Equal(t, "The image must be a valid URL.", errs["image"])
}

func TestStructMaxLength(t *testing.T) {
	long := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'a')
	}
	errs := validate.Struct(productForm{Name: string(long), Email: "a@b.co", Price: 1})
	assert.Equal(t, "The name must not exceed 255 characters.", errs["name"])
}

func TestStructPointerAndNonStruct(t *testing.T) {
	errs := validate.Struct(&productForm{Name: "ok", Email: "a@b.co", Price: 1})
	assert.Empty(t, errs)

	assert.Empty(t, validate.Struct("not a struct"))
}
