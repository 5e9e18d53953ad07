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

func newCatalog(t *testing.T) (*services.CatalogService, gateway.Store) {
	t.Helper()
	store := gateway.NewMemory()
	svc, err := services.NewCatalogService(context.Background(), store)
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc, store
}

func TestCreateProductDefaults(t *testing.T) {
	svc, _ := newCatalog(t)

	product, err := svc.CreateProduct(context.Background(), services.ProductInput{
		Name:   "Desk Lamp",
		Price:  19.99,
		Images: []string{"https://cdn.example.com/lamp.jpg"},
	})
	require.NoError(t, err)

	assert.Len(t, product.ID, 32)
	assert.Equal(t, models.ProductActive, product.Status)
	assert.Equal(t, "https://cdn.example.com/lamp.jpg", product.Image)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.CreateProduct(context.Background(), services.ProductInput{Name: "", Price: 10})
	var verr services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "name")

	_, err = svc.CreateProduct(context.Background(), services.ProductInput{Name: "Lamp", Price: 0})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "price")
}

func TestMirrorTracksGatewayChanges(t *testing.T) {
	svc, store := newCatalog(t)
	ctx := context.Background()

	// The change notification is pushed synchronously, so the mirror is
	// current as soon as the write returns.
	require.NoError(t, store.Create(ctx, gateway.Products, "p1",
		models.Product{ID: "p1", Name: "Lamp", Price: 10}))

	p, ok := svc.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Lamp", p.Name)

	require.NoError(t, store.Delete(ctx, gateway.Products, "p1"))
	_, ok = svc.Product("p1")
	assert.False(t, ok)
}

func TestProductsSortedByName(t *testing.T) {
	svc, store := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, gateway.Products, "p1", models.Product{ID: "p1", Name: "Zebra Mug"}))
	require.NoError(t, store.Create(ctx, gateway.Products, "p2", models.Product{ID: "p2", Name: "Apple Stand"}))

	products := svc.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Apple Stand", products[0].Name)
	assert.Equal(t, "Zebra Mug", products[1].Name)
}

func TestProductCountByCategoryIsLive(t *testing.T) {
	svc, store := newCatalog(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, gateway.Products, "p1", models.Product{ID: "p1", Name: "A", CategoryID: "cat1"}))
	require.NoError(t, store.Create(ctx, gateway.Products, "p2", models.Product{ID: "p2", Name: "B", CategoryID: "cat1"}))
	require.NoError(t, store.Create(ctx, gateway.Products, "p3", models.Product{ID: "p3", Name: "C", CategoryID: "cat2"}))

	assert.Equal(t, 2, svc.ProductCountByCategory("cat1"))
	assert.Equal(t, 1, svc.ProductCountByCategory("cat2"))
	assert.Equal(t, 0, svc.ProductCountByCategory("empty"))

	require.NoError(t, store.Delete(ctx, gateway.Products, "p1"))
	assert.Equal(t, 1, svc.ProductCountByCategory("cat1"))
}

func TestResolveCategoryNameFallsBackToID(t *testing.T) {
	svc, _ := newCatalog(t)

	category, err := svc.CreateCategory(context.Background(), services.CategoryInput{Name: "Electronics"})
	require.NoError(t, err)

	assert.Equal(t, "Electronics", svc.ResolveCategoryName(category.ID))
	assert.Equal(t, "ghost-id", svc.ResolveCategoryName("ghost-id"))
}

func TestDeleteCategoryKeepsProducts(t *testing.T) {
	svc, store := newCatalog(t)
	ctx := context.Background()

	category, err := svc.CreateCategory(ctx, services.CategoryInput{Name: "Lighting"})
	require.NoError(t, err)
	product, err := svc.CreateProduct(ctx, services.ProductInput{
		Name: "Desk Lamp", Price: 19.99, CategoryID: category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	// The product survives with a dangling reference that resolves to
	// the raw id.
	var got models.Product
	require.NoError(t, store.Get(ctx, gateway.Products, product.ID, &got))
	assert.Equal(t, category.ID, got.CategoryID)
	assert.Equal(t, category.ID, svc.ResolveCategoryName(category.ID))
}

func TestCreateCategorySlugAndStatusDefaults(t *testing.T) {
	svc, _ := newCatalog(t)

	category, err := svc.CreateCategory(context.Background(), services.CategoryInput{Name: "New Arrivals"})
	require.NoError(t, err)
	assert.Equal(t, "new-arrivals", category.Slug)
	assert.Equal(t, "active", category.Status)

	explicit, err := svc.CreateCategory(context.Background(), services.CategoryInput{
		Name: "Sale Items", Slug: "sale", Status: "inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "sale", explicit.Slug)
	assert.Equal(t, "inactive", explicit.Status)
}

func TestUpdateProduct(t *testing.T) {
	svc, store := newCatalog(t)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, services.ProductInput{Name: "Desk Lamp", Price: 19.99})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProduct(ctx, product.ID, services.ProductInput{
		Name: "Desk Lamp XL", Price: 29.99, Stock: 5,
	}))

	var got models.Product
	require.NoError(t, store.Get(ctx, gateway.Products, product.ID, &got))
	assert.Equal(t, "Desk Lamp XL", got.Name)
	assert.Equal(t, 29.99, got.Price)
	assert.Equal(t, 5, got.Stock)

	assert.ErrorIs(t, svc.UpdateProduct(ctx, "missing", services.ProductInput{Name: "X2", Price: 1}),
		gateway.ErrNotFound)
}
