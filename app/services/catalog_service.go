package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/jobs"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/logger"
	"github.com/shopkit/admin/pkg/queue"
	"github.com/shopkit/admin/pkg/validate"
)

// ProductInput is the typed parameter record for product create/update.
type ProductInput struct {
	Name          string   `json:"name" validate:"required,min=2,max=255"`
	CategoryID    string   `json:"category_id"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	OriginalPrice float64  `json:"original_price"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Status        string   `json:"status" validate:"nullable,in=active,inactive,out_of_stock"`
	Image         string   `json:"image" validate:"nullable,url"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
}

// CategoryInput is the typed parameter record for category create/update.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"nullable,alpha_dash"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Image       string `json:"image" validate:"nullable,url"`
	Status      string `json:"status" validate:"nullable,in=active,inactive"`
}

// CatalogService keeps in-memory mirrors of the product and category
// collections, refreshed on every gateway change notification, and owns
// product/category CRUD.
type CatalogService struct {
	store gateway.Store

	mu         sync.RWMutex
	products   map[string]models.Product
	categories map[string]models.Category

	unsubscribe []func()
}

func NewCatalogService(ctx context.Context, store gateway.Store) (*CatalogService, error) {
	s := &CatalogService{
		store:      store,
		products:   map[string]models.Product{},
		categories: map[string]models.Category{},
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.unsubscribe = append(s.unsubscribe,
		store.Subscribe(gateway.Products, s.onChange),
		store.Subscribe(gateway.Categories, s.onChange),
	)
	return s, nil
}

// Close detaches the mirrors from gateway change notifications.
func (s *CatalogService) Close() {
	for _, u := range s.unsubscribe {
		u()
	}
	s.unsubscribe = nil
}

func (s *CatalogService) onChange(collection string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch collection {
	case gateway.Products:
		err = s.refreshProducts(ctx)
	case gateway.Categories:
		err = s.refreshCategories(ctx)
	}
	if err != nil {
		logger.Error("catalog mirror refresh failed", "collection", collection, "error", err)
	}
}

// Refresh re-fetches both mirrors from the gateway.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if err := s.refreshProducts(ctx); err != nil {
		return err
	}
	return s.refreshCategories(ctx)
}

func (s *CatalogService) refreshProducts(ctx context.Context) error {
	var products []models.Product
	if err := s.store.List(ctx, gateway.Products, &products); err != nil {
		return err
	}

	next := make(map[string]models.Product, len(products))
	for _, p := range products {
		next[p.ID] = p
	}

	s.mu.Lock()
	s.products = next
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) refreshCategories(ctx context.Context) error {
	var categories []models.Category
	if err := s.store.List(ctx, gateway.Categories, &categories); err != nil {
		return err
	}

	next := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		next[c.ID] = c
	}

	s.mu.Lock()
	s.categories = next
	s.mu.Unlock()
	return nil
}

// ── Lookups ──────────────────────────────────────────────────────────────────

// ResolveCategoryName returns the display name for a category id, falling
// back to the raw id when the category is unknown. Products may reference
// deleted categories, so this never fails.
func (s *CatalogService) ResolveCategoryName(categoryID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.categories[categoryID]; ok {
		return c.Name
	}
	return categoryID
}

// Products returns the mirrored product set, name ascending.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Categories returns the mirrored category set, name ascending.
func (s *CatalogService) Categories() []models.Category {
	s.mu.RLock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Product looks a single product up in the mirror.
func (s *CatalogService) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// ProductCountByCategory counts the mirrored products in a category live,
// instead of maintaining a stored counter that can drift.
func (s *CatalogService) ProductCountByCategory(categoryID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// ── Product CRUD ─────────────────────────────────────────────────────────────

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return models.Product{}, ValidationError(errs)
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:            gateway.NewID(),
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Stock:         in.Stock,
		Status:        models.ProductStatus(in.Status),
		Image:         in.Image,
		Images:        in.Images,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Status == "" {
		product.Status = models.ProductActive
	}
	if product.Image == "" && len(product.Images) > 0 {
		product.Image = product.Images[0]
	}

	if err := s.store.Create(ctx, gateway.Products, product.ID, product); err != nil {
		return models.Product{}, err
	}

	s.logActivity("product", fmt.Sprintf("Product %q added", product.Name), "")
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ProductInput) error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return ValidationError(errs)
	}

	status := in.Status
	if status == "" {
		status = string(models.ProductActive)
	}

	err := s.store.Update(ctx, gateway.Products, id, map[string]interface{}{
		"name":           in.Name,
		"category_id":    in.CategoryID,
		"price":          in.Price,
		"original_price": in.OriginalPrice,
		"stock":          in.Stock,
		"status":         status,
		"image":          in.Image,
		"images":         in.Images,
		"description":    in.Description,
		"updated_at":     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.logActivity("product", fmt.Sprintf("Product %q updated", in.Name), "")
	return nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, gateway.Products, id); err != nil {
		return err
	}
	s.logActivity("product", fmt.Sprintf("Product %.8s deleted", id), "")
	return nil
}

// ── Category CRUD ────────────────────────────────────────────────────────────

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (models.Category, error) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return models.Category{}, ValidationError(errs)
	}

	now := time.Now().UTC()
	category := models.Category{
		ID:          gateway.NewID(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Icon:        in.Icon,
		Image:       in.Image,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if category.Slug == "" {
		category.Slug = slugify(in.Name)
	}
	if category.Status == "" {
		category.Status = "active"
	}

	if err := s.store.Create(ctx, gateway.Categories, category.ID, category); err != nil {
		return models.Category{}, err
	}

	s.logActivity("category", fmt.Sprintf("Category %q added", category.Name), "")
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, in CategoryInput) error {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return ValidationError(errs)
	}

	status := in.Status
	if status == "" {
		status = "active"
	}

	err := s.store.Update(ctx, gateway.Categories, id, map[string]interface{}{
		"name":        in.Name,
		"slug":        in.Slug,
		"description": in.Description,
		"icon":        in.Icon,
		"image":       in.Image,
		"status":      status,
		"updated_at":  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.logActivity("category", fmt.Sprintf("Category %q updated", in.Name), "")
	return nil
}

// DeleteCategory removes a category only. Its products keep their category
// reference; ResolveCategoryName falls back to the raw id for them.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, gateway.Categories, id); err != nil {
		return err
	}
	s.logActivity("category", fmt.Sprintf("Category %.8s deleted", id), "")
	return nil
}

func (s *CatalogService) logActivity(kind, title, detail string) {
	if err := queue.Dispatch(jobs.RecordActivity{Kind: kind, Title: title, Detail: detail}); err != nil {
		logger.Error("failed to queue activity entry", "error", err)
	}
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return -1
		}
	}, slug)
}
