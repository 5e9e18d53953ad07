package seeders

import (
	"context"
	"time"

	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/pkg/logger"
)

func init() {
	Register("categories", SeedCategories)
}

// defaultCategories is the starter navigation set for a fresh store.
var defaultCategories = []struct {
	name, slug, icon string
}{
	{"Electronics", "electronics", "cpu"},
	{"Fashion", "fashion", "shirt"},
	{"Home & Living", "home-living", "home"},
	{"Beauty", "beauty", "sparkles"},
	{"Sports", "sports", "dumbbell"},
	{"Books", "books", "book"},
}

// SeedCategories inserts the default category set when the collection is
// empty, so a fresh install starts with a usable navigation tree.
func SeedCategories(ctx context.Context, store gateway.Store) error {
	var existing []models.Category
	if err := store.List(ctx, gateway.Categories, &existing); err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, c := range defaultCategories {
		cat := models.Category{
			ID:        gateway.NewID(),
			Name:      c.name,
			Slug:      c.slug,
			Icon:      c.icon,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.Create(ctx, gateway.Categories, cat.ID, cat); err != nil {
			return err
		}
	}

	logger.Info("seeded default categories", "count", len(defaultCategories))
	return nil
}
