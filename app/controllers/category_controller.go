package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

// Index lists categories with a live product count per category.
func (c *CategoryController) Index(w http.ResponseWriter, r *http.Request) {
	categories := c.catalog.Categories()
	out := make([]map[string]any, 0, len(categories))
	for _, cat := range categories {
		out = append(out, map[string]any{
			"category":      cat,
			"product_count": c.catalog.ProductCountByCategory(cat.ID),
		})
	}
	response.Success(w, out)
}

func (c *CategoryController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	category, err := c.catalog.CreateCategory(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, category)
}

func (c *CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.CategoryInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := c.catalog.UpdateCategory(r.Context(), id, in); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"id": id})
}

func (c *CategoryController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.NoContent(w)
}
