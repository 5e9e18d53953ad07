package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// Index lists all products with category names resolved.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products := c.catalog.Products()
	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, map[string]any{
			"product":       p,
			"category_name": c.catalog.ResolveCategoryName(p.CategoryID),
		})
	}
	response.Success(w, out)
}

func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	p, ok := c.catalog.Product(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]any{
		"product":       p,
		"category_name": c.catalog.ResolveCategoryName(p.CategoryID),
	})
}

func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	product, err := c.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := decode(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := c.catalog.UpdateProduct(r.Context(), id, in); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]string{"id": id})
}

func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.NoContent(w)
}
