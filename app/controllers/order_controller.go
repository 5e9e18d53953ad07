package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
	"github.com/shopkit/admin/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Index lists orders, optionally filtered to one status via ?status=,
// which backs the filter tabs of the orders view.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		orders []models.Order
		err    error
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		orders, err = c.orders.ListByStatus(r.Context(), models.OrderStatus(raw))
	} else {
		orders, err = c.orders.List(r.Context())
	}
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, orders)
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, order)
}

// UpdateStatus moves an order through the workflow. A rejected
// transition comes back as 409, an unknown status as 422.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := c.orders.SetStatus(r.Context(), id, models.OrderStatus(body.Status)); err != nil {
		respondError(w, r, err)
		return
	}

	order, err := c.orders.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, order)
}

func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	if err := c.orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	response.NoContent(w)
}
