package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopkit/admin/app/controllers"
	"github.com/shopkit/admin/app/gateway"
	"github.com/shopkit/admin/app/models"
	"github.com/shopkit/admin/app/services"
)

func orderRouter(t *testing.T) (chi.Router, gateway.Store) {
	t.Helper()
	store := gateway.NewMemory()
	ctrl := controllers.NewOrderController(services.NewOrderService(store))

	r := chi.NewRouter()
	r.Get("/orders", ctrl.Index)
	r.Get("/orders/{id}", ctrl.Show)
	r.Patch("/orders/{id}/status", ctrl.UpdateStatus)
	r.Delete("/orders/{id}", ctrl.Destroy)
	return r, store
}

func putOrder(t *testing.T, store gateway.Store, id string, status models.OrderStatus) {
	t.Helper()
	require.NoError(t, store.Create(context.Background(), gateway.Orders, id, models.Order{
		ID: id, CustomerName: "Ana", Total: 25, Status: status, CreatedAt: time.Now().UTC(),
	}))
}

func do(r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestOrderShowNotFound(t *testing.T) {
	r, _ := orderRouter(t)
	rec := do(r, http.MethodGet, "/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderIndexFiltersByStatus(t *testing.T) {
	r, store := orderRouter(t)
	putOrder(t, store, "o1", models.StatusPending)
	putOrder(t, store, "o2", models.StatusShipped)

	rec := do(r, http.MethodGet, "/orders?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "o1", body.Data[0].ID)

	// An unknown filter value is a validation error, not an empty list.
	rec = do(r, http.MethodGet, "/orders?status=bogus", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOrderUpdateStatus(t *testing.T) {
	r, store := orderRouter(t)
	putOrder(t, store, "o1", models.StatusPending)

	rec := do(r, http.MethodPatch, "/orders/o1/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.StatusShipped, body.Data.Status)
}

func TestOrderUpdateStatusConflictOnTerminal(t *testing.T) {
	r, store := orderRouter(t)
	putOrder(t, store, "o1", models.StatusDelivered)

	rec := do(r, http.MethodPatch, "/orders/o1/status", `{"status":"processing"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Re-requesting the current terminal status is rejected the same way.
	rec = do(r, http.MethodPatch, "/orders/o1/status", `{"status":"delivered"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOrderUpdateStatusBadBody(t *testing.T) {
	r, store := orderRouter(t)
	putOrder(t, store, "o1", models.StatusPending)

	rec := do(r, http.MethodPatch, "/orders/o1/status", `{"status":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPatch, "/orders/o1/status", `{"status":"teleported"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestOrderDestroy(t *testing.T) {
	r, store := orderRouter(t)
	putOrder(t, store, "o1", models.StatusCancelled)

	rec := do(r, http.MethodDelete, "/orders/o1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodDelete, "/orders/o1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
