package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/storage"
)

type OrderHandler struct {
	Store *storage.OrderStore
}

// List handles GET /api/orders with an optional ?status= filter. Orders
// come back newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := storage.OrderFilter{
		Status: r.URL.Query().Get("status"),
	}
	writeJSON(w, http.StatusOK, h.Store.List(filter))
}

// Get handles GET /api/orders/{id}. The confirmation page polls this to
// follow the order's status.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.Store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Create handles POST /api/orders (checkout). Pricing is always computed
// here on the server; the payload carries no totals.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.Store.Create(payload)
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// UpdateStatus handles PATCH /api/orders/{id}. The requested status must
// be a known status and reachable from the order's current one.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload models.UpdateOrderStatusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !payload.Status.IsValid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("status must be one of: %s", models.OrderStatusList()))
		return
	}

	order, err := h.Store.SetStatus(mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeStoreError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}
