package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bellacucina/api/models"
	"github.com/bellacucina/api/storage"
)

type MenuHandler struct {
	Store *storage.MenuStore
}

// List handles GET /api/menu with optional ?category= and ?available=
// filters.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := storage.MenuFilter{
		Category: r.URL.Query().Get("category"),
	}

	if v := r.URL.Query().Get("available"); v != "" {
		available, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	writeJSON(w, http.StatusOK, h.Store.List(filter))
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.Get(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateMenuItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.Create(payload)
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload models.UpdateMenuItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.Update(mux.Vars(r)["id"], payload)
	if err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err, "Menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
