package handler

import (
	"encoding/json"
	"net/http"

	"grub-pool/internal/model"
	"grub-pool/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu item HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// List handles GET /api/menu-items.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch menu items", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /api/menu-items/{id}.
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid menu item id", h.logger)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to fetch menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /api/menu-items.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertMenuItem
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", h.logger)
		return
	}

	item, err := h.service.Create(r.Context(), &insert)
	if err != nil {
		respondError(w, err, "Failed to create menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/menu-items/{id}.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid menu item id", h.logger)
		return
	}

	var update model.UpdateMenuItem
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", h.logger)
		return
	}

	item, err := h.service.Update(r.Context(), id, &update)
	if err != nil {
		respondError(w, err, "Failed to update menu item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items/{id}.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid menu item id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete menu item", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
