package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"grub-pool/internal/model"
	"grub-pool/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// SessionHandler handles order-session HTTP requests, including the
// aggregation endpoints scoped to one session.
type SessionHandler struct {
	sessions service.SessionService
	stats    service.StatsService
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions service.SessionService, stats service.StatsService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		stats:    stats,
		logger:   logger.With().Str("handler", "session").Logger(),
	}
}

// List handles GET /api/order-sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessions.List(r.Context())
	if err != nil {
		respondError(w, err, "Failed to fetch order sessions", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

// Get handles GET /api/order-sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	sess, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to fetch order session", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// GetByLink handles GET /api/order-sessions/link/{link}.
func (h *SessionHandler) GetByLink(w http.ResponseWriter, r *http.Request) {
	link := mux.Vars(r)["link"]

	sess, err := h.sessions.GetByLink(r.Context(), link)
	if err != nil {
		respondError(w, err, "Failed to fetch order session", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Create handles POST /api/order-sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertOrderSession
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", h.logger)
		return
	}

	sess, err := h.sessions.Create(r.Context(), &insert)
	if err != nil {
		respondError(w, err, "Failed to create order session", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, sess)
}

// Finalize handles PUT /api/order-sessions/{id}/finalize.
func (h *SessionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	sess, err := h.sessions.Finalize(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to finalize order session", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

// Stats handles GET /api/order-sessions/{sessionId}/stats.
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	stats, err := h.stats.SessionStats(r.Context(), sessionID)
	if err != nil {
		respondError(w, err, "Failed to fetch session stats", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Summary handles GET /api/order-sessions/{sessionId}/summary.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	summary, err := h.stats.SessionSummary(r.Context(), sessionID)
	if err != nil {
		respondError(w, err, "Failed to fetch session summary", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// ShareQR handles GET /api/order-sessions/{id}/qr.
func (h *SessionHandler) ShareQR(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	png, err := h.sessions.ShareQR(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to render session QR code", h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
