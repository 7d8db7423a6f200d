package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"grub-pool/internal/model"
	"grub-pool/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	orders service.OrderService
	stats  service.StatsService
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService, stats service.StatsService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		stats:  stats,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// ListBySession handles GET /api/order-sessions/{sessionId}/orders.
func (h *OrderHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathID(r, "sessionId")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order session id", h.logger)
		return
	}

	orders, err := h.orders.ListBySession(r.Context(), sessionID)
	if err != nil {
		respondError(w, err, "Failed to fetch orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var insert model.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&insert); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", h.logger)
		return
	}

	order, err := h.orders.Create(r.Context(), &insert)
	if err != nil {
		respondError(w, err, "Failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Delete handles DELETE /api/orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id", h.logger)
		return
	}

	if err := h.orders.Delete(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete order", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdatePayment handles PATCH /api/orders/{id}/payment.
func (h *OrderHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid order id", h.logger)
		return
	}

	var payload model.UpdatePayment
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload", h.logger)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(w, err, "Failed to update payment status", h.logger)
		return
	}

	order, err := h.orders.SetPayment(r.Context(), id, *payload.IsPaid)
	if err != nil {
		respondError(w, err, "Failed to update payment status", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// DateRange handles GET /api/orders/date-range?startDate=&endDate=. Dates are
// ISO strings; a date-only endDate is widened to the end of that day so the
// range is inclusive on both ends.
func (h *OrderHandler) DateRange(w http.ResponseWriter, r *http.Request) {
	startParam := r.URL.Query().Get("startDate")
	endParam := r.URL.Query().Get("endDate")

	var fields []model.FieldError
	start, err := parseRangeDate(startParam, false)
	if err != nil {
		fields = append(fields, model.FieldError{Field: "startDate", Message: "startDate must be an ISO date"})
	}
	end, err := parseRangeDate(endParam, true)
	if err != nil {
		fields = append(fields, model.FieldError{Field: "endDate", Message: "endDate must be an ISO date"})
	}
	if len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Message: "Invalid request data",
			Errors:  fields,
		})
		return
	}

	report, err := h.stats.OrdersByDateRange(r.Context(), start, end)
	if err != nil {
		respondError(w, err, "Failed to fetch orders by date range", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// parseRangeDate accepts RFC 3339 timestamps or bare dates. Bare end dates
// cover their whole day.
func parseRangeDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
