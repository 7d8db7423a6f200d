package router

import (
	"net/http"

	"grub-pool/internal/handler"
	"grub-pool/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	menuHandler *handler.MenuHandler,
	sessionHandler *handler.SessionHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Menu items
	api.HandleFunc("/menu-items", menuHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/menu-items", menuHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/menu-items/{id}", menuHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/menu-items/{id}", menuHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/menu-items/{id}", menuHandler.Delete).Methods(http.MethodDelete)

	// Order sessions. The literal "link" segment must be registered before
	// the {id} routes would otherwise shadow it.
	api.HandleFunc("/order-sessions", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/order-sessions/link/{link}", sessionHandler.GetByLink).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions/{id}", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions/{id}/finalize", sessionHandler.Finalize).Methods(http.MethodPut)
	api.HandleFunc("/order-sessions/{id}/qr", sessionHandler.ShareQR).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions/{sessionId}/orders", orderHandler.ListBySession).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions/{sessionId}/stats", sessionHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/order-sessions/{sessionId}/summary", sessionHandler.Summary).Methods(http.MethodGet)

	// Orders
	api.HandleFunc("/orders/date-range", orderHandler.DateRange).Methods(http.MethodGet)
	api.HandleFunc("/orders", orderHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", orderHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/orders/{id}/payment", orderHandler.UpdatePayment).Methods(http.MethodPatch)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = r
	h = cors.AllowAll().Handler(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
