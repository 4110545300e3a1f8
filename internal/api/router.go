package api

import (
	"net/http"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/api/handlers"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.QuoteService) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{Service: svc}
	tenantHandler := &handlers.TenantHandler{Service: svc}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/quotes", quoteHandler.Quote)
	mux.HandleFunc("/distances", quoteHandler.Distance)
	mux.HandleFunc("/tenants/{id}/cache", tenantHandler.InvalidateCache)

	return requestIDMiddleware(loggingMiddleware(mux))
}
