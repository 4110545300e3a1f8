package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/api/dto"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/services"
)

// TenantHandler exposes tenant-level cache administration.
type TenantHandler struct {
	Service *services.QuoteService
}

// InvalidateCache drops the tenant's cached distances. Wired to the
// tenant's base address change in the dashboard.
func (h *TenantHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tenantID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || tenantID < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid tenant id")
		return
	}

	if err := h.Service.InvalidateTenantCache(r.Context(), tenantID); err != nil {
		log.Printf("invalidate tenant cache failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.InvalidateCacheResponse{Invalidated: true})
}
