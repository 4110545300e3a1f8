package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/api/dto"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/services"
)

// QuoteHandler exposes the delivery quote pipeline over HTTP.
type QuoteHandler struct {
	Service *services.QuoteService
}

func (h *QuoteHandler) decodeQuoteRequest(w http.ResponseWriter, r *http.Request) (dto.QuoteRequest, bool) {
	var req dto.QuoteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return req, false
	}

	if req.TenantID < 1 {
		writeError(w, r, http.StatusBadRequest, "tenant_id is required")
		return req, false
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return req, false
	}

	return req, true
}

// Quote resolves distance and time and prices the delivery in one call.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := h.decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	quote, err := h.Service.ProcessFullDelivery(r.Context(), req.TenantID, req.Origin, req.Destination)
	if errors.Is(err, ports.ErrUnresolved) {
		// User-actionable: the address needs fixing, nothing is broken.
		writeError(w, r, http.StatusUnprocessableEntity, "address could not be resolved, check the address")
		return
	}
	if err != nil {
		log.Printf("process delivery failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.QuoteResponse{
		DistanceKm:       quote.DistanceKm,
		EstimatedMinutes: quote.Minutes,
		DeliveryFee:      quote.Fee,
	})
}

// Distance resolves distance and time only, without pricing.
func (h *QuoteHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, ok := h.decodeQuoteRequest(w, r)
	if !ok {
		return
	}

	useCache := true
	if req.UseCache != nil {
		useCache = *req.UseCache
	}

	est, err := h.Service.ResolveDistanceAndTime(r.Context(), req.TenantID, req.Origin, req.Destination, useCache)
	if errors.Is(err, ports.ErrUnresolved) {
		writeError(w, r, http.StatusUnprocessableEntity, "address could not be resolved, check the address")
		return
	}
	if err != nil {
		log.Printf("resolve distance failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		DistanceKm:       est.DistanceKm,
		EstimatedMinutes: est.Minutes,
	})
}
