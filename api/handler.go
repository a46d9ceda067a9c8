package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"propfinder/easybroker"
	"propfinder/models"
	"propfinder/services"
)

// SearchRunner is the slice of SearchService the handler depends on.
type SearchRunner interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error)
	Metadata(ctx context.Context) (*models.Metadata, error)
}

type Handler struct {
	search SearchRunner
	health *services.HealthcheckService
}

func NewHandler(search SearchRunner, health *services.HealthcheckService) *Handler {
	return &Handler{search: search, health: health}
}

// Properties serves the search endpoint. With meta=types the response
// switches to filter-control metadata and skips filtering entirely.
func (h *Handler) Properties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("meta") == "types" {
		meta, err := h.search.Metadata(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, meta)
		return
	}

	result, err := h.search.Search(r.Context(), parseCriteria(q))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Healthz reports liveness plus the last upstream probe result.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := h.health.Status()

	body := map[string]interface{}{
		"status":   "ok",
		"upstream": status,
	}
	code := http.StatusOK
	if !status.CheckedAt.IsZero() && !status.Healthy {
		body["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, body)
}

func parseCriteria(q url.Values) models.SearchCriteria {
	c := models.SearchCriteria{
		Operation:    q.Get("operation"),
		PropertyType: q.Get("type"),
		Currency:     q.Get("currency"),
		Status:       q.Get("status"),
	}
	if c.PropertyType == "" {
		c.PropertyType = q.Get("propertyType")
	}

	c.PriceMin = parseFloat(q.Get("priceMin"))
	c.PriceMax = parseFloat(q.Get("priceMax"))
	c.SizeMin = parseFloat(q.Get("sizeMin"))
	c.SizeMax = parseFloat(q.Get("sizeMax"))
	c.Bedrooms = parseCount(q.Get("bedrooms"))
	c.Bathrooms = parseCount(q.Get("bathrooms"))
	c.ParkingSpaces = parseCount(q.Get("parkingSpaces"))

	return c
}

func parseFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// writeError converts any pipeline failure into a safe degraded
// response. The cause goes to the log; the caller only ever sees a
// generic message, never a partial result.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestID(r.Context())

	var upstream *easybroker.UpstreamError
	switch {
	case errors.Is(err, easybroker.ErrMissingCredential):
		log.Printf("[%s] listing source credential missing", reqID)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "listing source is not configured"})
	case errors.As(err, &upstream):
		log.Printf("[%s] upstream failure: status %d on page %d: %s", reqID, upstream.Status, upstream.Page, upstream.Body)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "listing source unavailable"})
	default:
		log.Printf("[%s] search failed: %v", reqID, err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "listing source unavailable"})
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}
