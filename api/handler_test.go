package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"propfinder/easybroker"
	"propfinder/models"
	"propfinder/services"
)

type fakeSearch struct {
	searchFn   func(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error)
	metadataFn func(ctx context.Context) (*models.Metadata, error)

	lastCriteria  models.SearchCriteria
	searchCalls   int
	metadataCalls int
}

func (f *fakeSearch) Search(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error) {
	f.searchCalls++
	f.lastCriteria = c
	if f.searchFn != nil {
		return f.searchFn(ctx, c)
	}
	return &models.SearchResult{Count: 0, Items: []models.DisplayItem{}}, nil
}

func (f *fakeSearch) Metadata(ctx context.Context) (*models.Metadata, error) {
	f.metadataCalls++
	if f.metadataFn != nil {
		return f.metadataFn(ctx)
	}
	return &models.Metadata{}, nil
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(ctx context.Context) error { return p.err }

func doRequest(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Properties(rec, req)
	return rec
}

func TestProperties_Success(t *testing.T) {
	amount := 8500000.0
	search := &fakeSearch{
		searchFn: func(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error) {
			return &models.SearchResult{
				Count: 1,
				Items: []models.DisplayItem{{
					ID:        "EB-1",
					Operation: "sale",
					Amount:    &amount,
					Currency:  "MXN",
				}},
			}, nil
		},
	}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	rec := doRequest(h, "/api/properties?operation=venta&priceMax=9000000")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body models.SearchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count != 1 || len(body.Items) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Items[0].ID != "EB-1" {
		t.Fatalf("unexpected item: %+v", body.Items[0])
	}
}

func TestProperties_CriteriaParsing(t *testing.T) {
	search := &fakeSearch{}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	doRequest(h, "/api/properties?operation=renta&type=Casa&priceMin=5000&priceMax=20000&currency=usd&status=reserved&bedrooms=2&bathrooms=1&parkingSpaces=1&sizeMin=80&sizeMax=300")

	c := search.lastCriteria
	if c.Operation != "renta" || c.PropertyType != "Casa" || c.Currency != "usd" || c.Status != "reserved" {
		t.Fatalf("string criteria mismatch: %+v", c)
	}
	if c.PriceMin == nil || *c.PriceMin != 5000 || c.PriceMax == nil || *c.PriceMax != 20000 {
		t.Fatalf("price bounds mismatch: %+v", c)
	}
	if c.Bedrooms == nil || *c.Bedrooms != 2 || c.Bathrooms == nil || *c.Bathrooms != 1 || c.ParkingSpaces == nil || *c.ParkingSpaces != 1 {
		t.Fatalf("count criteria mismatch: %+v", c)
	}
	if c.SizeMin == nil || *c.SizeMin != 80 || c.SizeMax == nil || *c.SizeMax != 300 {
		t.Fatalf("size bounds mismatch: %+v", c)
	}
}

func TestProperties_CriteriaParsingRejectsBadValues(t *testing.T) {
	search := &fakeSearch{}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	doRequest(h, "/api/properties?priceMin=abc&bedrooms=-1&propertyType=Depa")

	c := search.lastCriteria
	if c.PriceMin != nil {
		t.Fatalf("unparseable priceMin should be unset, got %v", *c.PriceMin)
	}
	if c.Bedrooms != nil {
		t.Fatalf("negative bedrooms should be unset, got %v", *c.Bedrooms)
	}
	if c.PropertyType != "Depa" {
		t.Fatalf("propertyType alias should apply, got %q", c.PropertyType)
	}
}

func TestProperties_MetadataMode(t *testing.T) {
	search := &fakeSearch{
		metadataFn: func(ctx context.Context) (*models.Metadata, error) {
			return &models.Metadata{Types: []string{"Casa"}, Operations: []string{"sale"}}, nil
		},
	}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	rec := doRequest(h, "/api/properties?meta=types&operation=venta")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if search.searchCalls != 0 {
		t.Fatalf("metadata mode must not run a search")
	}
	if search.metadataCalls != 1 {
		t.Fatalf("expected one metadata call, got %d", search.metadataCalls)
	}

	var meta models.Metadata
	if err := json.Unmarshal(rec.Body.Bytes(), &meta); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(meta.Types) != 1 || meta.Types[0] != "Casa" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestProperties_MissingCredential(t *testing.T) {
	search := &fakeSearch{
		searchFn: func(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error) {
			return nil, easybroker.ErrMissingCredential
		},
	}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	rec := doRequest(h, "/api/properties")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "listing source is not configured" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestProperties_UpstreamFailure(t *testing.T) {
	search := &fakeSearch{
		searchFn: func(ctx context.Context, c models.SearchCriteria) (*models.SearchResult, error) {
			return nil, &easybroker.UpstreamError{Status: 503, Page: 2, Body: "maintenance"}
		},
	}
	h := NewHandler(search, services.NewHealthcheckService(failingPinger{}))

	rec := doRequest(h, "/api/properties")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "listing source unavailable" {
		t.Fatalf("unexpected error body: %v", body)
	}
}

func TestHealthz(t *testing.T) {
	health := services.NewHealthcheckService(failingPinger{err: errors.New("connection refused")})
	h := NewHandler(&fakeSearch{}, health)

	// No probe has run yet: liveness only, never degraded.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Healthz(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 before first probe, got %d", rec.Code)
	}

	health.Check(context.Background())

	rec = httptest.NewRecorder()
	h.Healthz(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 after failed probe, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "degraded" {
		t.Fatalf("expected degraded status, got %v", body["status"])
	}
}
