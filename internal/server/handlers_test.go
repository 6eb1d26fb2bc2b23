package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/steelworks/partsearch/internal/analytics"
	"github.com/steelworks/partsearch/internal/catalog"
	"github.com/steelworks/partsearch/internal/config"
	"github.com/steelworks/partsearch/internal/models"
	"github.com/steelworks/partsearch/internal/search"
)

const testFeed = "part_number,description\n" +
	"M1433,Gate valve bronze\n" +
	"M1456,Valve seat insert\n" +
	"X900,Gasket set\n" +
	"P2001,Pump seal assembly\n"

func testServer(t *testing.T) *Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(testFeed), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	source := &catalog.FileCSVSource{Path: path}
	provider := catalog.NewProvider(source, time.Minute, nil)

	searchCfg := &config.SearchConfig{
		ResultCap:          50,
		PageSize:           20,
		MinQueryLength:     1,
		HighlightCacheSize: 100,
	}
	tracker := analytics.NewTracker()
	engine := search.NewEngine(provider, searchCfg, nil, nil).WithTracker(tracker)

	return NewServer(engine, provider, tracker, &config.ServerConfig{Host: "localhost", Port: 0}, nil)
}

func doRequest(t *testing.T, srv *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleSearch(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalResults != 2 {
		t.Errorf("TotalResults = %d, want 2", resp.TotalResults)
	}
	if len(resp.Results) != 2 || resp.Results[0].Part.Number != "M1456" {
		t.Errorf("results = %+v, want M1456 first", resp.Results)
	}
	if resp.Query != "valve" {
		t.Errorf("Query = %q, want %q", resp.Query, "valve")
	}
}

func TestHandleSearch_Pagination(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve&page=99")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CurrentPage != resp.TotalPages {
		t.Errorf("page 99 not clamped: current %d, total %d", resp.CurrentPage, resp.TotalPages)
	}
}

func TestHandleSearch_BadPage(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve&page=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("error message missing")
	}
}

func TestHandleSearch_EmptyQuery(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/search")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp models.SearchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalResults != 0 || len(resp.Results) != 0 {
		t.Errorf("empty query returned results: %+v", resp)
	}
}

func TestHandleSuggestions(t *testing.T) {
	srv := testServer(t)

	// Seed analytics through real searches.
	doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve")
	doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve")

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/suggestions?q=val")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	suggestions, ok := resp["suggestions"]
	if !ok {
		t.Fatal("suggestions key missing")
	}
	if len(suggestions) == 0 || suggestions[0] != "valve" {
		t.Errorf("suggestions = %v, want [valve]", suggestions)
	}
}

func TestHandleRecent(t *testing.T) {
	srv := testServer(t)

	doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve")
	doRequest(t, srv, http.MethodGet, "/api/v1/search?q=gasket")

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/recent")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	recent := resp["recent"]
	if len(recent) != 2 || recent[0] != "gasket" || recent[1] != "valve" {
		t.Errorf("recent = %v, want [gasket valve]", recent)
	}
}

func TestHandleReload(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/reload")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "reloaded" {
		t.Errorf("status = %v, want reloaded", resp["status"])
	}
	if records, ok := resp["records"].(float64); !ok || records != 4 {
		t.Errorf("records = %v, want 4", resp["records"])
	}
}

func TestHandleReload_SourceFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")
	provider := catalog.NewProvider(&catalog.FileCSVSource{Path: path}, time.Minute, nil)
	engine := search.NewEngine(provider, &config.SearchConfig{ResultCap: 50, PageSize: 20, MinQueryLength: 1}, nil, nil)
	srv := NewServer(engine, provider, nil, &config.ServerConfig{}, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/reload")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestHandleStatus(t *testing.T) {
	srv := testServer(t)

	// Load the catalog so meta is populated.
	doRequest(t, srv, http.MethodPost, "/api/v1/reload")
	doRequest(t, srv, http.MethodGet, "/api/v1/search?q=valve")

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Catalog   catalog.LoadMeta  `json:"catalog"`
		Analytics analytics.Summary `json:"analytics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Catalog.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", resp.Catalog.RecordCount)
	}
	if resp.Catalog.Source != "file-csv" {
		t.Errorf("Source = %s, want file-csv", resp.Catalog.Source)
	}
	if resp.Analytics.TotalSearches != 1 {
		t.Errorf("TotalSearches = %d, want 1", resp.Analytics.TotalSearches)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}
}
