package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/delray/scrapebot/config"
	"github.com/delray/scrapebot/engine"
	"github.com/delray/scrapebot/models"
	"github.com/delray/scrapebot/scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Mode: "test"}}
	sc := scraper.NewScraper(engine.NewHTTPEngine())
	return NewRouter(sc, cfg, time.Now())
}

func TestRouter_Health(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestRouter_ScrapeRejectsGet(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/scrape", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"POST only"}`, w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ScrapeRejectsExtensionMethods(t *testing.T) {
	router := testRouter(t)

	for _, method := range []string{"PROPFIND", "MKCOL", "PURGE"} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/scrape", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"error":"POST only"}`, w.Body.String())
		})
	}
}

func TestRouter_UnknownRouteJSON(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest("PROPFIND", "/api/other", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}
