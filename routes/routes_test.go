package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sentinance/cache"
	"sentinance/config"
	"sentinance/model"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "tickers.json")
	if err := os.WriteFile(path, []byte(`[{"symbol":"AAPL","name":"Apple Inc."}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &model.EnvConfig{TickersFile: path}
	config.ApplyDefaults(cfg)

	svcs := NewServices(cfg, cache.NewLocalStore(time.Minute, time.Minute))
	return SetupRouter(config.NewConfigManager(cfg), svcs)
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	for _, method := range []string{http.MethodGet, http.MethodHead} {
		if w := serve(r, method, "/api/health"); w.Code != http.StatusOK {
			t.Errorf("%s /api/health = %d, want 200", method, w.Code)
		}
	}
}

func TestRootMessage(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body model.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Sentinance Backend is running." {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestStockList(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/stocks/list")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var listings []model.TickerListing
	if err := json.Unmarshal(w.Body.Bytes(), &listings); err != nil {
		t.Fatal(err)
	}
	if len(listings) != 1 || listings[0].Type != "Equity" || listings[0].Region != "United States" {
		t.Errorf("unexpected listings %+v", listings)
	}
}

func TestOpenAPIServed(t *testing.T) {
	if w := serve(newTestRouter(t), http.MethodGet, "/openapi.json"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestInvalidHistoryDays(t *testing.T) {
	w := serve(newTestRouter(t), http.MethodGet, "/stocks/AAPL/history?days=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer days, got %d", w.Code)
	}
}
