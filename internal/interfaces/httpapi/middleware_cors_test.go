package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsProbe(t *testing.T, origins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	handler := CORS(origins, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(method, "/v1/titles", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestCORS(t *testing.T) {
	t.Run("allows configured origin", func(t *testing.T) {
		rec := corsProbe(t, []string{"https://ringbook.app"}, http.MethodGet, "https://ringbook.app")
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://ringbook.app" {
			t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
		}
	})

	t.Run("rejects unknown origin", func(t *testing.T) {
		rec := corsProbe(t, []string{"https://ringbook.app"}, http.MethodGet, "https://rival-promotion.example")
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("expected empty Access-Control-Allow-Origin, got %q", got)
		}
	})

	t.Run("wildcard preflight short circuits", func(t *testing.T) {
		rec := corsProbe(t, []string{"*"}, http.MethodOptions, "https://ringbook.app")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
		}
	})
}
