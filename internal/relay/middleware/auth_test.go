package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireKey_AllowsAllWhenUnconfigured(t *testing.T) {
	h := RequireKey(nil)(okHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alert", nil))
	if rec.Code != 200 {
		t.Fatalf("want 200, got %d", rec.Code)
	}
}

func TestRequireKey_RejectsMissingOrWrongKey(t *testing.T) {
	h := RequireKey([]string{"k1"})(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alert", nil))
	if rec.Code != 401 {
		t.Fatalf("want 401 without key, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alert", nil)
	req.Header.Set("X-API-Key", "nope")
	h.ServeHTTP(rec, req)
	if rec.Code != 401 {
		t.Fatalf("want 401 with wrong key, got %d", rec.Code)
	}
}

func TestRequireKey_AcceptsHeaderBearerAndQuery(t *testing.T) {
	h := RequireKey([]string{"k1", "k2"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/alert", nil)
	req.Header.Set("X-API-Key", "k1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("X-API-Key: want 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/alert", nil)
	req.Header.Set("Authorization", "Bearer k2")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("Bearer: want 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/alert?key=k1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Fatalf("query key: want 200, got %d", rec.Code)
	}
}
