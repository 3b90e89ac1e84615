package chi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_Disabled(t *testing.T) {
	handler := RateLimitMiddleware(0)(okHandler())

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/courses/c1/recommendations", http.NoBody))
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}

func TestRateLimit_Exceeded(t *testing.T) {
	handler := RateLimitMiddleware(2)(okHandler())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/api/v1/courses/c1/recommendations", http.NoBody)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request: got %d, want %d", last.Code, http.StatusTooManyRequests)
	}
	var errResp ErrorResponse
	if err := json.NewDecoder(last.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != ErrorResponseCodeRateLimited {
		t.Errorf("error code: got %s, want %s", errResp.Code, ErrorResponseCodeRateLimited)
	}
}

func TestRateLimit_ExemptPaths(t *testing.T) {
	handler := RateLimitMiddleware(1)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("GET", "/health", http.NoBody)
		req.RemoteAddr = "10.0.0.2:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("request %d: got %d, want %d", i, rr.Code, http.StatusOK)
		}
	}
}
