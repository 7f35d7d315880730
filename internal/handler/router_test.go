package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/rssbible/internal/middleware"
)

// newTestRouter はミドルウェアなしでフィードルートのみをマウントしたルーターを返す。
// FeedHandler単体のテスト用。
func newTestRouter(h *FeedHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/rssbible", func(r chi.Router) {
		r.Get("/feed.rss", h.ServeFeed)
		r.Get("/{plan}/feed.rss", h.ServeFeed)
		r.Get("/{plan}/{translation}/feed.rss", h.ServeFeed)
		r.Get("/{plan}/{translation}/{startDate}/feed.rss", h.ServeFeed)
		r.Get("/{plan}/{translation}/{startDate}/{chapters}/feed.rss", h.ServeFeed)
	})
	return r
}

// newFullRouter は本番相当の依存関係でNewRouterを構成して返す。
func newFullRouter(t *testing.T) http.Handler {
	t.Helper()

	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:            100,
		Burst:           100,
		CleanupInterval: 1 * time.Minute,
	})
	t.Cleanup(rl.Stop)

	return NewRouter(&RouterDeps{
		Logger:      slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)),
		RateLimiter: rl,
		FeedConfig: FeedHandlerConfig{
			BaseURL:        "https://example.com",
			CacheMaxAge:    time.Hour,
			FeedTTLMinutes: 60,
		},
		Metrics: &mockMetrics{},
		Now:     testClock,
	})
}

// TestNewRouter_FeedRoute はフルパスのフィードルートが配信されることを検証する。
func TestNewRouter_FeedRoute(t *testing.T) {
	router := newFullRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rssbible/ot/esv/20260826/1/feed.rss", nil)
	req.RemoteAddr = "203.0.113.1:1000"
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "<title>Genesis 1</title>") {
		t.Error("feed body does not contain expected item")
	}
}

// TestNewRouter_AllPrefixRoutes はセグメント数の異なる全ルートが200を返すことを検証する。
func TestNewRouter_AllPrefixRoutes(t *testing.T) {
	router := newFullRouter(t)

	paths := []string{
		"/rssbible/feed.rss",
		"/rssbible/nt/feed.rss",
		"/rssbible/nt/kjv/feed.rss",
		"/rssbible/nt/kjv/20260826/feed.rss",
		"/rssbible/nt/kjv/20260826/2/feed.rss",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.1:1000"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("GET %s: status = %d, want %d", path, w.Result().StatusCode, http.StatusOK)
		}
	}
}

// TestNewRouter_HealthEndpoint はヘルスチェックエンドポイントを検証する。
func TestNewRouter_HealthEndpoint(t *testing.T) {
	router := newFullRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

// TestNewRouter_UnknownRouteReturns404 はルートパターンに一致しないURLで
// 404が返ることを検証する（アダプタ境界のエラーハンドリング）。
func TestNewRouter_UnknownRouteReturns404(t *testing.T) {
	router := newFullRouter(t)

	paths := []string{
		"/",
		"/rssbible",
		"/rssbible/ot/esv/20260826/1/feed.xml",
		"/rssbible/ot/esv/20260826/1/2/feed.rss",
		"/other",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.1:1000"
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: status = %d, want %d", path, w.Result().StatusCode, http.StatusNotFound)
		}
	}
}

// TestNewRouter_SecurityHeadersAndRequestID は全レスポンスにセキュリティヘッダーと
// リクエストIDが付与されることを検証する。
func TestNewRouter_SecurityHeadersAndRequestID(t *testing.T) {
	router := newFullRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/rssbible/feed.rss", nil)
	req.RemoteAddr = "203.0.113.1:1000"
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	resp := w.Result()
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("X-Content-Type-Options header is missing")
	}
	if resp.Header.Get("X-Frame-Options") != "DENY" {
		t.Error("X-Frame-Options header is missing")
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("X-Request-ID header is missing")
	}
	// 公開フィードのためCORSは全オリジン許可
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}

// TestNewRouter_RateLimitAppliesToFeedRoutesOnly はレート制限がフィードルートのみに
// 適用され、/healthには適用されないことを検証する。
func TestNewRouter_RateLimitAppliesToFeedRoutesOnly(t *testing.T) {
	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:            1,
		Burst:           1,
		CleanupInterval: 1 * time.Minute,
	})
	t.Cleanup(rl.Stop)

	router := NewRouter(&RouterDeps{
		Logger:      slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)),
		RateLimiter: rl,
		FeedConfig: FeedHandlerConfig{
			BaseURL:        "https://example.com",
			CacheMaxAge:    time.Hour,
			FeedTTLMinutes: 60,
		},
		Metrics: &mockMetrics{},
		Now:     testClock,
	})

	send := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "203.0.113.77:1000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Result().StatusCode
	}

	// バースト1なので2回目のフィードリクエストは429
	if got := send("/rssbible/feed.rss"); got != http.StatusOK {
		t.Fatalf("first feed request: status = %d", got)
	}
	if got := send("/rssbible/feed.rss"); got != http.StatusTooManyRequests {
		t.Errorf("second feed request: status = %d, want 429", got)
	}

	// /healthはレート制限の対象外
	for i := 0; i < 3; i++ {
		if got := send("/health"); got != http.StatusOK {
			t.Errorf("health request %d: status = %d, want 200", i, got)
		}
	}
}
