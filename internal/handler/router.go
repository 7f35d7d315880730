package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/rssbible/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter

	// フィード
	FeedConfig FeedHandlerConfig
	Metrics    MetricsRecorder

	// Now はテスト用の固定クロック。nilの場合はtime.Nowを使用する。
	Now func() time.Time
}

// NewRouter は全エンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → RequestID → Logging → SecurityHeaders → CORS → RateLimit
//
// ヘルスチェック（/health）はレート制限の外に配置する。
// フィードは公開コンテンツのため、CORSは全オリジンからのGETを許可する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware("*"))

	// --- レート制限不要のルート ---

	r.Get("/health", handleHealth)

	// --- フィードルート ---
	// 欠けているパスセグメントはサニタイザーのデフォルト値で補完される。
	feedHandler := NewFeedHandler(deps.FeedConfig, deps.Metrics, deps.Now)

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimiter.Middleware())

		r.Route("/rssbible", func(r chi.Router) {
			r.Get("/feed.rss", feedHandler.ServeFeed)
			r.Get("/{plan}/feed.rss", feedHandler.ServeFeed)
			r.Get("/{plan}/{translation}/feed.rss", feedHandler.ServeFeed)
			r.Get("/{plan}/{translation}/{startDate}/feed.rss", feedHandler.ServeFeed)
			r.Get("/{plan}/{translation}/{startDate}/{chapters}/feed.rss", feedHandler.ServeFeed)
		})
	})

	return r
}

// handleHealth はliveness確認用のヘルスチェックレスポンスを返す。
// GET /health
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
