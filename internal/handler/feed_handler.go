// Package handler はHTTPハンドラーとルーティングを提供する。
// 生のパスセグメント → サニタイズ → スケジュール計算 → レンダリングの
// パイプラインを統括する。
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/rssbible/internal/bible"
	"github.com/hitoshi/rssbible/internal/rss"
	"github.com/hitoshi/rssbible/internal/sanitize"
	"github.com/hitoshi/rssbible/internal/schedule"
)

// feedPathDateFormat は正準URLに埋め込む開始日の形式。
const feedPathDateFormat = "20060102"

// チャンネルヘッダーの帰属表記。リンク先が固定の外部サービスのため定数。
const (
	feedManagingEditor = "feeds@rssbible.app (RSS Bible)"
	feedWebMaster      = "webmaster@rssbible.app (RSS Bible)"
	feedCopyright      = "Scripture links courtesy of Bible Gateway"
	feedImagePath      = "/images/bible.png"
)

// MetricsRecorder はフィードハンドラーが必要とするメトリクス収集インターフェース。
type MetricsRecorder interface {
	RecordFeedRendered(plan string)
	RecordItemsPerFeed(count int)
	RecordRenderLatency(duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// FeedHandlerConfig はフィードハンドラーの設定。
type FeedHandlerConfig struct {
	BaseURL        string
	CacheMaxAge    time.Duration
	FeedTTLMinutes int
}

// FeedHandler は読書スケジュールのRSSフィードを配信するHTTPハンドラー。
// 状態を持たず、リクエストごとにスケジュール全体を再計算する。
type FeedHandler struct {
	config  FeedHandlerConfig
	metrics MetricsRecorder
	now     func() time.Time
}

// NewFeedHandler はFeedHandlerを生成する。
// nowがnilの場合はtime.Nowを使用する（テストでは固定クロックを注入する）。
func NewFeedHandler(config FeedHandlerConfig, recorder MetricsRecorder, now func() time.Time) *FeedHandler {
	if now == nil {
		now = time.Now
	}
	return &FeedHandler{
		config:  config,
		metrics: recorder,
		now:     now,
	}
}

// ServeFeed は読書スケジュールのRSSフィードを返す。
// GET /rssbible/{plan}/{translation}/{startDate}/{chapters}/feed.rss
//
// すべてのパスセグメントは省略可能で、不正な値はサニタイザーが
// デフォルト値に置換する。エラーレスポンスは返さない（常にフィードを返す方針）。
func (h *FeedHandler) ServeFeed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	now := h.now()

	plan := sanitize.Plan(chi.URLParam(r, "plan"))
	translation := sanitize.Translation(chi.URLParam(r, "translation"))
	startDate := sanitize.Date(chi.URLParam(r, "startDate"), now)
	chaptersPerDay := sanitize.Chapters(chi.URLParam(r, "chapters"))

	items := schedule.BuildFeedItems(plan, translation, startDate, chaptersPerDay, now)
	body := rss.RenderFeed(h.feedMetadata(plan, translation, startDate, chaptersPerDay, now), items)

	h.metrics.RecordFeedRendered(string(plan))
	h.metrics.RecordItemsPerFeed(len(items))
	h.metrics.RecordRenderLatency(time.Since(start))
	h.metrics.RecordHTTPStatus(http.StatusOK)

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.config.CacheMaxAge.Seconds())))
	w.Write(body)
}

// feedMetadata はサニタイズ済みの値からチャンネルメタデータを構築する。
// 埋め込まれる正準URLはリクエストされたURLと異なる場合がある
// （サニタイザーが値を置換した場合）。呼び出し側は正準URLを正とする。
func (h *FeedHandler) feedMetadata(plan bible.Plan, translation string, startDate time.Time, chaptersPerDay int, now time.Time) rss.Metadata {
	canonical := fmt.Sprintf("%s/rssbible/%s/%s/%s/%d",
		h.config.BaseURL, plan, translation, startDate.Format(feedPathDateFormat), chaptersPerDay)

	return rss.Metadata{
		Title: fmt.Sprintf("Bible Reading Plan (%s in %s)", plan.Label(), translation),
		Description: fmt.Sprintf("%s plan in %s, %d chapter(s) per day, starting %s",
			plan.Label(), translation, chaptersPerDay, startDate.Format("2006-01-02")),
		SiteLink:       canonical,
		FeedLink:       canonical + "/feed.rss",
		Language:       "en-us",
		ManagingEditor: feedManagingEditor,
		WebMaster:      feedWebMaster,
		Copyright:      feedCopyright,
		PubDate:        now,
		TTLMinutes:     h.config.FeedTTLMinutes,
		ImageURL:       h.config.BaseURL + feedImagePath,
	}
}
