// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラー層から利用する。
type MetricsCollector interface {
	RecordFeedRendered(plan string)
	RecordItemsPerFeed(count int)
	RecordRenderLatency(duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	feedsRendered *prometheus.CounterVec
	itemsPerFeed  prometheus.Histogram
	renderLatency prometheus.Histogram
	httpStatus    *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		feedsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rssbible_feeds_rendered_total",
			Help: "レンダリングしたフィードのプラン別合計数",
		}, []string{"plan"}),
		itemsPerFeed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rssbible_items_per_feed",
			Help:    "1フィードあたりのアイテム数",
			Buckets: []float64{0, 1, 5, 10, 30, 90, 180, 365, 730, 1189},
		}),
		renderLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rssbible_render_latency_seconds",
			Help:    "スケジュール計算とレンダリングのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rssbible_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.feedsRendered,
		c.itemsPerFeed,
		c.renderLatency,
		c.httpStatus,
	)

	return c
}

// RecordFeedRendered はフィードのレンダリング完了をプラン別に記録する。
func (c *Collector) RecordFeedRendered(plan string) {
	c.feedsRendered.WithLabelValues(plan).Inc()
}

// RecordItemsPerFeed は1フィードに含まれたアイテム数を記録する。
func (c *Collector) RecordItemsPerFeed(count int) {
	c.itemsPerFeed.Observe(float64(count))
}

// RecordRenderLatency はスケジュール計算とレンダリングのレイテンシを記録する。
func (c *Collector) RecordRenderLatency(duration time.Duration) {
	c.renderLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
