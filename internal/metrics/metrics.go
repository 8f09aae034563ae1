// Package metrics 集中注册 Prometheus 指标
// 各流水线直接引用这里的指标变量，/metrics 端点由 server 模块暴露
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// HTTPRequestsTotal HTTP 请求计数，按路径和状态码区分
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_http_requests_total",
			Help: "Total HTTP requests handled, by path and status code.",
		},
		[]string{"path", "code"},
	)

	// HTTPRequestDuration HTTP 请求耗时分布
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "radar_http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	// RegionalFallbackTotal 区域流水线落入样本兜底的次数
	RegionalFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "radar_regional_fallback_total",
			Help: "Times the regional pipeline served the bundled sample dataset.",
		},
	)

	// YouTubeCallsTotal YouTube 外部调用计数，按端点和结果区分
	// outcome: ok / error / skipped (无 API Key 时短路)
	YouTubeCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radar_youtube_calls_total",
			Help: "YouTube Data API calls, by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		RegionalFallbackTotal,
		YouTubeCallsTotal,
	)
}
