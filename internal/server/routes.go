package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/metrics"
)

// New 组装路由和中间件
func New(handler *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handler.Health)
	mux.HandleFunc("/api/regional-focus", handler.RegionalFocus)
	mux.HandleFunc("/api/youtube/hashtags", handler.YouTubeHashtags)
	mux.Handle("/metrics", promhttp.Handler())

	return instrument(mux)
}

// statusRecorder 捕获响应状态码供日志和指标使用
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument 访问日志 + 请求指标中间件
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())

		logger.Info("HTTP 请求",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed_ms", elapsed.Milliseconds(),
		)
	})
}
