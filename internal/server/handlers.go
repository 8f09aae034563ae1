// Package server 看板后端 HTTP 接口层
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/host"

	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/model"
	"misinfoRadar/internal/regional"
)

// RegionalSource 区域聚合数据来源
type RegionalSource interface {
	Snapshot() ([]model.RegionalFocus, bool)
}

// HashtagSource 话题标签聚合来源
// 实现约定: 外部故障降级为空列表；error 仅在实现自身不可用时返回
type HashtagSource interface {
	FetchHashtags(ctx context.Context, query string) ([]model.HashtagInsight, error)
}

// Handler 聚合所有接口依赖
type Handler struct {
	Regional RegionalSource
	Hashtags HashtagSource
}

// Health 健康检查，附带宿主机基础信息
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	payload := map[string]interface{}{
		"ok":              true,
		"server_time_utc": time.Now().UTC(),
	}

	// 宿主信息获取失败不影响健康状态
	if info, err := host.Info(); err == nil {
		payload["hostname"] = info.Hostname
		payload["os"] = info.OS
		payload["platform"] = info.Platform
		payload["uptime_seconds"] = info.Uptime
	}

	writeJSON(w, http.StatusOK, payload)
}

// RegionalFocus GET /api/regional-focus
// 可选参数 region 做不区分大小写的包含过滤 ("All" 等价于不过滤)
// source 字段标记数据来源: live 实时聚合 / sample 样本兜底
func (h *Handler) RegionalFocus(w http.ResponseWriter, r *http.Request) {
	regions, live := h.Regional.Snapshot()
	regions = regional.FilterByRegion(regions, r.URL.Query().Get("region"))

	source := "sample"
	if live {
		source = "live"
	}

	if regions == nil {
		regions = []model.RegionalFocus{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"regions": regions,
		"source":  source,
	})
}

// YouTubeHashtags GET /api/youtube/hashtags?query=...
// 缺少 query 参数返回 400；来源自身不可用返回 500
// 外部 API 故障由来源降级为空列表，这里照常返回 200
func (h *Handler) YouTubeHashtags(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, errorPayload("Missing query parameter: query"))
		return
	}

	hashtags, err := h.Hashtags.FetchHashtags(r.Context(), query)
	if err != nil {
		logger.Error("话题聚合处理失败", "query", query, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorPayload("Failed to fetch hashtags"))
		return
	}

	if hashtags == nil {
		hashtags = []model.HashtagInsight{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":    query,
		"hashtags": hashtags,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorPayload(msg string) map[string]interface{} {
	return map[string]interface{}{"error": msg}
}
