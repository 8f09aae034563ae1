// Package youtube 封装 YouTube Data API v3 客户端和话题聚合流水线
// 失败策略: 外部调用任何失败都吞掉并降级为空结果，只记日志——
// 看板的话题功能故障时展示"无数据"，绝不把异常抛给调用方
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"misinfoRadar/internal/config"
	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/metrics"
)

const (
	defaultBaseURL     = "https://www.googleapis.com/youtube/v3"
	defaultSearchLimit = 10
	defaultTimeout     = 10 * time.Second
)

// Client YouTube Data API 客户端
// apiKey 为空时所有方法直接短路返回空结果，不发起网络请求
type Client struct {
	apiKey      string
	searchLimit int
	baseURL     string
	httpClient  *http.Client
}

// NewClient 创建客户端实例
// cfg 缺省字段用内置默认值兜底
func NewClient(cfg config.YouTubeConfig) *Client {
	if cfg.APIKey == "" {
		logger.Warn("YOUTUBE_API_KEY not configured. YouTube features will be disabled.")
	}

	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		apiKey:      cfg.APIKey,
		searchLimit: limit,
		baseURL:     baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 5 * time.Second,
			},
		},
	}
}

// Enabled 是否配置了 API 密钥
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// SearchVideos 按关键词搜索视频 (order=relevance)
// maxResults <= 0 时使用配置的搜索上限
func (c *Client) SearchVideos(ctx context.Context, query string, maxResults int) []SearchItem {
	if !c.Enabled() {
		logger.Warn("YouTube API key not configured")
		metrics.YouTubeCallsTotal.WithLabelValues("search", "skipped").Inc()
		return nil
	}
	if maxResults <= 0 {
		maxResults = c.searchLimit
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "relevance")

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		logger.Error("YouTube 搜索失败", "query", query, "err", err)
		metrics.YouTubeCallsTotal.WithLabelValues("search", "error").Inc()
		return nil
	}

	metrics.YouTubeCallsTotal.WithLabelValues("search", "ok").Inc()
	return resp.Items
}

// SearchByKeyword SearchVideos 的别名，语义对齐看板前端调用
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, maxResults int) []SearchItem {
	return c.SearchVideos(ctx, keyword, maxResults)
}

// GetVideoDetails 按视频 id 查询详情 (含统计数据)
// 未命中或失败返回 nil
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) *Video {
	if !c.Enabled() {
		metrics.YouTubeCallsTotal.WithLabelValues("videos", "skipped").Inc()
		return nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", videoID)

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		logger.Error("YouTube 视频详情查询失败", "video_id", videoID, "err", err)
		metrics.YouTubeCallsTotal.WithLabelValues("videos", "error").Inc()
		return nil
	}

	metrics.YouTubeCallsTotal.WithLabelValues("videos", "ok").Inc()
	if len(resp.Items) == 0 {
		return nil
	}
	return &resp.Items[0]
}

// GetChannelVideos 查询频道最近发布的视频 (order=date)
func (c *Client) GetChannelVideos(ctx context.Context, channelID string, maxResults int) []SearchItem {
	if !c.Enabled() {
		metrics.YouTubeCallsTotal.WithLabelValues("search", "skipped").Inc()
		return nil
	}
	if maxResults <= 0 {
		maxResults = c.searchLimit
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("channelId", channelID)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("order", "date")

	var resp searchResponse
	if err := c.get(ctx, "/search", params, &resp); err != nil {
		logger.Error("YouTube 频道视频查询失败", "channel_id", channelID, "err", err)
		metrics.YouTubeCallsTotal.WithLabelValues("search", "error").Inc()
		return nil
	}

	metrics.YouTubeCallsTotal.WithLabelValues("search", "ok").Inc()
	return resp.Items
}

// CheckVideoForMisinformation 生成单视频排查摘要
// 视频不存在或查询失败返回 nil
func (c *Client) CheckVideoForMisinformation(ctx context.Context, videoID string) *VideoCheck {
	video := c.GetVideoDetails(ctx, videoID)
	if video == nil {
		return nil
	}

	return &VideoCheck{
		VideoID:      videoID,
		Title:        video.Snippet.Title,
		Description:  video.Snippet.Description,
		ChannelTitle: video.Snippet.ChannelTitle,
		PublishedAt:  video.Snippet.PublishedAt,
		ViewCount:    video.Statistics.ViewCount,
		LikeCount:    video.Statistics.LikeCount,
		CommentCount: video.Statistics.CommentCount,
	}
}

// get 执行一次 GET 请求并解码 JSON 响应
// API 密钥在这里统一追加
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response failed: %w", err)
	}
	return nil
}
