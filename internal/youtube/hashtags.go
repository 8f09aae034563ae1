package youtube

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/metrics"
	"misinfoRadar/internal/model"
)

// hashtagAccumulator 单个标签的聚合累加器
type hashtagAccumulator struct {
	// 展示形式 (保留首次出现的大小写，带 # 前缀)
	tag string
	// 出现总次数
	occurrences int
	// 使用过该标签的去重视频标题集合
	videoTitles map[string]bool
}

// FetchHashtags 话题标签聚合流水线
// 流程: 搜索视频 -> 收集视频 id -> 批量拉取详情 -> 按标签聚合 -> 按出现次数降序
// 外部调用失败一律降级为空列表 (error 恒为 nil，保留返回位以兼容接口抽象)
func (c *Client) FetchHashtags(ctx context.Context, query string) ([]model.HashtagInsight, error) {
	if !c.Enabled() {
		logger.Warn("YouTube API key not configured")
		return nil, nil
	}

	// 1. 搜索并收集视频 id (缺失 id 的条目跳过)
	searchResults := c.SearchVideos(ctx, query, c.searchLimit)

	var videoIDs []string
	for _, item := range searchResults {
		if item.ID.VideoID != "" {
			videoIDs = append(videoIDs, item.ID.VideoID)
		}
	}

	// 2. 无可用视频时直接返回空 (不算错误)
	if len(videoIDs) == 0 {
		return nil, nil
	}

	// 3. 批量拉取视频详情
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", strings.Join(videoIDs, ","))

	var resp videosResponse
	if err := c.get(ctx, "/videos", params, &resp); err != nil {
		logger.Error("YouTube 话题详情拉取失败", "query", query, "err", err)
		metrics.YouTubeCallsTotal.WithLabelValues("videos", "error").Inc()
		return nil, nil
	}
	metrics.YouTubeCallsTotal.WithLabelValues("videos", "ok").Inc()

	// 4. 按标签聚合
	// 规范化: 补齐 # 前缀；去重键取小写形式；出现次数逐实例累加
	accumulators := make(map[string]*hashtagAccumulator)
	var order []string

	for _, video := range resp.Items {
		videoTitle := video.Snippet.Title
		if videoTitle == "" {
			videoTitle = "Unknown video"
		}

		for _, tag := range video.Snippet.Tags {
			if tag == "" {
				continue
			}

			formatted := tag
			if !strings.HasPrefix(formatted, "#") {
				formatted = "#" + formatted
			}
			key := strings.ToLower(formatted)

			acc, ok := accumulators[key]
			if !ok {
				acc = &hashtagAccumulator{
					tag:         formatted,
					videoTitles: make(map[string]bool),
				}
				accumulators[key] = acc
				order = append(order, key)
			}

			acc.occurrences++
			acc.videoTitles[videoTitle] = true
		}
	}

	// 5. 产出并按出现次数降序排序 (稳定排序保持首次出现顺序)
	insights := make([]model.HashtagInsight, 0, len(order))
	for _, key := range order {
		acc := accumulators[key]
		insights = append(insights, model.HashtagInsight{
			Tag:         acc.tag,
			Occurrences: acc.occurrences,
			VideoCount:  len(acc.videoTitles),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Occurrences > insights[j].Occurrences
	})

	logger.Info("话题聚合完成", "query", query, "videos", len(videoIDs), "tags", len(insights))
	return insights, nil
}
