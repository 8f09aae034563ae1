package youtube

// ==========================================
// YouTube Data API v3 响应结构
// 只声明实际消费的字段
// ==========================================

// searchResponse /search 端点响应
type searchResponse struct {
	Items []SearchItem `json:"items"`
}

// SearchItem 搜索结果条目
type SearchItem struct {
	ID      SearchItemID  `json:"id"`
	Snippet SearchSnippet `json:"snippet"`
}

// SearchItemID 搜索结果 id 包装
// type=video 时只有 videoId 有值
type SearchItemID struct {
	VideoID string `json:"videoId"`
}

// SearchSnippet 搜索结果摘要
type SearchSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

// videosResponse /videos 端点响应
type videosResponse struct {
	Items []Video `json:"items"`
}

// Video 视频详情条目
type Video struct {
	ID         string          `json:"id"`
	Snippet    VideoSnippet    `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

// VideoSnippet 视频摘要，Tags 是话题聚合的输入
type VideoSnippet struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelTitle string   `json:"channelTitle"`
	PublishedAt  string   `json:"publishedAt"`
	Tags         []string `json:"tags"`
}

// VideoStatistics 视频统计，API 返回字符串形式的数值
type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// VideoCheck 单视频排查摘要
// 供人工研判某个视频是否涉及虚假信息
type VideoCheck struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}
