package model

// ==========================================
// 派生展示模型
// 每次刷新重新计算，不落库
// ==========================================

// RegionalFocus 区域聚焦条目
// 区域聚合流水线的输出单元，同一批输出中 region 不会重复
type RegionalFocus struct {
	// 区域名 (城市或邦名)
	Region string `json:"region"`
	// 代表性信号描述，实时路径下最长 60 字符 + 省略号
	Signal string `json:"signal"`
	// 置信度，固定两位小数的字符串 (e.g., "0.85")
	Confidence string `json:"confidence"`
	// 该区域观测到的最高严重级别
	Status Severity `json:"status"`
}

// HashtagInsight 话题标签聚合统计
// tag 展示原始大小写并带 # 前缀，去重键为小写形式
type HashtagInsight struct {
	// 标签 (规范化后形式, e.g., "#Election")
	Tag string `json:"tag"`
	// 出现总次数 (跨视频累计)
	Occurrences int `json:"occurrences"`
	// 使用该标签的去重视频数，恒有 Occurrences >= VideoCount
	VideoCount int `json:"videoCount"`
}
