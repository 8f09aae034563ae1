package regional

import "misinfoRadar/internal/model"

// ExtractRegion 为单条告警推导区域标签
// 匹配优先级 (先命中先生效):
//  1. 溯源记录地理传播列表的第一个区域
//  2. 内容关键词中的城市名 (返回关键词原文)
//  3. 兜底邦名 Maharashtra
//
// content / trace 允许为 nil，永远返回非空字符串
func ExtractRegion(content *model.ContentItem, trace *model.SourceTrace) string {
	// 1. 溯源地理传播优先
	// 列表存在即短路，首个区域为空串时直接兜底，不再回退到关键词
	if trace != nil && len(trace.GeographicSpread) > 0 {
		if region := trace.GeographicSpread[0].Region; region != "" {
			return region
		}
		return DefaultRegion
	}

	// 2. 关键词城市名匹配
	if content != nil {
		if keyword, ok := matchKeywordCity(content.Keywords); ok {
			return keyword
		}
	}

	// 3. 兜底
	return DefaultRegion
}
