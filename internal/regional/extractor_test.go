package regional

import (
	"testing"

	"misinfoRadar/internal/model"
)

// TestExtractRegion_TracePriority 溯源地理传播优先于关键词
func TestExtractRegion_TracePriority(t *testing.T) {
	content := &model.ContentItem{
		Keywords: model.StringList{"Mumbai", "unrest"},
	}
	trace := &model.SourceTrace{
		GeographicSpread: model.GeoSpread{{Region: "Pune"}, {Region: "Nagpur"}},
	}

	// 溯源存在时取第一个区域，关键词里的 Mumbai 不生效
	if got := ExtractRegion(content, trace); got != "Pune" {
		t.Errorf("期望 'Pune', 实际 '%s'", got)
	}
}

// TestExtractRegion_TraceEmptyRegion 溯源列表存在但首区域为空时直接兜底
// 不回退到关键词匹配 (与原始看板行为一致)
func TestExtractRegion_TraceEmptyRegion(t *testing.T) {
	content := &model.ContentItem{
		Keywords: model.StringList{"Mumbai"},
	}
	trace := &model.SourceTrace{
		GeographicSpread: model.GeoSpread{{Region: ""}},
	}

	if got := ExtractRegion(content, trace); got != DefaultRegion {
		t.Errorf("期望兜底 '%s', 实际 '%s'", DefaultRegion, got)
	}
}

// TestExtractRegion_KeywordMatch 关键词城市名匹配
func TestExtractRegion_KeywordMatch(t *testing.T) {
	tests := []struct {
		name     string
		keywords model.StringList
		expected string
	}{
		// 完全一致
		{"精确匹配", model.StringList{"Mumbai", "unrest"}, "Mumbai"},
		// 不区分大小写
		{"小写关键词", model.StringList{"mumbai"}, "mumbai"},
		// 包含关系命中，返回关键词原文而非城市名
		{"子串匹配返回原文", model.StringList{"thane-floods"}, "thane-floods"},
		// 第一个命中的关键词生效
		{"首个命中生效", model.StringList{"politics", "Satara", "Pune"}, "Satara"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := &model.ContentItem{Keywords: tt.keywords}
			if got := ExtractRegion(content, nil); got != tt.expected {
				t.Errorf("期望 '%s', 实际 '%s'", tt.expected, got)
			}
		})
	}
}

// TestExtractRegion_Default 无溯源无关键词命中时兜底
func TestExtractRegion_Default(t *testing.T) {
	// 全部为 nil
	if got := ExtractRegion(nil, nil); got != DefaultRegion {
		t.Errorf("期望 '%s', 实际 '%s'", DefaultRegion, got)
	}

	// 关键词无城市名
	content := &model.ContentItem{Keywords: model.StringList{"election", "rumor"}}
	if got := ExtractRegion(content, nil); got != DefaultRegion {
		t.Errorf("期望 '%s', 实际 '%s'", DefaultRegion, got)
	}

	// 溯源列表为空等同于不存在
	trace := &model.SourceTrace{GeographicSpread: model.GeoSpread{}}
	if got := ExtractRegion(content, trace); got != DefaultRegion {
		t.Errorf("期望 '%s', 实际 '%s'", DefaultRegion, got)
	}
}
