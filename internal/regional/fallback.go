package regional

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/model"
)

// ==========================================
// 样本兜底
// 实时聚合为空时，用内置样本数据集生成等价的区域列表
// 该路径操作的是打包时校验过的数据，永远不会失败
// ==========================================

//go:embed samples.yaml
var samplesRaw []byte

// SampleContentItem 内置样本条目
type SampleContentItem struct {
	ID                       string  `yaml:"id"`
	Title                    string  `yaml:"title"`
	Description              string  `yaml:"description"`
	IsMisinformation         bool    `yaml:"is_misinformation"`
	MisinformationConfidence float64 `yaml:"misinformation_confidence"`
	SeverityLevel            string  `yaml:"severity_level"`
}

var (
	sampleItems []SampleContentItem
	samplesOnce sync.Once
)

// SampleItems 返回内置样本数据集
// 首次调用时解析嵌入的 YAML，解析失败说明打包数据损坏，直接记日志返回空
func SampleItems() []SampleContentItem {
	samplesOnce.Do(func() {
		var doc struct {
			Items []SampleContentItem `yaml:"items"`
		}
		if err := yaml.Unmarshal(samplesRaw, &doc); err != nil {
			logger.Error("内置样本数据解析失败", "err", err)
			return
		}
		sampleItems = doc.Items
	})
	return sampleItems
}

// FallbackRegions 从样本数据集生成区域列表
// 只取标记为虚假信息的条目；区域从标题+描述中查找城市名，找不到用兜底邦名
// 信号取标题原文 (不加前缀、不截断)，与实时路径的差异是既有产品行为，保持原样
func FallbackRegions(items []SampleContentItem) []model.RegionalFocus {
	var result []model.RegionalFocus

	for _, item := range items {
		if !item.IsMisinformation {
			continue
		}

		region := DefaultRegion
		text := fmt.Sprintf("%s %s", item.Title, item.Description)
		if city, ok := matchTextCity(text); ok {
			region = city
		}

		confidence := item.MisinformationConfidence
		if confidence == 0 {
			confidence = 0.5
		}

		status := model.Severity(item.SeverityLevel)
		if status == "" {
			status = model.SeverityMedium
		}

		result = append(result, model.RegionalFocus{
			Region:     region,
			Signal:     item.Title,
			Confidence: fmt.Sprintf("%.2f", confidence),
			Status:     status,
		})
	}

	return result
}
