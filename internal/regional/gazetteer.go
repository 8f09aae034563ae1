// Package regional 实现区域信号聚合流水线
// 数据流: 信号存储 -> 区域提取 -> 按区域聚合 -> (无实时数据时样本兜底)
package regional

import "strings"

// DefaultRegion 无法定位时的兜底区域 (邦名)
const DefaultRegion = "Maharashtra"

// cityGazetteer 城市名固定字典
// 区域提取和样本兜底共用，顺序即匹配优先级
var cityGazetteer = []string{
	"Mumbai",
	"Pune",
	"Nagpur",
	"Kolhapur",
	"Satara",
	"Thane",
	"Aurangabad",
}

// matchKeywordCity 在关键词列表中查找城市名
// 关键词包含城市名即命中 (不区分大小写)，返回命中关键词的原文
func matchKeywordCity(keywords []string) (string, bool) {
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		for _, city := range cityGazetteer {
			if strings.Contains(lower, strings.ToLower(city)) {
				return keyword, true
			}
		}
	}
	return "", false
}

// matchTextCity 在整段文本中查找城市名
// 按字典顺序返回第一个出现在文本中的城市名本身
func matchTextCity(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, city := range cityGazetteer {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city, true
		}
	}
	return "", false
}
