package model

// ==========================================
// 被监测内容 - 数据模型
// ==========================================

// ContentItem 被监测的媒体/文本内容
// 携带上游计算的虚假信息置信度，本系统只读
type ContentItem struct {
	// 内容 id，具有唯一性
	ID string `json:"id" gorm:"type:varchar(64);primaryKey;uniqueIndex"`
	// 内容标题
	Title string `json:"title" gorm:"type:varchar(256)"`
	// 关键词列表 (JSON 数组)，用于城市名匹配
	Keywords StringList `json:"keywords" gorm:"type:text"`
	// 地理传播标注 (JSON 数组)
	GeographicSpread GeoSpread `json:"geographic_spread" gorm:"type:text"`
	// 虚假信息置信度，取值 [0,1]
	MisinformationConfidence float64 `json:"misinformation_confidence" gorm:"type:real"`
}

// TableName 自定义表名
func (ContentItem) TableName() string {
	return "content_items"
}
