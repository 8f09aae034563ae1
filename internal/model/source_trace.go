package model

// ==========================================
// 传播溯源记录 - 数据模型
// ==========================================

// SourceTrace 内容传播溯源记录
// 记录内容在各区域的扩散情况和传播模式，本系统只读
type SourceTrace struct {
	// 自增主键，溯源记录本身没有业务 id
	ID uint `json:"-" gorm:"primaryKey;autoIncrement"`
	// 关联内容 id
	ContentID string `json:"content_id" gorm:"type:varchar(64);index"`
	// 地理传播列表 (JSON 数组)，第一个元素视为主要传播区域
	GeographicSpread GeoSpread `json:"geographic_spread" gorm:"type:text"`
	// 传播模式: bot_amplified / coordinated / organic
	SpreadPattern string `json:"spread_pattern" gorm:"type:varchar(32)"`
}

// TableName 自定义表名
func (SourceTrace) TableName() string {
	return "source_traces"
}
