package model

import "time"

// ==========================================
// 告警记录 - 数据模型
// ==========================================

// Alert 告警记录完整格式
// 由上游检测流程写入，本系统只读
type Alert struct {
	// 告警 id，具有唯一性
	ID string `json:"id" gorm:"type:varchar(64);primaryKey;uniqueIndex"`
	// 告警标题，展示用摘要
	Title string `json:"title" gorm:"type:varchar(256)"`
	// 告警正文描述
	Message string `json:"message" gorm:"type:text"`
	// 严重级别: critical / high / medium / low
	Severity Severity `json:"severity" gorm:"type:varchar(16);index"`
	// 告警类型 (e.g., deepfake)
	AlertType string `json:"alert_type" gorm:"type:varchar(32)"`
	// 关联内容 id，可为空
	ContentID string `json:"content_id" gorm:"type:varchar(64);index"`
	// 告警状态: active / resolved
	Status string `json:"status" gorm:"type:varchar(16);index"`
	// 告警产生时间
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName 自定义表名
func (Alert) TableName() string {
	return "alerts"
}
