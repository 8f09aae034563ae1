// Package model
package model

// ==========================================
// 告警严重级别枚举
// ==========================================

// Severity 告警严重级别 (字符型)
// 必须严格匹配上游检测系统写入的取值
type Severity string

const (
	SeverityCritical Severity = "critical" // 紧急级
	SeverityHigh     Severity = "high"     // 严重级
	SeverityMedium   Severity = "medium"   // 关注级
	SeverityLow      Severity = "low"      // 一般级
)

// SeverityRank 严重级别权重映射
// 排序比较和按区域取最高级别共用这一张表，禁止在别处重复定义
var SeverityRank = map[Severity]int{
	SeverityCritical: 4,
	SeverityHigh:     3,
	SeverityMedium:   2,
	SeverityLow:      1,
}

// Rank 返回严重级别权重
// 未知级别返回 0，永远不会超过任何合法级别
func (s Severity) Rank() int {
	return SeverityRank[s]
}

// ==========================================
// 告警类型枚举
// ==========================================

// AlertType 告警类型 (字符型)
// 上游检测系统可能扩展新类型，这里只列出参与展示逻辑的值
const (
	AlertTypeDeepfake = "deepfake" // 深度伪造视频
)

// ==========================================
// 告警状态枚举
// ==========================================

// AlertStatus 告警状态
const (
	AlertStatusActive   = "active"   // 活跃告警，参与区域聚合
	AlertStatusResolved = "resolved" // 已处置
)

// ==========================================
// 传播模式枚举
// ==========================================

// SpreadPattern 内容传播模式
const (
	SpreadPatternBotAmplified = "bot_amplified" // 机器人放大传播
	SpreadPatternCoordinated  = "coordinated"   // 协同造势传播
	SpreadPatternOrganic      = "organic"       // 自然传播
)
