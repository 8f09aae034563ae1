package regional

import (
	"fmt"
	"sort"

	"misinfoRadar/internal/model"
)

const (
	// MaxRecentAlerts 参与聚合的最近活跃告警条数上限
	MaxRecentAlerts = 20
	// maxRegions 输出的区域条目上限
	maxRegions = 8
	// maxSignalLen 实时路径信号描述截断长度
	maxSignalLen = 60
	// defaultSignal 告警缺失标题时的兜底描述
	defaultSignal = "Misinformation detected"
	// defaultConfidence 内容不可解析时的兜底置信度
	defaultConfidence = "0.50"
)

// regionGroup 单个区域的聚合累加器
type regionGroup struct {
	region string
	// 该区域观测到的最高严重级别，初始为 low
	maxSeverity model.Severity
	// 代表性告警：该区域遇到的第一条 (输入按时间倒序，即最新一条)
	representative model.Alert
}

// Aggregate 按区域聚合告警
// alerts: 调用方保证已过滤 active、按创建时间倒序、不超过 MaxRecentAlerts 条
// contents / traces: 按内容 id 解析好的关联数据
// 输出按最高严重级别降序 (同级保持分组插入顺序)，最多 maxRegions 条
// 空输入产生空输出，由上层决定是否走样本兜底
func Aggregate(alerts []model.Alert, contents map[string]model.ContentItem, traces map[string]model.SourceTrace) []model.RegionalFocus {
	if len(alerts) == 0 {
		return nil
	}

	// 1. 按区域分组
	// map 负责查找，order 切片保留插入顺序，保证"第一条告警作代表"可复现
	groups := make(map[string]*regionGroup)
	var order []string

	for _, alert := range alerts {
		content := lookupContent(contents, alert.ContentID)
		trace := lookupTrace(traces, alert.ContentID)

		region := ExtractRegion(content, trace)

		group, ok := groups[region]
		if !ok {
			group = &regionGroup{
				region:         region,
				maxSeverity:    model.SeverityLow,
				representative: alert,
			}
			groups[region] = group
			order = append(order, region)
		}

		// 2. 累计最高严重级别 (未知级别权重 0，永远不会抬高)
		if alert.Severity.Rank() > group.maxSeverity.Rank() {
			group.maxSeverity = alert.Severity
		}
	}

	// 3. 派生展示条目
	result := make([]model.RegionalFocus, 0, len(order))
	for _, region := range order {
		group := groups[region]
		rep := group.representative

		content := lookupContent(contents, rep.ContentID)
		trace := lookupTrace(traces, rep.ContentID)

		result = append(result, model.RegionalFocus{
			Region:     region,
			Signal:     deriveSignal(rep, trace),
			Confidence: deriveConfidence(rep, content),
			Status:     group.maxSeverity,
		})
	}

	// 4. 按严重级别降序排序
	// 稳定排序保证同级条目维持分组插入顺序
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Status.Rank() > result[j].Status.Rank()
	})

	// 5. 截断到前 maxRegions 条
	if len(result) > maxRegions {
		result = result[:maxRegions]
	}

	return result
}

// deriveSignal 从代表性告警派生信号描述
// 前缀互斥，检查顺序: 机器人放大 > 协同造势 > 深度伪造
// 超过 maxSignalLen 字符时截断并追加省略号
func deriveSignal(alert model.Alert, trace *model.SourceTrace) string {
	signal := alert.Title
	if signal == "" {
		signal = defaultSignal
	}

	switch {
	case trace != nil && trace.SpreadPattern == model.SpreadPatternBotAmplified:
		signal = "Bot amplification: " + signal
	case trace != nil && trace.SpreadPattern == model.SpreadPatternCoordinated:
		signal = "Coordinated campaign: " + signal
	case alert.AlertType == model.AlertTypeDeepfake:
		signal = "Deepfake: " + signal
	}

	if runes := []rune(signal); len(runes) > maxSignalLen {
		signal = string(runes[:maxSignalLen]) + "..."
	}
	return signal
}

// deriveConfidence 从关联内容派生置信度
// 仅当告警关联了内容且内容行可解析时取内容置信度 (零值兜底 0.5)
func deriveConfidence(alert model.Alert, content *model.ContentItem) string {
	if alert.ContentID == "" || content == nil {
		return defaultConfidence
	}

	confidence := content.MisinformationConfidence
	if confidence == 0 {
		confidence = 0.5
	}
	return fmt.Sprintf("%.2f", confidence)
}

// lookupContent 映射查找，缺失返回 nil
func lookupContent(contents map[string]model.ContentItem, id string) *model.ContentItem {
	if id == "" {
		return nil
	}
	if item, ok := contents[id]; ok {
		return &item
	}
	return nil
}

// lookupTrace 映射查找，缺失返回 nil
func lookupTrace(traces map[string]model.SourceTrace, id string) *model.SourceTrace {
	if id == "" {
		return nil
	}
	if trace, ok := traces[id]; ok {
		return &trace
	}
	return nil
}
