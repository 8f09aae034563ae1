package regional

import (
	"strings"

	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/metrics"
	"misinfoRadar/internal/model"
)

// AlertSource 信号数据来源
// 由 storage.SignalStore 实现，测试时可注入假实现
type AlertSource interface {
	RecentActiveAlerts(limit int) ([]model.Alert, error)
	ContentItemsByID(ids []string) (map[string]model.ContentItem, error)
	SourceTracesByContentID(ids []string) (map[string]model.SourceTrace, error)
}

// Service 区域聚合服务
// 每次 Snapshot 读取一份新快照、计算、丢弃，不跨请求共享状态
type Service struct {
	source AlertSource
}

// NewService 创建区域聚合服务
func NewService(source AlertSource) *Service {
	return &Service{source: source}
}

// Snapshot 执行一次完整的区域聚合
// 返回区域列表和是否为实时数据 (false 表示样本兜底)
// 数据源任何失败都降级为兜底，不向调用方传播错误——
// 看板宁可展示样本数据也不能因为某个功能故障而报错
func (s *Service) Snapshot() ([]model.RegionalFocus, bool) {
	// 1. 拉取最近活跃告警
	alerts, err := s.source.RecentActiveAlerts(MaxRecentAlerts)
	if err != nil {
		logger.Error("告警查询失败，降级为样本数据", "err", err)
		return s.fallback(), false
	}

	if len(alerts) == 0 {
		logger.Debug("无活跃告警，使用样本数据")
		return s.fallback(), false
	}

	// 2. 解析关联的内容和溯源
	// 单项查询失败只记日志，用空映射继续 (条目会落到默认值)
	ids := collectContentIDs(alerts)

	contents, err := s.source.ContentItemsByID(ids)
	if err != nil {
		logger.Error("内容查询失败，继续使用默认值", "err", err)
		contents = map[string]model.ContentItem{}
	}

	traces, err := s.source.SourceTracesByContentID(ids)
	if err != nil {
		logger.Error("溯源查询失败，继续使用默认值", "err", err)
		traces = map[string]model.SourceTrace{}
	}

	// 3. 聚合
	regions := Aggregate(alerts, contents, traces)
	if len(regions) == 0 {
		return s.fallback(), false
	}

	logger.Info("区域聚合完成", "alerts", len(alerts), "regions", len(regions))
	return regions, true
}

// fallback 样本兜底路径
func (s *Service) fallback() []model.RegionalFocus {
	metrics.RegionalFallbackTotal.Inc()
	return FallbackRegions(SampleItems())
}

// collectContentIDs 收集去重后的非空内容 id
func collectContentIDs(alerts []model.Alert) []string {
	seen := make(map[string]bool, len(alerts))
	var ids []string
	for _, alert := range alerts {
		if alert.ContentID == "" || seen[alert.ContentID] {
			continue
		}
		seen[alert.ContentID] = true
		ids = append(ids, alert.ContentID)
	}
	return ids
}

// FilterByRegion 按区域名过滤
// selected 为空或 "All" 时不过滤；匹配规则为不区分大小写的包含关系
// (对应看板上的区域下拉筛选)
func FilterByRegion(regions []model.RegionalFocus, selected string) []model.RegionalFocus {
	if selected == "" || strings.EqualFold(selected, "All") {
		return regions
	}

	needle := strings.ToLower(selected)
	var result []model.RegionalFocus
	for _, r := range regions {
		if strings.Contains(strings.ToLower(r.Region), needle) {
			result = append(result, r)
		}
	}
	return result
}
