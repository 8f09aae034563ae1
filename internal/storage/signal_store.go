package storage

import (
	"fmt"

	"gorm.io/gorm"

	"misinfoRadar/internal/model"
)

// ==========================================
// 信号查询存储
// 区域聚合流水线消费的只读查询面
// ==========================================

// SignalStore 信号数据查询器
// 不持有状态，可安全并发使用
type SignalStore struct {
	db *gorm.DB
}

// NewSignalStore 创建查询器实例
// db: 数据库连接，必须提前 Setup
func NewSignalStore(db *gorm.DB) *SignalStore {
	return &SignalStore{db: db}
}

// RecentActiveAlerts 查询最近的活跃告警
// 过滤 status = active，按创建时间倒序，最多 limit 条
func (s *SignalStore) RecentActiveAlerts(limit int) ([]model.Alert, error) {
	var alerts []model.Alert
	err := s.db.
		Where("status = ?", model.AlertStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("query alerts failed: %w", err)
	}
	return alerts, nil
}

// ContentItemsByID 按内容 id 批量查询内容
// 返回以 id 为键的映射，缺失的 id 不出现在结果中
func (s *SignalStore) ContentItemsByID(ids []string) (map[string]model.ContentItem, error) {
	result := make(map[string]model.ContentItem)
	if len(ids) == 0 {
		return result, nil
	}

	var items []model.ContentItem
	if err := s.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("query content items failed: %w", err)
	}

	for _, item := range items {
		result[item.ID] = item
	}
	return result, nil
}

// SourceTracesByContentID 按内容 id 批量查询传播溯源
// 同一内容存在多条溯源时后查到的覆盖先查到的 (与原始看板行为一致)
func (s *SignalStore) SourceTracesByContentID(ids []string) (map[string]model.SourceTrace, error) {
	result := make(map[string]model.SourceTrace)
	if len(ids) == 0 {
		return result, nil
	}

	var traces []model.SourceTrace
	if err := s.db.Where("content_id IN ?", ids).Find(&traces).Error; err != nil {
		return nil, fmt.Errorf("query source traces failed: %w", err)
	}

	for _, trace := range traces {
		if trace.ContentID != "" {
			result[trace.ContentID] = trace
		}
	}
	return result, nil
}

// ==========================================
// 演示数据写入
// 只供 seed 调试工具调用，生产路径不写库
// ==========================================

// InsertSignalRows 批量插入信号数据
func (s *SignalStore) InsertSignalRows(alerts []model.Alert, contents []model.ContentItem, traces []model.SourceTrace) error {
	if len(contents) > 0 {
		if err := s.db.CreateInBatches(contents, 100).Error; err != nil {
			return fmt.Errorf("insert content items failed: %w", err)
		}
	}
	if len(traces) > 0 {
		if err := s.db.CreateInBatches(traces, 100).Error; err != nil {
			return fmt.Errorf("insert source traces failed: %w", err)
		}
	}
	if len(alerts) > 0 {
		if err := s.db.CreateInBatches(alerts, 100).Error; err != nil {
			return fmt.Errorf("insert alerts failed: %w", err)
		}
	}
	return nil
}
