package model

import (
	"database/sql/driver"
	"encoding/json"
)

// ==========================================
// JSON 列类型
// 数据源把列表字段存成 JSON 文本，这里统一做序列化适配
// 解码失败一律按"字段缺失"处理 (置空)，不向流水线传播错误
// ==========================================

// StringList 字符串列表 JSON 列
type StringList []string

// Scan 实现 sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	*l = nil
	raw, ok := asBytes(value)
	if !ok {
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		// 脏数据按缺失处理
		return nil
	}
	*l = items
	return nil
}

// Value 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// GeoPoint 地理传播点
// 上游只保证 region 字段存在
type GeoPoint struct {
	Region string `json:"region"`
}

// GeoSpread 地理传播列表 JSON 列
type GeoSpread []GeoPoint

// Scan 实现 sql.Scanner
func (g *GeoSpread) Scan(value interface{}) error {
	*g = nil
	raw, ok := asBytes(value)
	if !ok {
		return nil
	}

	var points []GeoPoint
	if err := json.Unmarshal(raw, &points); err != nil {
		// 脏数据按缺失处理
		return nil
	}
	*g = points
	return nil
}

// Value 实现 driver.Valuer
func (g GeoSpread) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// asBytes 把数据库原始值转成字节串
func asBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case string:
		if v == "" {
			return nil, false
		}
		return []byte(v), true
	default:
		return nil, false
	}
}
