package regional

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"misinfoRadar/internal/model"
)

// TestAggregate_SpecExample 两条告警跨两个区域的基准场景
// c1 有溯源 (bot_amplified, Pune)；c2 无溯源，关键词含 Mumbai
// 期望 Mumbai(critical) 排在 Pune(high) 之前
func TestAggregate_SpecExample(t *testing.T) {
	t2 := time.Now()
	t1 := t2.Add(-time.Hour)

	alerts := []model.Alert{
		{ID: "a1", Title: "Fake video spreads", Severity: model.SeverityHigh, AlertType: "deepfake", ContentID: "c1", CreatedAt: t2},
		{ID: "a2", Title: "Riot rumor", Severity: model.SeverityCritical, ContentID: "c2", CreatedAt: t1},
	}
	contents := map[string]model.ContentItem{
		"c2": {ID: "c2", Keywords: model.StringList{"Mumbai", "unrest"}},
	}
	traces := map[string]model.SourceTrace{
		"c1": {ContentID: "c1", GeographicSpread: model.GeoSpread{{Region: "Pune"}}, SpreadPattern: model.SpreadPatternBotAmplified},
	}

	got := Aggregate(alerts, contents, traces)

	if len(got) != 2 {
		t.Fatalf("期望 2 条区域记录, 实际 %d", len(got))
	}

	// Mumbai 严重级别更高，排第一
	if got[0].Region != "Mumbai" || got[0].Signal != "Riot rumor" ||
		got[0].Status != model.SeverityCritical || got[0].Confidence != "0.50" {
		t.Errorf("第一条记录不符: %+v", got[0])
	}
	if got[1].Region != "Pune" || got[1].Signal != "Bot amplification: Fake video spreads" ||
		got[1].Status != model.SeverityHigh || got[1].Confidence != "0.50" {
		t.Errorf("第二条记录不符: %+v", got[1])
	}
}

// TestAggregate_EmptyInput 空输入产生空输出，不报错
func TestAggregate_EmptyInput(t *testing.T) {
	if got := Aggregate(nil, nil, nil); len(got) != 0 {
		t.Errorf("空输入应返回空列表, 实际 %v", got)
	}
}

// TestAggregate_RegionDedup 同区域多条告警合并为一条
// 代表性告警为该区域遇到的第一条 (即最新一条)，级别取最高
func TestAggregate_RegionDedup(t *testing.T) {
	alerts := []model.Alert{
		{ID: "a1", Title: "Newest alert", Severity: model.SeverityLow, ContentID: "c1"},
		{ID: "a2", Title: "Older alert", Severity: model.SeverityCritical, ContentID: "c1"},
		{ID: "a3", Title: "Oldest alert", Severity: model.SeverityMedium, ContentID: "c1"},
	}
	traces := map[string]model.SourceTrace{
		"c1": {ContentID: "c1", GeographicSpread: model.GeoSpread{{Region: "Nagpur"}}},
	}

	got := Aggregate(alerts, nil, traces)

	if len(got) != 1 {
		t.Fatalf("同区域应合并为 1 条, 实际 %d", len(got))
	}
	// 信号来自第一条告警，级别来自第二条
	if got[0].Signal != "Newest alert" {
		t.Errorf("代表性告警应为第一条, 实际信号 '%s'", got[0].Signal)
	}
	if got[0].Status != model.SeverityCritical {
		t.Errorf("级别应取最高 critical, 实际 '%s'", got[0].Status)
	}
}

// TestAggregate_MaxRegions 超过 8 个区域时截断
func TestAggregate_MaxRegions(t *testing.T) {
	var alerts []model.Alert
	traces := map[string]model.SourceTrace{}

	for i := 0; i < 12; i++ {
		cid := fmt.Sprintf("c%d", i)
		alerts = append(alerts, model.Alert{
			ID:        fmt.Sprintf("a%d", i),
			Title:     fmt.Sprintf("Alert %d", i),
			Severity:  model.SeverityMedium,
			ContentID: cid,
		})
		traces[cid] = model.SourceTrace{
			ContentID:        cid,
			GeographicSpread: model.GeoSpread{{Region: fmt.Sprintf("Region-%d", i)}},
		}
	}

	got := Aggregate(alerts, nil, traces)

	if len(got) != 8 {
		t.Fatalf("期望截断到 8 条, 实际 %d", len(got))
	}
	// 同级条目保持插入顺序，截断保留前 8 个区域
	for i, r := range got {
		expected := fmt.Sprintf("Region-%d", i)
		if r.Region != expected {
			t.Errorf("第 %d 条期望区域 '%s', 实际 '%s'", i, expected, r.Region)
		}
	}
}

// TestAggregate_NoDuplicateRegions 输出中区域不重复
func TestAggregate_NoDuplicateRegions(t *testing.T) {
	alerts := []model.Alert{
		{ID: "a1", Title: "One", Severity: model.SeverityHigh, ContentID: "c1"},
		{ID: "a2", Title: "Two", Severity: model.SeverityLow, ContentID: "c2"},
		{ID: "a3", Title: "Three", Severity: model.SeverityCritical, ContentID: "c1"},
	}
	traces := map[string]model.SourceTrace{
		"c1": {ContentID: "c1", GeographicSpread: model.GeoSpread{{Region: "Thane"}}},
		"c2": {ContentID: "c2", GeographicSpread: model.GeoSpread{{Region: "Satara"}}},
	}

	got := Aggregate(alerts, nil, traces)

	seen := make(map[string]bool)
	for _, r := range got {
		if seen[r.Region] {
			t.Errorf("区域 '%s' 重复出现", r.Region)
		}
		seen[r.Region] = true
	}
}

// TestAggregate_SeverityNonIncreasing 输出按严重级别非递增排列
func TestAggregate_SeverityNonIncreasing(t *testing.T) {
	alerts := []model.Alert{
		{ID: "a1", Severity: model.SeverityLow, ContentID: "c1"},
		{ID: "a2", Severity: model.SeverityCritical, ContentID: "c2"},
		{ID: "a3", Severity: model.SeverityMedium, ContentID: "c3"},
		{ID: "a4", Severity: model.SeverityHigh, ContentID: "c4"},
	}
	traces := map[string]model.SourceTrace{}
	for i, region := range []string{"R1", "R2", "R3", "R4"} {
		cid := fmt.Sprintf("c%d", i+1)
		traces[cid] = model.SourceTrace{ContentID: cid, GeographicSpread: model.GeoSpread{{Region: region}}}
	}

	got := Aggregate(alerts, nil, traces)

	for i := 1; i < len(got); i++ {
		if got[i-1].Status.Rank() < got[i].Status.Rank() {
			t.Errorf("第 %d 条 (%s) 级别低于第 %d 条 (%s)", i-1, got[i-1].Status, i, got[i].Status)
		}
	}
}

// TestDeriveSignal_PrefixPriority 前缀互斥且按优先级选取
func TestDeriveSignal_PrefixPriority(t *testing.T) {
	alert := model.Alert{Title: "Fake clip", AlertType: model.AlertTypeDeepfake}

	// 溯源模式优先于告警类型
	botTrace := &model.SourceTrace{SpreadPattern: model.SpreadPatternBotAmplified}
	if got := deriveSignal(alert, botTrace); got != "Bot amplification: Fake clip" {
		t.Errorf("bot_amplified 前缀不符: '%s'", got)
	}

	coordTrace := &model.SourceTrace{SpreadPattern: model.SpreadPatternCoordinated}
	if got := deriveSignal(alert, coordTrace); got != "Coordinated campaign: Fake clip" {
		t.Errorf("coordinated 前缀不符: '%s'", got)
	}

	// 无溯源模式时退到告警类型
	organicTrace := &model.SourceTrace{SpreadPattern: model.SpreadPatternOrganic}
	if got := deriveSignal(alert, organicTrace); got != "Deepfake: Fake clip" {
		t.Errorf("deepfake 前缀不符: '%s'", got)
	}

	// 无任何匹配时不加前缀
	plain := model.Alert{Title: "Plain rumor"}
	if got := deriveSignal(plain, nil); got != "Plain rumor" {
		t.Errorf("不应加前缀: '%s'", got)
	}
}

// TestDeriveSignal_Truncation 超长信号截断为 60 字符 + 省略号
func TestDeriveSignal_Truncation(t *testing.T) {
	longTitle := strings.Repeat("x", 100)
	got := deriveSignal(model.Alert{Title: longTitle}, nil)

	if len([]rune(got)) != maxSignalLen+3 {
		t.Errorf("截断后长度应为 %d, 实际 %d", maxSignalLen+3, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("截断后应以省略号结尾: '%s'", got)
	}

	// 刚好 60 字符不截断
	exact := strings.Repeat("y", maxSignalLen)
	if got := deriveSignal(model.Alert{Title: exact}, nil); got != exact {
		t.Errorf("60 字符不应截断: '%s'", got)
	}
}

// TestDeriveSignal_MissingTitle 缺失标题时使用兜底描述
func TestDeriveSignal_MissingTitle(t *testing.T) {
	if got := deriveSignal(model.Alert{}, nil); got != defaultSignal {
		t.Errorf("期望兜底描述 '%s', 实际 '%s'", defaultSignal, got)
	}
}

// TestDeriveConfidence 置信度派生规则
func TestDeriveConfidence(t *testing.T) {
	// 内容可解析：取内容置信度
	content := &model.ContentItem{ID: "c1", MisinformationConfidence: 0.87}
	if got := deriveConfidence(model.Alert{ContentID: "c1"}, content); got != "0.87" {
		t.Errorf("期望 '0.87', 实际 '%s'", got)
	}

	// 内容置信度为零值：兜底 0.50
	zero := &model.ContentItem{ID: "c1"}
	if got := deriveConfidence(model.Alert{ContentID: "c1"}, zero); got != "0.50" {
		t.Errorf("零值应兜底 '0.50', 实际 '%s'", got)
	}

	// 告警未关联内容
	if got := deriveConfidence(model.Alert{}, nil); got != defaultConfidence {
		t.Errorf("期望 '%s', 实际 '%s'", defaultConfidence, got)
	}

	// 关联了内容但行不可解析
	if got := deriveConfidence(model.Alert{ContentID: "c9"}, nil); got != defaultConfidence {
		t.Errorf("期望 '%s', 实际 '%s'", defaultConfidence, got)
	}
}
