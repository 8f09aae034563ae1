package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"misinfoRadar/internal/model"
)

// fakeRegional RegionalSource 测试假实现
type fakeRegional struct {
	regions []model.RegionalFocus
	live    bool
}

func (f *fakeRegional) Snapshot() ([]model.RegionalFocus, bool) {
	return f.regions, f.live
}

// fakeHashtags HashtagSource 测试假实现
type fakeHashtags struct {
	insights []model.HashtagInsight
	err      error
}

func (f *fakeHashtags) FetchHashtags(ctx context.Context, query string) ([]model.HashtagInsight, error) {
	return f.insights, f.err
}

func doRequest(handler *Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	New(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// TestYouTubeHashtags_MissingQuery 缺少 query 参数返回 400
func TestYouTubeHashtags_MissingQuery(t *testing.T) {
	handler := &Handler{Hashtags: &fakeHashtags{}, Regional: &fakeRegional{}}

	rec := doRequest(handler, "/api/youtube/hashtags")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("期望 400, 实际 %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体不是合法 JSON: %v", err)
	}
	if body["error"] != "Missing query parameter: query" {
		t.Errorf("错误消息不符: %q", body["error"])
	}
}

// TestYouTubeHashtags_Success 正常返回聚合结果
func TestYouTubeHashtags_Success(t *testing.T) {
	handler := &Handler{
		Hashtags: &fakeHashtags{insights: []model.HashtagInsight{
			{Tag: "#Election", Occurrences: 2, VideoCount: 2},
		}},
		Regional: &fakeRegional{},
	}

	rec := doRequest(handler, "/api/youtube/hashtags?query=election")

	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", rec.Code)
	}

	var body struct {
		Query    string                 `json:"query"`
		Hashtags []model.HashtagInsight `json:"hashtags"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	if body.Query != "election" {
		t.Errorf("query 回显不符: %q", body.Query)
	}
	if len(body.Hashtags) != 1 || body.Hashtags[0].Tag != "#Election" {
		t.Errorf("聚合结果不符: %+v", body.Hashtags)
	}
}

// TestYouTubeHashtags_EmptyResult 空结果序列化为 [] 而非 null
func TestYouTubeHashtags_EmptyResult(t *testing.T) {
	handler := &Handler{Hashtags: &fakeHashtags{}, Regional: &fakeRegional{}}

	rec := doRequest(handler, "/api/youtube/hashtags?query=nothing")

	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"hashtags":[]`) {
		t.Errorf("空结果应序列化为 [], 实际: %s", rec.Body.String())
	}
}

// TestYouTubeHashtags_SourceError 来源不可用时返回 500
func TestYouTubeHashtags_SourceError(t *testing.T) {
	handler := &Handler{
		Hashtags: &fakeHashtags{err: errors.New("source unavailable")},
		Regional: &fakeRegional{},
	}

	rec := doRequest(handler, "/api/youtube/hashtags?query=election")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("期望 500, 实际 %d", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Failed to fetch hashtags" {
		t.Errorf("错误消息不符: %q", body["error"])
	}
}

// TestRegionalFocus_Live 实时路径标记 source=live
func TestRegionalFocus_Live(t *testing.T) {
	handler := &Handler{
		Regional: &fakeRegional{
			regions: []model.RegionalFocus{
				{Region: "Mumbai", Signal: "Deepfake video", Confidence: "0.92", Status: model.SeverityCritical},
				{Region: "Pune", Signal: "Bot amplification: Fake news", Confidence: "0.50", Status: model.SeverityHigh},
			},
			live: true,
		},
		Hashtags: &fakeHashtags{},
	}

	rec := doRequest(handler, "/api/regional-focus")

	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", rec.Code)
	}

	var body struct {
		Regions []model.RegionalFocus `json:"regions"`
		Source  string                `json:"source"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	if body.Source != "live" {
		t.Errorf("期望 source=live, 实际 %q", body.Source)
	}
	if len(body.Regions) != 2 || body.Regions[0].Region != "Mumbai" {
		t.Errorf("区域列表不符: %+v", body.Regions)
	}
}

// TestRegionalFocus_SampleSource 兜底路径标记 source=sample
func TestRegionalFocus_SampleSource(t *testing.T) {
	handler := &Handler{
		Regional: &fakeRegional{
			regions: []model.RegionalFocus{{Region: "Maharashtra", Signal: "Sample", Confidence: "0.50", Status: model.SeverityMedium}},
			live:    false,
		},
		Hashtags: &fakeHashtags{},
	}

	rec := doRequest(handler, "/api/regional-focus")

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["source"] != "sample" {
		t.Errorf("期望 source=sample, 实际 %v", body["source"])
	}
}

// TestRegionalFocus_Filter region 参数按包含关系过滤
func TestRegionalFocus_Filter(t *testing.T) {
	handler := &Handler{
		Regional: &fakeRegional{
			regions: []model.RegionalFocus{
				{Region: "Mumbai"},
				{Region: "Navi Mumbai"},
				{Region: "Pune"},
			},
			live: true,
		},
		Hashtags: &fakeHashtags{},
	}

	rec := doRequest(handler, "/api/regional-focus?region=mumbai")

	var body struct {
		Regions []model.RegionalFocus `json:"regions"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Regions) != 2 {
		t.Errorf("'mumbai' 应命中 2 条, 实际 %d: %+v", len(body.Regions), body.Regions)
	}

	// 无命中时返回空数组
	rec = doRequest(handler, "/api/regional-focus?region=Delhi")
	if !strings.Contains(rec.Body.String(), `"regions":[]`) {
		t.Errorf("无命中应序列化为 [], 实际: %s", rec.Body.String())
	}
}

// TestHealth 健康检查
func TestHealth(t *testing.T) {
	handler := &Handler{Regional: &fakeRegional{}, Hashtags: &fakeHashtags{}}

	rec := doRequest(handler, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("健康检查应返回 ok=true: %+v", body)
	}
}

// TestMetricsEndpoint /metrics 暴露 Prometheus 指标
func TestMetricsEndpoint(t *testing.T) {
	handler := &Handler{Regional: &fakeRegional{}, Hashtags: &fakeHashtags{}}

	rec := doRequest(handler, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("期望 200, 实际 %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("指标输出不应为空")
	}
}
