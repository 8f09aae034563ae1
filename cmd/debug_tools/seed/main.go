// Package main 演示数据填充调试工具
// 向信号数据库写入一批合成的告警/内容/溯源数据，供本地联调区域聚合接口
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"misinfoRadar/internal/config"
	"misinfoRadar/internal/model"
	"misinfoRadar/internal/storage"
)

// ==========================================
// 命令行参数
// ==========================================

var (
	configPath string
	alertCount int
	seed       int64

	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
)

// ==========================================
// 合成数据素材
// ==========================================

var (
	regions = []string{"Mumbai", "Pune", "Nagpur", "Kolhapur", "Satara", "Thane", "Aurangabad"}

	severities = []model.Severity{
		model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityCritical,
	}

	patterns = []string{
		model.SpreadPatternOrganic, model.SpreadPatternCoordinated, model.SpreadPatternBotAmplified,
	}

	titles = []string{
		"Fake video claims election fraud",
		"Doctored image of local politician",
		"False health advisory circulating",
		"Fabricated quote attributed to official",
		"Misleading flood damage footage",
		"Old clip reshared as breaking news",
	}
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "向信号数据库写入合成演示数据",
	RunE:  runSeed,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yml", "配置文件路径")
	rootCmd.Flags().IntVarP(&alertCount, "count", "n", 15, "生成的告警条数")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "随机种子 (0 = 当前时间)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}

	cfg := config.Get()
	if err := storage.Setup(storage.Options{
		DataDir:         cfg.Agent.DataDir,
		FileName:        cfg.Database.FileName,
		LogLevel:        cfg.Database.LogLevel,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		JournalMode:     cfg.Database.JournalMode,
		Synchronous:     cfg.Database.Synchronous,
		TempStore:       cfg.Database.TempStore,
		ForeignKeys:     cfg.Database.ForeignKeys,
	}); err != nil {
		return fmt.Errorf("数据库初始化失败: %w", err)
	}
	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("建表失败: %w", err)
	}

	db, err := storage.GetDB()
	if err != nil {
		return err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	alerts, contents, traces := generate(rng)

	store := storage.NewSignalStore(db)
	if err := store.InsertSignalRows(alerts, contents, traces); err != nil {
		return fmt.Errorf("写入失败: %w", err)
	}

	colorGreen.Println("演示数据写入完成")
	colorCyan.Printf("  告警: %d 条\n", len(alerts))
	colorCyan.Printf("  内容: %d 条\n", len(contents))
	colorCyan.Printf("  溯源: %d 条\n", len(traces))
	colorYellow.Printf("  随机种子: %d (可用 --seed 复现)\n", seed)
	return nil
}

// generate 生成一批相互关联的信号数据
// 每条告警关联一条内容，约 2/3 的内容带溯源记录
func generate(rng *rand.Rand) ([]model.Alert, []model.ContentItem, []model.SourceTrace) {
	var alerts []model.Alert
	var contents []model.ContentItem
	var traces []model.SourceTrace

	now := time.Now()

	for i := 0; i < alertCount; i++ {
		contentID := uuid.NewString()
		region := regions[rng.Intn(len(regions))]
		title := titles[rng.Intn(len(titles))]

		contents = append(contents, model.ContentItem{
			ID:                       contentID,
			Title:                    title,
			Keywords:                 model.StringList{region, "misinformation"},
			MisinformationConfidence: 0.5 + rng.Float64()*0.5,
		})

		if rng.Intn(3) != 0 {
			traces = append(traces, model.SourceTrace{
				ContentID:        contentID,
				GeographicSpread: model.GeoSpread{{Region: region}},
				SpreadPattern:    patterns[rng.Intn(len(patterns))],
			})
		}

		alerts = append(alerts, model.Alert{
			ID:        uuid.NewString(),
			Title:     title,
			Message:   fmt.Sprintf("Detected in %s", region),
			Severity:  severities[rng.Intn(len(severities))],
			ContentID: contentID,
			Status:    model.AlertStatusActive,
			CreatedAt: now.Add(-time.Duration(rng.Intn(120)) * time.Minute),
		})
	}

	return alerts, contents, traces
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
