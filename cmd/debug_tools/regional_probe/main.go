// Package main 区域聚合调试工具
// 直接对本地信号数据库跑一遍区域聚合流水线并打印结果，不经过 HTTP 层
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"misinfoRadar/internal/config"
	"misinfoRadar/internal/model"
	"misinfoRadar/internal/regional"
	"misinfoRadar/internal/storage"
)

// ==========================================
// 命令行参数
// ==========================================

var (
	configPath   string
	regionFilter string

	colorRed    = color.New(color.FgRed, color.Bold)
	colorYellow = color.New(color.FgYellow, color.Bold)
	colorBlue   = color.New(color.FgBlue)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "regional-probe",
	Short: "执行一次区域聚合并打印结果",
	RunE:  runProbe,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yml", "配置文件路径")
	rootCmd.Flags().StringVarP(&regionFilter, "region", "r", "", "区域过滤 (不区分大小写的包含匹配)")
}

func runProbe(cmd *cobra.Command, args []string) error {
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

	svc := regional.NewService(storage.NewSignalStore(db))
	regions, live := svc.Snapshot()
	regions = regional.FilterByRegion(regions, regionFilter)

	printResult(regions, live)
	return nil
}

// printResult 打印聚合结果
// 严重级别用颜色区分: critical 红 / high 黄 / medium 蓝 / low 绿
func printResult(regions []model.RegionalFocus, live bool) {
	source := "样本兜底"
	if live {
		source = "实时聚合"
	}
	colorCyan.Printf("数据来源: %s, 共 %d 个区域\n", source, len(regions))
	fmt.Println(strings.Repeat("-", 80))

	if len(regions) == 0 {
		fmt.Println("(过滤后无结果)")
		return
	}

	for i, r := range regions {
		severityColor(r.Status).Printf("%d. [%s] %s\n", i+1, strings.ToUpper(string(r.Status)), r.Region)
		fmt.Printf("   信号: %s\n", r.Signal)
		fmt.Printf("   置信度: %s\n", r.Confidence)
	}
}

func severityColor(s model.Severity) *color.Color {
	switch s {
	case model.SeverityCritical:
		return colorRed
	case model.SeverityHigh:
		return colorYellow
	case model.SeverityMedium:
		return colorBlue
	default:
		return colorGreen
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
