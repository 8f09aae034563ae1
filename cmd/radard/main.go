package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"misinfoRadar/internal/config"
	"misinfoRadar/internal/logger"
	"misinfoRadar/internal/regional"
	"misinfoRadar/internal/server"
	"misinfoRadar/internal/storage"
	"misinfoRadar/internal/youtube"
)

// ==========================================
// 参数解析
// ==========================================

// parseArgs 解析命令行参数
func parseArgs() string {
	configPath := flag.String("c", "configs/config.yml", "配置文件路径")
	flag.Parse()
	return *configPath
}

// ==========================================
// 配置加载
// ==========================================

// loadConfig 加载配置文件
func loadConfig(configPath string) error {
	fmt.Printf("正在加载配置文件: %s\n", configPath)
	if err := config.LoadConfig(configPath); err != nil {
		return fmt.Errorf("加载配置文件失败: %v", err)
	}
	fmt.Printf("配置文件加载成功: %s\n", configPath)
	return nil
}

// ==========================================
// 基础设施初始化
// ==========================================

// initLogger 初始化日志系统
func initLogger() error {
	cfg := config.Get()
	fmt.Println("正在初始化日志系统...")
	if err := logger.Setup(logger.Options{
		Level:      cfg.Agent.LogLevel,
		File:       cfg.Agent.LogFile,
		MaxSize:    cfg.Agent.LogMaxSize,
		MaxBackups: cfg.Agent.LogMaxBackups,
		MaxAge:     cfg.Agent.LogMaxAge,
		Compress:   cfg.Agent.LogCompress,
		Stdout:     cfg.Agent.LogStdout,
	}); err != nil {
		return fmt.Errorf("日志系统初始化失败: %w", err)
	}
	logger.Info("Service initializing")
	return nil
}

// initDatabase 初始化数据库并建表
func initDatabase() error {
	fmt.Println("正在初始化数据库...")
	cfg := config.Get()
	dbCfg := cfg.Database

	if err := storage.Setup(storage.Options{
		DataDir:         cfg.Agent.DataDir,
		FileName:        dbCfg.FileName,
		LogLevel:        dbCfg.LogLevel,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		JournalMode:     dbCfg.JournalMode,
		Synchronous:     dbCfg.Synchronous,
		TempStore:       dbCfg.TempStore,
		ForeignKeys:     dbCfg.ForeignKeys,
	}); err != nil {
		return fmt.Errorf("database setup failed: %w", err)
	}

	if err := storage.Migrate(); err != nil {
		return fmt.Errorf("database migrate failed: %w", err)
	}

	logger.Info("数据库初始化成功")
	return nil
}

// ==========================================
// 业务模块组装
// ==========================================

// buildHandler 组装 HTTP 接口依赖
func buildHandler() (*server.Handler, error) {
	fmt.Println("正在组装业务模块...")
	cfg := config.Get()

	db, err := storage.GetDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get DB instance: %w", err)
	}

	store := storage.NewSignalStore(db)
	regionalSvc := regional.NewService(store)
	youtubeClient := youtube.NewClient(cfg.YouTube)

	logger.Info("业务模块组装完成", "youtube_enabled", youtubeClient.Enabled())

	return &server.Handler{
		Regional: regionalSvc,
		Hashtags: youtubeClient,
	}, nil
}

// ==========================================
// 主入口
// ==========================================

func main() {
	// ==========================================
	// 阶段 1: 参数解析与配置加载
	// ==========================================
	configPath := parseArgs()

	if err := loadConfig(configPath); err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}

	// ==========================================
	// 阶段 2: 基础设施初始化
	// ==========================================
	if err := initLogger(); err != nil {
		panic(fmt.Sprintf("日志系统初始化失败: %v", err))
	}
	defer logger.Sync()

	if err := initDatabase(); err != nil {
		panic(fmt.Sprintf("数据库初始化失败: %v", err))
	}

	// ==========================================
	// 阶段 3: 业务模块组装
	// ==========================================
	handler, err := buildHandler()
	if err != nil {
		panic(fmt.Sprintf("业务模块组装失败: %v", err))
	}

	// ==========================================
	// 阶段 4: HTTP 服务启动
	// ==========================================
	cfg := config.Get()
	httpServer := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      server.New(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("=== 服务已启动, 监听 %s (按 Ctrl+C 停止) ===\n", cfg.Server.Listen)
		logger.Info("HTTP 服务启动", "listen", cfg.Server.Listen)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP 服务异常退出", "error", err)
			os.Exit(1)
		}
	}()

	// ==========================================
	// 阶段 5: 优雅退出
	// ==========================================
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	fmt.Printf("\n[Main] 收到信号: %v，正在关闭服务...\n", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP 服务关闭超时", "error", err)
	}

	if err := storage.CloseDB(); err != nil {
		logger.Error("数据库关闭失败", "error", err)
	}

	fmt.Println("[Main] 程序已安全退出")
}
