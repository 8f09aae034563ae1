// Package logger 提供全局结构化日志门面
// 底层使用 zap + lumberjack，支持日志轮转和控制台输出
// 业务代码统一通过 logger.Info("msg", "key", value) 形式调用
package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// ==========================================
// 初始化选项
// ==========================================

// Options 日志初始化选项
type Options struct {
	// 日志级别: debug, info, warn, error
	Level string
	// 日志文件路径，为空则只输出到控制台
	File string
	// 单个日志文件最大体积 (MB)
	MaxSize int
	// 保留的旧日志文件个数
	MaxBackups int
	// 旧日志保留天数
	MaxAge int
	// 是否压缩旧日志
	Compress bool
	// 是否同时输出到控制台
	Stdout bool
}

var (
	sugar     *zap.SugaredLogger
	setupOnce sync.Once
)

// Setup 初始化全局日志
// 重复调用只有第一次生效
func Setup(opts Options) error {
	setupOnce.Do(func() {
		level := parseLevel(opts.Level)

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var cores []zapcore.Core

		// 1. 文件输出 (JSON 格式 + lumberjack 轮转)
		if opts.File != "" {
			fileSyncer := zapcore.AddSync(&lumberjack.Logger{
				Filename:   opts.File,
				MaxSize:    opts.MaxSize,
				MaxBackups: opts.MaxBackups,
				MaxAge:     opts.MaxAge,
				Compress:   opts.Compress,
			})
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderCfg),
				fileSyncer,
				level,
			))
		}

		// 2. 控制台输出 (可读格式)
		// 未配置文件路径时强制开启，避免日志完全丢失
		if opts.Stdout || opts.File == "" {
			consoleCfg := zap.NewDevelopmentEncoderConfig()
			consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(consoleCfg),
				zapcore.AddSync(os.Stdout),
				level,
			))
		}

		sugar = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// parseLevel 日志级别字符串转换
// 未识别时兜底为 info
func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// get 获取底层 logger
// 允许在 Setup 之前调用 (调试工具场景)，此时输出到控制台
func get() *zap.SugaredLogger {
	if sugar == nil {
		Setup(Options{Level: "info", Stdout: true})
	}
	return sugar
}

// ==========================================
// 日志输出接口
// ==========================================

// Debug 输出调试日志，kv 为键值对
func Debug(msg string, kv ...interface{}) {
	get().Debugw(msg, kv...)
}

// Info 输出信息日志，kv 为键值对
func Info(msg string, kv ...interface{}) {
	get().Infow(msg, kv...)
}

// Warn 输出警告日志，kv 为键值对
func Warn(msg string, kv ...interface{}) {
	get().Warnw(msg, kv...)
}

// Error 输出错误日志，kv 为键值对
func Error(msg string, kv ...interface{}) {
	get().Errorw(msg, kv...)
}

// Sync 刷新日志缓冲区
// 程序退出前调用
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
