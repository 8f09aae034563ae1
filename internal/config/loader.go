package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// GlobalConfig 全局配置单例
// 在调用 LoadConfig 成功后，该变量会被填充，后续模块直接读取即可
var (
	GlobalConfig *AppConfig
	loadOnce     sync.Once
)

// LoadConfig 加载配置
// configPath: 配置文件路径 (e.g., "configs/config.yml")
// 如果传入空字符串，Viper 会尝试在默认路径搜索；
// 搜索不到时直接使用默认值运行 (仪表盘允许零配置启动)
func LoadConfig(configPath string) error {
	var err error

	loadOnce.Do(func() {
		v := viper.New()

		// 1. 设置默认值 (兜底策略)
		setDefaults(v)

		// 2. 配置读取规则
		if configPath != "" {
			// 如果指定了具体文件，直接读取
			v.SetConfigFile(configPath)
		} else {
			// 否则在常见目录搜索名为 "config" 的文件
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath("/etc/misinfoRadar/") // 生产环境标准路径
			v.AddConfigPath("./configs")          // 仓库内默认配置
			v.AddConfigPath(".")                  // 当前目录 (开发调试用)
		}

		// 3. 配置环境变量覆盖
		// 允许通过环境变量 RADAR_SERVER_LISTEN 来覆盖 server.listen
		v.SetEnvPrefix("RADAR")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		// 产品约定的裸环境变量名，额外显式绑定
		// YOUTUBE_API_KEY / YOUTUBE_SEARCH_LIMIT 不带前缀
		_ = v.BindEnv("youtube.api_key", "YOUTUBE_API_KEY", "RADAR_YOUTUBE_API_KEY")
		_ = v.BindEnv("youtube.search_limit", "YOUTUBE_SEARCH_LIMIT", "RADAR_YOUTUBE_SEARCH_LIMIT")

		// 4. 读取配置文件
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); ok && configPath == "" {
				// 搜索模式下找不到配置文件不算错误，使用默认值 + 环境变量
				fmt.Println("[Config] No config file found, using defaults")
			} else {
				err = fmt.Errorf("failed to read config file: %v", readErr)
				return
			}
		}

		// 5. 反序列化到结构体
		var config AppConfig
		if err = v.Unmarshal(&config); err != nil {
			err = fmt.Errorf("failed to unmarshal config: %v", err)
			return
		}

		// 6. 赋值给全局单例
		GlobalConfig = &config
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Printf("[Config] Loaded successfully from: %s\n", used)
		}
	})

	return err
}

// setDefaults 定义配置文件的“默认行为”
func setDefaults(v *viper.Viper) {
	// Agent 基础
	v.SetDefault("agent.log_level", "info")
	v.SetDefault("agent.log_file", "/var/log/misinfoRadar/radar.log")
	v.SetDefault("agent.data_dir", "/var/lib/misinfoRadar") // 数据存储目录默认值
	// 日志轮转默认值
	v.SetDefault("agent.log_max_size", 100)  // 100MB 切割
	v.SetDefault("agent.log_max_backups", 5) // 保留最近 5 个
	v.SetDefault("agent.log_max_age", 30)    // 保留 30 天
	v.SetDefault("agent.log_compress", true) // 默认压缩旧日志
	v.SetDefault("agent.log_stdout", false)  // 生产环境默认不打控制台(静默模式)

	// Server HTTP 服务
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Database 数据库配置
	v.SetDefault("database.file_name", "radar.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.journal_mode", "WAL")
	v.SetDefault("database.synchronous", "NORMAL")
	v.SetDefault("database.temp_store", "MEMORY")
	v.SetDefault("database.foreign_keys", true)

	// YouTube Data API
	v.SetDefault("youtube.api_key", "")
	v.SetDefault("youtube.search_limit", 10)
	v.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("youtube.timeout", "10s")
}

// Get 获取配置的安全访问器 (可选)
func Get() *AppConfig {
	if GlobalConfig == nil {
		// 防御性编程：如果没有初始化就调用，返回一个空结构或 panic
		// 这里为了安全起见，建议 panic 提示开发者必须先 Init
		panic("Config not initialized! Call LoadConfig() first.")
	}
	return GlobalConfig
}
