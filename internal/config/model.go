// Package config
package config

import "time"

// ==========================================
// 顶层配置结构
// ==========================================

type AppConfig struct {
	Agent    AgentConfig    `mapstructure:"agent" yaml:"agent"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	YouTube  YouTubeConfig  `mapstructure:"youtube" yaml:"youtube"`
}

// ==========================================
// 1. 基础配置
// ==========================================

type AgentConfig struct {
	// 日志级别: debug, info, warn, error
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// 日志文件路径
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// 数据存储目录 (SQLite 文件所在目录)
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	// 日志轮转高级配置
	LogMaxSize    int  `mapstructure:"log_max_size" yaml:"log_max_size"`       // MB
	LogMaxBackups int  `mapstructure:"log_max_backups" yaml:"log_max_backups"` // 个数
	LogMaxAge     int  `mapstructure:"log_max_age" yaml:"log_max_age"`         // 天数
	LogCompress   bool `mapstructure:"log_compress" yaml:"log_compress"`       // 是否压缩
	LogStdout     bool `mapstructure:"log_stdout" yaml:"log_stdout"`           // 是否打印到控制台
}

// ==========================================
// 2. HTTP 服务配置
// ==========================================

type ServerConfig struct {
	// 监听地址 (e.g., ":8080")
	Listen string `mapstructure:"listen" yaml:"listen"`
	// 请求读取超时
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	// 响应写入超时
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	// 优雅关闭等待时间
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ==========================================
// 3. 数据库配置
// ==========================================

type DatabaseConfig struct {
	// 数据库文件名
	FileName string `mapstructure:"file_name" yaml:"file_name"`
	// GORM 日志级别: silent, error, warn, info
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// 最大打开连接数 (SQLite 建议 1)
	MaxOpenConns int `mapstructure:"max_open_conns" yaml:"max_open_conns"`
	// 最大空闲连接数 (SQLite 建议 1)
	MaxIdleConns int `mapstructure:"max_idle_conns" yaml:"max_idle_conns"`
	// 连接最大生命周期
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" yaml:"conn_max_lifetime"`
	// SQLite Journal 模式: WAL, DELETE, TRUNCATE, PERSIST, MEMORY
	JournalMode string `mapstructure:"journal_mode" yaml:"journal_mode"`
	// SQLite 同步模式: FULL, NORMAL, OFF
	Synchronous string `mapstructure:"synchronous" yaml:"synchronous"`
	// SQLite 临时存储: MEMORY, FILE
	TempStore string `mapstructure:"temp_store" yaml:"temp_store"`
	// 是否启用外键约束
	ForeignKeys bool `mapstructure:"foreign_keys" yaml:"foreign_keys"`
}

// ==========================================
// 4. YouTube Data API 配置
// ==========================================

type YouTubeConfig struct {
	// API 密钥，为空时话题聚合功能静默降级
	// 环境变量 YOUTUBE_API_KEY 可直接覆盖
	APIKey string `mapstructure:"api_key" yaml:"api_key"`
	// 搜索结果条数上限，环境变量 YOUTUBE_SEARCH_LIMIT 可直接覆盖
	SearchLimit int `mapstructure:"search_limit" yaml:"search_limit"`
	// API 基础地址，测试时可指向本地 mock
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// 单次外部调用超时
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}
