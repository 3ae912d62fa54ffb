/**
 * 配置:配置结构定义与加载
 * @author: sun977
 * @date: 2026.03.12
 * @description: neoNotifier 配置模型,缺省值填充与配置校验
 * @func: Config结构树、LoadConfig、applyDefaults、validateConfig
 */
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config 应用配置
type Config struct {
	// 应用配置
	App *AppConfig `yaml:"app" mapstructure:"app"`

	// HTTP服务器配置
	Server *ServerConfig `yaml:"server" mapstructure:"server"`

	// 日志配置
	Log *LogConfig `yaml:"log" mapstructure:"log"`

	// 通知配置
	Notify *NotifyConfig `yaml:"notify" mapstructure:"notify"`

	// 中间件配置
	Middleware *MiddlewareConfig `yaml:"middleware" mapstructure:"middleware"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`               // 应用名称
	Version     string `yaml:"version" mapstructure:"version"`         // 应用版本
	Environment string `yaml:"environment" mapstructure:"environment"` // 运行环境
	Timezone    string `yaml:"timezone" mapstructure:"timezone"`       // 时区
}

// ServerConfig HTTP服务器配置
// host/port/sound 属于启动后不可变配置,热重载只接受日志级别变化
type ServerConfig struct {
	Host           string        `yaml:"host" mapstructure:"host"`                         // 监听地址
	Port           int           `yaml:"port" mapstructure:"port"`                         // 监听端口
	Mode           string        `yaml:"mode" mapstructure:"mode"`                         // 运行模式 (debug/release/test)
	ReadTimeout    time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`         // 读取超时时间
	WriteTimeout   time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`       // 写入超时时间
	IdleTimeout    time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`         // 空闲超时时间
	MaxHeaderBytes int           `yaml:"max_header_bytes" mapstructure:"max_header_bytes"` // 最大头部字节数
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`             // 日志级别 (debug/info/warn/error)
	Format     string `yaml:"format" mapstructure:"format"`           // 日志格式 (json/text)
	Output     string `yaml:"output" mapstructure:"output"`           // 日志输出 (stdout/stderr/file/both)
	FilePath   string `yaml:"file_path" mapstructure:"file_path"`     // 日志文件路径
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`       // 最大文件大小（MB）
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"` // 最大备份数
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`         // 最大保留天数
	Compress   bool   `yaml:"compress" mapstructure:"compress"`       // 是否压缩
	Caller     bool   `yaml:"caller" mapstructure:"caller"`           // 是否显示调用者信息
}

// NotifyConfig 通知配置
type NotifyConfig struct {
	SoundEnabled   bool `yaml:"sound_enabled" mapstructure:"sound_enabled"`     // 声音提示开关
	TimeoutSeconds int  `yaml:"timeout_seconds" mapstructure:"timeout_seconds"` // 通知展示超时(秒),传递给支持过期时间的后端
}

// MiddlewareConfig 中间件配置
type MiddlewareConfig struct {
	// CORS中间件配置
	CORS *CORSConfig `yaml:"cors" mapstructure:"cors"`

	// 日志中间件配置
	Logging *LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// CORSConfig CORS中间件配置
type CORSConfig struct {
	Enabled         bool     `yaml:"enabled" mapstructure:"enabled"`
	AllowAllOrigins bool     `yaml:"allow_all_origins" mapstructure:"allow_all_origins"`
	AllowOrigins    []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	AllowMethods    []string `yaml:"allow_methods" mapstructure:"allow_methods"`
	AllowHeaders    []string `yaml:"allow_headers" mapstructure:"allow_headers"`
	MaxAge          int      `yaml:"max_age" mapstructure:"max_age"`
}

// LoggingConfig 日志中间件配置
// 告警上报端的每一次请求都要求留痕,SkipPaths 默认为空
type LoggingConfig struct {
	Enabled   bool     `yaml:"enabled" mapstructure:"enabled"`
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
}

// LoadConfig 加载配置
// configPath 为目录时走 viper 搜索,为文件时直接指定配置文件
func LoadConfig(configPath ...string) (*Config, error) {
	var path string
	if len(configPath) > 0 && configPath[0] != "" {
		path = configPath[0]
	}

	loader := NewConfigLoader(path, "NEONOTIFIER")
	config, err := loader.LoadConfig()
	if err != nil {
		return nil, err
	}

	// 记录实际使用的配置文件,热重载监听需要这个路径
	usedConfigFile = loader.GetConfigPath()

	// 设置全局配置
	globalConfig = config
	return config, nil
}

// usedConfigFile 最近一次加载实际命中的配置文件,纯命令行运行时为空
var usedConfigFile string

// UsedConfigFile 获取实际加载的配置文件路径
func UsedConfigFile() string {
	return usedConfigFile
}

// applyDefaults 填充缺省值
// viper 路径已有默认值,此处兜底直接解析与测试构造出的配置
func applyDefaults(config *Config) {
	if config.App == nil {
		config.App = &AppConfig{}
	}
	if config.App.Name == "" {
		config.App.Name = "neoNotifier"
	}
	if config.App.Version == "" {
		config.App.Version = "1.2.0"
	}
	if config.App.Environment == "" {
		config.App.Environment = "production"
	}
	if config.App.Timezone == "" {
		config.App.Timezone = "Local"
	}

	if config.Server == nil {
		config.Server = &ServerConfig{}
	}
	if config.Server.Host == "" {
		config.Server.Host = "0.0.0.0"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.Mode == "" {
		config.Server.Mode = "release"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 30 * time.Second
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 30 * time.Second
	}
	if config.Server.IdleTimeout == 0 {
		config.Server.IdleTimeout = 60 * time.Second
	}
	if config.Server.MaxHeaderBytes == 0 {
		config.Server.MaxHeaderBytes = 1 << 20
	}

	if config.Log == nil {
		config.Log = &LogConfig{}
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Log.Output == "" {
		config.Log.Output = "both"
	}
	if config.Log.FilePath == "" {
		config.Log.FilePath = "./logs/notifier.log"
	}
	if config.Log.MaxSize == 0 {
		config.Log.MaxSize = 100
	}
	if config.Log.MaxBackups == 0 {
		config.Log.MaxBackups = 3
	}
	if config.Log.MaxAge == 0 {
		config.Log.MaxAge = 28
	}

	if config.Notify == nil {
		// 声音默认开启
		config.Notify = &NotifyConfig{SoundEnabled: true}
	}
	if config.Notify.TimeoutSeconds == 0 {
		config.Notify.TimeoutSeconds = 10
	}

	if config.Middleware == nil {
		config.Middleware = &MiddlewareConfig{}
	}
	if config.Middleware.CORS == nil {
		config.Middleware.CORS = &CORSConfig{
			Enabled:         true,
			AllowAllOrigins: true,
		}
	}
	if len(config.Middleware.CORS.AllowMethods) == 0 {
		config.Middleware.CORS.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(config.Middleware.CORS.AllowHeaders) == 0 {
		config.Middleware.CORS.AllowHeaders = []string{"Content-Type", "Content-Length"}
	}
	if config.Middleware.CORS.MaxAge == 0 {
		config.Middleware.CORS.MaxAge = 43200
	}
	if config.Middleware.Logging == nil {
		config.Middleware.Logging = &LoggingConfig{Enabled: true}
	}
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	switch config.Log.Output {
	case "stdout", "stderr", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", config.Log.Output)
	}

	if config.Notify.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid notify timeout: %d", config.Notify.TimeoutSeconds)
	}

	// 文件日志需要保证目录存在
	if config.Log.Output == "file" || config.Log.Output == "both" {
		if err := ensureDir(filepath.Dir(config.Log.FilePath)); err != nil {
			return fmt.Errorf("failed to ensure log directory: %w", err)
		}
	}

	return nil
}

// ensureDir 确保目录存在
func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	return os.MkdirAll(absDir, 0755)
}

// GetConfig 获取配置（单例模式）
var globalConfig *Config

func GetConfig() *Config {
	if globalConfig == nil {
		var err error
		globalConfig, err = LoadConfig("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}
	return globalConfig
}

// SetConfig 设置全局配置(热重载与测试使用)
func SetConfig(config *Config) {
	globalConfig = config
}
