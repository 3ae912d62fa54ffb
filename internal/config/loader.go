/**
 * 配置:viper加载器
 * @author: sun977
 * @date: 2026.03.12
 * @description: 基于viper的配置加载,支持配置文件/环境变量/缺省值三级合并
 * @func: ConfigLoader、bindEnvVars、setDefaults
 */
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigLoader 配置加载器
type ConfigLoader struct {
	configPath string // 配置搜索目录
	configFile string // 显式指定的配置文件(优先于目录搜索)
	envPrefix  string
	viper      *viper.Viper
}

// NewConfigLoader 创建配置加载器
func NewConfigLoader(configPath, envPrefix string) *ConfigLoader {
	if envPrefix == "" {
		envPrefix = "NEONOTIFIER"
	}

	loader := &ConfigLoader{
		envPrefix: envPrefix,
		viper:     viper.New(),
	}

	// 带扩展名的路径视为显式配置文件
	if strings.HasSuffix(configPath, ".yaml") || strings.HasSuffix(configPath, ".yml") ||
		strings.HasSuffix(configPath, ".json") {
		loader.configFile = configPath
	} else {
		loader.configPath = configPath
	}

	return loader
}

// SetConfigFile 显式指定配置文件
func (cl *ConfigLoader) SetConfigFile(file string) {
	cl.configFile = file
}

// LoadConfig 加载配置
func (cl *ConfigLoader) LoadConfig() (*Config, error) {
	// 先加载 .env,保证 AutomaticEnv 能读到其中的变量
	if err := InitGlobalEnvLoader(); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	// 设置配置文件类型
	cl.viper.SetConfigType("yaml")

	// 设置环境变量前缀
	cl.viper.SetEnvPrefix(cl.envPrefix)
	cl.viper.AutomaticEnv()
	cl.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 绑定环境变量
	cl.bindEnvVars()

	// 设置默认值
	cl.setDefaults()

	// 加载配置文件
	if err := cl.loadConfigFile(); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// 解析配置
	var config Config
	if err := cl.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 兜底缺省值(viper之外构造的字段)
	applyDefaults(&config)

	// 验证配置
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadConfigFile 加载配置文件
// 没有配置文件不是错误:告警中继端常以纯命令行参数运行
func (cl *ConfigLoader) loadConfigFile() error {
	if cl.configFile != "" {
		cl.viper.SetConfigFile(cl.configFile)
		if err := cl.viper.ReadInConfig(); err != nil {
			// 显式指定的文件必须存在
			return fmt.Errorf("config file not found: %w", err)
		}
		return nil
	}

	// 设置配置文件搜索路径
	if cl.configPath != "" {
		cl.viper.AddConfigPath(cl.configPath)
	}
	cl.viper.AddConfigPath("./configs")
	cl.viper.AddConfigPath(".")
	cl.viper.SetConfigName("config")

	if err := cl.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// bindEnvVars 绑定环境变量
func (cl *ConfigLoader) bindEnvVars() {
	// App配置
	cl.viper.BindEnv("app.name", "NEONOTIFIER_APP_NAME")
	cl.viper.BindEnv("app.environment", "NEONOTIFIER_APP_ENVIRONMENT")

	// Server配置
	cl.viper.BindEnv("server.host", "NEONOTIFIER_SERVER_HOST")
	cl.viper.BindEnv("server.port", "NEONOTIFIER_SERVER_PORT")
	cl.viper.BindEnv("server.mode", "NEONOTIFIER_SERVER_MODE")

	// 通知配置
	cl.viper.BindEnv("notify.sound_enabled", "NEONOTIFIER_NOTIFY_SOUND_ENABLED")
	cl.viper.BindEnv("notify.timeout_seconds", "NEONOTIFIER_NOTIFY_TIMEOUT_SECONDS")

	// 日志配置
	cl.viper.BindEnv("log.level", "NEONOTIFIER_LOG_LEVEL")
	cl.viper.BindEnv("log.output", "NEONOTIFIER_LOG_OUTPUT")
	cl.viper.BindEnv("log.file_path", "NEONOTIFIER_LOG_FILE_PATH")
}

// setDefaults 设置默认值
func (cl *ConfigLoader) setDefaults() {
	// App默认值
	cl.viper.SetDefault("app.name", "neoNotifier")
	cl.viper.SetDefault("app.version", "1.2.0")
	cl.viper.SetDefault("app.environment", "production")
	cl.viper.SetDefault("app.timezone", "Local")

	// Server默认值
	cl.viper.SetDefault("server.host", "0.0.0.0")
	cl.viper.SetDefault("server.port", 8080)
	cl.viper.SetDefault("server.mode", "release")
	cl.viper.SetDefault("server.read_timeout", "30s")
	cl.viper.SetDefault("server.write_timeout", "30s")
	cl.viper.SetDefault("server.idle_timeout", "60s")
	cl.viper.SetDefault("server.max_header_bytes", 1048576)

	// 通知默认值
	cl.viper.SetDefault("notify.sound_enabled", true)
	cl.viper.SetDefault("notify.timeout_seconds", 10)

	// 日志默认值
	// 旧版守护进程同时写控制台和日志文件,这里保持 both
	cl.viper.SetDefault("log.level", "info")
	cl.viper.SetDefault("log.format", "text")
	cl.viper.SetDefault("log.output", "both")
	cl.viper.SetDefault("log.file_path", "./logs/notifier.log")
	cl.viper.SetDefault("log.max_size", 100)
	cl.viper.SetDefault("log.max_backups", 3)
	cl.viper.SetDefault("log.max_age", 28)
	cl.viper.SetDefault("log.compress", false)
	cl.viper.SetDefault("log.caller", false)

	// 中间件默认值
	cl.viper.SetDefault("middleware.cors.enabled", true)
	cl.viper.SetDefault("middleware.cors.allow_all_origins", true)
	cl.viper.SetDefault("middleware.cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	cl.viper.SetDefault("middleware.cors.allow_headers", []string{"Content-Type", "Content-Length"})
	cl.viper.SetDefault("middleware.cors.max_age", 43200)
	cl.viper.SetDefault("middleware.logging.enabled", true)
	cl.viper.SetDefault("middleware.logging.skip_paths", []string{})
}

// GetConfigPath 获取实际使用的配置文件路径
func (cl *ConfigLoader) GetConfigPath() string {
	return cl.viper.ConfigFileUsed()
}

// LoadConfigFromFile 从指定文件加载配置
func LoadConfigFromFile(configFile string) (*Config, error) {
	loader := NewConfigLoader("", "NEONOTIFIER")
	loader.SetConfigFile(configFile)
	return loader.LoadConfig()
}
