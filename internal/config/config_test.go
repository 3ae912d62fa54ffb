package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoaderDefaults(t *testing.T) {
	// 避免测试目录里生成 logs/
	t.Setenv("NEONOTIFIER_LOG_OUTPUT", "stdout")

	loader := NewConfigLoader("", "NEONOTIFIER")
	cfg, err := loader.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.App.Name != "neoNotifier" {
		t.Errorf("Expected default app name neoNotifier, got %s", cfg.App.Name)
	}
	if !cfg.Notify.SoundEnabled {
		t.Error("Expected sound enabled by default")
	}
	if cfg.Notify.TimeoutSeconds != 10 {
		t.Errorf("Expected default notify timeout 10, got %d", cfg.Notify.TimeoutSeconds)
	}
	if !cfg.Middleware.CORS.AllowAllOrigins {
		t.Error("Expected CORS allow all origins by default")
	}
}

func TestLoaderEnvOverride(t *testing.T) {
	t.Setenv("NEONOTIFIER_LOG_OUTPUT", "stdout")
	t.Setenv("NEONOTIFIER_SERVER_PORT", "9090")
	t.Setenv("NEONOTIFIER_LOG_LEVEL", "debug")
	t.Setenv("NEONOTIFIER_NOTIFY_SOUND_ENABLED", "false")

	loader := NewConfigLoader("", "NEONOTIFIER")
	cfg, err := loader.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected env override port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected env override log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Notify.SoundEnabled {
		t.Error("Expected env override to disable sound")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  name: testNotifier
server:
  host: 127.0.0.1
  port: 18080
  read_timeout: 5s
log:
  level: warn
  output: stdout
notify:
  sound_enabled: false
  timeout_seconds: 3
`)
	if err := os.WriteFile(file, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFromFile(file)
	if err != nil {
		t.Fatalf("LoadConfigFromFile failed: %v", err)
	}

	if cfg.App.Name != "testNotifier" {
		t.Errorf("Expected app name testNotifier, got %s", cfg.App.Name)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 18080 {
		t.Errorf("Expected 127.0.0.1:18080, got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Notify.SoundEnabled {
		t.Error("Expected sound disabled from file")
	}
	if cfg.Notify.TimeoutSeconds != 3 {
		t.Errorf("Expected notify timeout 3, got %d", cfg.Notify.TimeoutSeconds)
	}
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	// 显式指定的配置文件不存在必须报错
	if _, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Log.Output != "both" {
		t.Errorf("Expected default log output both, got %s", cfg.Log.Output)
	}
	if cfg.Log.FilePath != "./logs/notifier.log" {
		t.Errorf("Expected default log file path, got %s", cfg.Log.FilePath)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected default read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if !cfg.Notify.SoundEnabled {
		t.Error("Expected sound enabled by default")
	}
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Log.Output = "stdout"
		return cfg
	}

	// 合法配置
	if err := validateConfig(base()); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}

	// 非法端口
	cfg := base()
	cfg.Server.Port = 70000
	if err := validateConfig(cfg); err == nil {
		t.Error("Expected error for invalid port")
	}

	// 非法日志级别
	cfg = base()
	cfg.Log.Level = "verbose"
	if err := validateConfig(cfg); err == nil {
		t.Error("Expected error for invalid log level")
	}

	// 非法输出目标
	cfg = base()
	cfg.Log.Output = "syslog"
	if err := validateConfig(cfg); err == nil {
		t.Error("Expected error for invalid log output")
	}
}

func TestValidateConfigChange(t *testing.T) {
	oldCfg := &Config{}
	applyDefaults(oldCfg)

	// 日志级别变更允许
	newCfg := &Config{}
	applyDefaults(newCfg)
	newCfg.Log.Level = "debug"
	if err := ValidateConfigChange(oldCfg, newCfg); err != nil {
		t.Errorf("Expected log level change to be allowed, got %v", err)
	}

	// 端口变更拒绝
	newCfg = &Config{}
	applyDefaults(newCfg)
	newCfg.Server.Port = 9999
	if err := ValidateConfigChange(oldCfg, newCfg); err == nil {
		t.Error("Expected port change to be rejected")
	}

	// 声音开关变更拒绝
	newCfg = &Config{}
	applyDefaults(newCfg)
	newCfg.Notify.SoundEnabled = false
	if err := ValidateConfigChange(oldCfg, newCfg); err == nil {
		t.Error("Expected sound switch change to be rejected")
	}
}
