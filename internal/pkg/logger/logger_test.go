package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"neonotifier/internal/config"
)

func stdoutLogConfig() *config.LogConfig {
	return &config.LogConfig{
		Level:  "info",
		Format: "text",
		Output: "stdout",
	}
}

func TestInitLogger(t *testing.T) {
	lm, err := InitLogger(stdoutLogConfig())
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	if lm.GetLogger().GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %v", lm.GetLogger().GetLevel())
	}
	if LoggerInstance != lm {
		t.Error("Expected global instance to be set")
	}
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	// 非法级别回退到 info,不报错
	cfg := stdoutLogConfig()
	cfg.Level = "verbose"
	lm, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	if lm.GetLogger().GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected fallback to info level, got %v", lm.GetLogger().GetLevel())
	}
}

func TestInitLoggerInvalidFormat(t *testing.T) {
	cfg := stdoutLogConfig()
	cfg.Format = "xml"
	if _, err := InitLogger(cfg); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestInitLoggerBothOutput(t *testing.T) {
	// both 模式同时写控制台和文件
	logFile := filepath.Join(t.TempDir(), "notifier.log")
	cfg := &config.LogConfig{
		Level:    "info",
		Format:   "text",
		Output:   "both",
		FilePath: logFile,
		MaxSize:  10,
	}

	lm, err := InitLogger(cfg)
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	lm.GetLogger().Info("file sink check")

	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("Expected log file to be created: %v", err)
	}
}

func TestInitLoggerFileRequiresPath(t *testing.T) {
	cfg := stdoutLogConfig()
	cfg.Output = "file"
	if _, err := InitLogger(cfg); err == nil {
		t.Error("Expected error when file output has no path")
	}
}

func TestUpdateConfigLevel(t *testing.T) {
	lm, err := InitLogger(stdoutLogConfig())
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	newCfg := stdoutLogConfig()
	newCfg.Level = "debug"
	if err := lm.UpdateConfig(newCfg); err != nil {
		t.Fatalf("UpdateConfig failed: %v", err)
	}

	if lm.GetLogger().GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level after update, got %v", lm.GetLogger().GetLevel())
	}
}

func TestLogAlertEvent(t *testing.T) {
	lm, err := InitLogger(stdoutLogConfig())
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	hook := test.NewLocal(lm.GetLogger())

	// 普通告警只有一条WARN
	LogAlertEvent(1, "warning", "⚠️ EDR 安全警告", "可疑文件", "warning", false)
	if len(hook.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(hook.Entries))
	}
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %v", hook.LastEntry().Level)
	}
	hook.Reset()

	// 升级告警追加一条ERROR
	LogAlertEvent(2, "critical", "🚨 EDR 紧急告警", "检测到入侵", "critical", true)
	if len(hook.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(hook.Entries))
	}
	if hook.Entries[0].Level != logrus.WarnLevel {
		t.Errorf("Expected first entry warn, got %v", hook.Entries[0].Level)
	}
	if hook.Entries[1].Level != logrus.ErrorLevel {
		t.Errorf("Expected second entry error, got %v", hook.Entries[1].Level)
	}
	if hook.Entries[1].Data["severity"] != "critical" {
		t.Errorf("Expected severity field critical, got %v", hook.Entries[1].Data["severity"])
	}
}

func TestLogNotifyEvent(t *testing.T) {
	lm, err := InitLogger(stdoutLogConfig())
	if err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	hook := test.NewLocal(lm.GetLogger())

	// 分发失败只记WARN,不升级
	LogNotifyEvent("sound", "native_library", false, os.ErrNotExist)
	if len(hook.Entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(hook.Entries))
	}
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("Expected warn level, got %v", hook.LastEntry().Level)
	}
	if hook.LastEntry().Data["backend"] != "native_library" {
		t.Errorf("Expected backend field, got %v", hook.LastEntry().Data["backend"])
	}
}
