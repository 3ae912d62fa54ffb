package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"neonotifier/internal/model"
)

// TestNormalize 测试告警规范化映射
func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		rawType      string
		rawMessage   string
		wantSeverity model.Severity
		wantTitle    string
	}{
		{"info标签", "info", "例行检查", model.SeverityInfo, "ℹ️ EDR 信息"},
		{"warning标签", "warning", "可疑文件变更", model.SeverityWarning, "⚠️ EDR 安全警告"},
		{"error标签", "error", "进程异常退出", model.SeverityError, "❌ EDR 严重错误"},
		{"critical标签", "critical", "检测到入侵行为", model.SeverityCritical, "🚨 EDR 紧急告警"},
		{"未知标签", "bogus", "不明事件", model.SeverityInfo, TitleGeneric},
		{"空标签", "", "空标签事件", model.SeverityInfo, TitleGeneric},
		{"标签大小写敏感", "INFO", "大写标签", model.SeverityInfo, TitleGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, title := Normalize(tt.rawType, tt.rawMessage)

			assert.Equal(t, tt.wantSeverity, a.Severity)
			assert.Equal(t, tt.wantTitle, title)
			// 原始标签与内容原样保留
			assert.Equal(t, tt.rawType, a.RawType)
			assert.Equal(t, tt.rawMessage, a.Message)
		})
	}
}

// TestNormalizeEscalation 测试升级判定:error/critical升级,其余不升级
func TestNormalizeEscalation(t *testing.T) {
	for _, tag := range []string{"error", "critical"} {
		a, _ := Normalize(tag, "x")
		assert.True(t, a.Severity.Escalates(), "tag %s should escalate", tag)
	}

	for _, tag := range []string{"info", "warning", "bogus", ""} {
		a, _ := Normalize(tag, "x")
		assert.False(t, a.Severity.Escalates(), "tag %s should not escalate", tag)
	}
}
