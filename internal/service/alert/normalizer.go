/**
 * 服务:告警规范化
 * @author: sun977
 * @date: 2026.03.14
 * @description: 原始告警标签到规范告警模型与展示标题的纯映射
 * @func: Normalize、标题映射表
 */
package alert

import "neonotifier/internal/model"

// 告警标题映射表,emoji标题沿用上一代服务的展示约定
var titleMap = map[model.Severity]string{
	model.SeverityInfo:     "ℹ️ EDR 信息",
	model.SeverityWarning:  "⚠️ EDR 安全警告",
	model.SeverityError:    "❌ EDR 严重错误",
	model.SeverityCritical: "🚨 EDR 紧急告警",
}

// TitleGeneric 未知类型标签的通用标题
const TitleGeneric = "📢 EDR 通知"

// Normalize 把原始告警标签和内容规范化为告警模型与展示标题
// 未知标签不会被拒绝:级别降为info,标题用通用标题,原始标签保留供日志使用
func Normalize(rawType, rawMessage string) (model.Alert, string) {
	severity, known := model.ParseSeverity(rawType)

	a := model.Alert{
		Severity: severity,
		RawType:  rawType,
		Message:  rawMessage,
	}

	if !known {
		return a, TitleGeneric
	}
	return a, titleMap[severity]
}
