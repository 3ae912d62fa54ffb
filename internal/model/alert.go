/**
 * 模型:告警模型
 * @author: sun977
 * @date: 2026.03.10
 * @description: EDR告警数据模型,告警严重级别定义与解析
 * @func: Severity枚举、ParseSeverity、Alert/AlertRequest结构体
 */
package model

// Severity 告警严重级别
type Severity string

const (
	SeverityInfo     Severity = "info"     // 普通信息
	SeverityWarning  Severity = "warning"  // 安全警告
	SeverityError    Severity = "error"    // 严重错误
	SeverityCritical Severity = "critical" // 紧急告警
)

// 告警字段缺省值
// 上报端(agent)允许只带部分字段,缺省值保证告警永远可被处理
const (
	DefaultAlertType    = "info"
	DefaultAlertMessage = "unknown alert"
)

// ParseSeverity 解析原始类型标签为严重级别
// 未知标签不拒绝,降级为 info 并返回 false,原始标签由调用方保留用于日志
func ParseSeverity(raw string) (Severity, bool) {
	switch Severity(raw) {
	case SeverityInfo, SeverityWarning, SeverityError, SeverityCritical:
		return Severity(raw), true
	default:
		return SeverityInfo, false
	}
}

// String 返回级别字符串
func (s Severity) String() string {
	return string(s)
}

// Escalates 判断该级别是否需要升级日志记录
func (s Severity) Escalates() bool {
	return s == SeverityError || s == SeverityCritical
}

// Alert 一次告警事件,生命周期为单个请求,不落库
type Alert struct {
	Severity Severity `json:"severity"` // 规范化后的严重级别
	RawType  string   `json:"raw_type"` // 上报端原始类型标签(未知标签也保留)
	Message  string   `json:"message"`  // 告警内容
}

// AlertRequest POST请求体结构
// 两个字段都允许缺省,缺省值与GET查询参数一致
type AlertRequest struct {
	Type    string `json:"type"`    // 告警类型标签
	Message string `json:"message"` // 告警内容
}
