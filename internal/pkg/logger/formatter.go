// 自定义日志格式化器
package logger

import (
	"fmt"
	"strings"
	"time"

	"neonotifier/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FormatTimestamp 格式化时间戳为统一的毫秒精度格式
// 返回格式："2006-01-02 15:04:05.000"
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}

// NowFormatted 返回当前时间的格式化字符串
func NowFormatted() string {
	return FormatTimestamp(time.Now())
}

// LogType 日志类型枚举
type LogType string

const (
	// AccessLog 访问日志 - 记录HTTP请求
	AccessLog LogType = "access"
	// AlertLog 告警日志 - 记录每一条进入归一化的EDR告警
	AlertLog LogType = "alert"
	// NotifyLog 通知日志 - 记录通知/声音分发结果
	NotifyLog LogType = "notify"
	// ErrorLog 错误日志 - 记录系统错误和异常
	ErrorLog LogType = "error"
	// SystemLog 系统日志 - 记录系统运行状态
	SystemLog LogType = "system"
)

// AccessLogEntry 访问日志条目结构
type AccessLogEntry struct {
	Method       string `json:"method"`        // HTTP方法
	Path         string `json:"path"`          // 请求路径
	Query        string `json:"query"`         // 查询参数
	StatusCode   int    `json:"status_code"`   // 响应状态码
	ResponseTime int64  `json:"response_time"` // 响应时间(毫秒)
	ClientIP     string `json:"client_ip"`     // 客户端IP
	UserAgent    string `json:"user_agent"`    // 用户代理
	RequestSize  int64  `json:"request_size"`  // 请求大小
	ResponseSize int64  `json:"response_size"` // 响应大小
}

// AlertLogEntry 告警日志条目结构
type AlertLogEntry struct {
	Seq      uint64 `json:"seq"`      // 告警序号(进程内单调递增)
	Severity string `json:"severity"` // 规范化严重级别
	RawType  string `json:"raw_type"` // 上报端原始标签
	Title    string `json:"title"`    // 通知标题
	Message  string `json:"message"`  // 告警内容
}

// NotifyLogEntry 通知日志条目结构
type NotifyLogEntry struct {
	Action  string `json:"action"`  // notify/sound
	Backend string `json:"backend"` // 使用的分发后端
	Result  string `json:"result"`  // success/failed
	Error   string `json:"error"`   // 失败原因
}

// LogAccessRequest 记录HTTP访问日志
// 告警上报端的每次请求都会经过这里,包括健康检查
func LogAccessRequest(c *gin.Context, startTime time.Time) {
	if LoggerInstance == nil {
		return
	}

	// 计算响应时间
	responseTime := time.Since(startTime).Milliseconds()

	entry := AccessLogEntry{
		Method:       c.Request.Method,
		Path:         c.Request.URL.Path,
		Query:        c.Request.URL.RawQuery,
		StatusCode:   c.Writer.Status(),
		ResponseTime: responseTime,
		ClientIP:     utils.GetClientIP(c),
		UserAgent:    c.Request.UserAgent(),
		RequestSize:  c.Request.ContentLength,
		ResponseSize: int64(c.Writer.Size()),
	}

	// 时间戳由logrus自带,不重复记录
	LoggerInstance.logger.WithFields(logrus.Fields{
		"type":          AccessLog,
		"method":        entry.Method,
		"path":          entry.Path,
		"query":         entry.Query,
		"status_code":   entry.StatusCode,
		"response_time": entry.ResponseTime,
		"client_ip":     entry.ClientIP,
		"user_agent":    entry.UserAgent,
		"request_size":  entry.RequestSize,
		"response_size": entry.ResponseSize,
	}).Info("HTTP request processed")
}

// LogAlertEvent 记录告警事件日志
// 基线为WARN,escalate(error/critical级别)时追加一条ERROR记录
// logrus没有critical级别,升级统一落在ERROR,不使用会退出进程的Fatal
func LogAlertEvent(seq uint64, rawType, title, message, severity string, escalate bool) {
	if LoggerInstance == nil {
		return
	}

	entry := AlertLogEntry{
		Seq:      seq,
		Severity: severity,
		RawType:  rawType,
		Title:    title,
		Message:  message,
	}

	fields := logrus.Fields{
		"type":     AlertLog,
		"seq":      entry.Seq,
		"severity": entry.Severity,
		"raw_type": entry.RawType,
	}

	LoggerInstance.logger.WithFields(fields).Warnf("EDR告警 #%d: [%s] %s", seq, strings.ToUpper(rawType), message)

	if escalate {
		LoggerInstance.logger.WithFields(fields).Errorf("严重告警触发: %s", message)
	}
}

// LogNotifyEvent 记录通知分发日志
// 分发失败不向上传播,只在这里留痕
func LogNotifyEvent(action, backend string, succeeded bool, err error) {
	if LoggerInstance == nil {
		return
	}

	entry := NotifyLogEntry{
		Action:  action,
		Backend: backend,
		Result:  "success",
	}
	if !succeeded {
		entry.Result = "failed"
		if err != nil {
			entry.Error = err.Error()
		}
	}

	fields := logrus.Fields{
		"type":    NotifyLog,
		"action":  entry.Action,
		"backend": entry.Backend,
		"result":  entry.Result,
	}
	if entry.Error != "" {
		fields["error"] = entry.Error
	}

	if succeeded {
		LoggerInstance.logger.WithFields(fields).Debugf("Dispatch %s via %s", action, backend)
	} else {
		LoggerInstance.logger.WithFields(fields).Warnf("Dispatch %s via %s failed", action, backend)
	}
}

// LogError 记录错误日志
// 用于记录请求解析失败等需要上报调用方的错误
func LogError(err error, clientIP, path, method string, extraFields map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	if err == nil {
		return
	}

	fields := logrus.Fields{
		"type":      ErrorLog,
		"error":     err.Error(),
		"client_ip": clientIP,
		"path":      path,
		"method":    method,
	}

	// 添加额外字段
	for k, v := range extraFields {
		fields[k] = v
	}

	LoggerInstance.logger.WithFields(fields).Errorf("Request error: %s", err.Error())
}

// LogSystemEvent 记录系统事件日志
// 用于记录系统启动、关闭、组件状态变化等系统级事件
func LogSystemEvent(component, event, message string, level LogLevel, extraFields map[string]interface{}) {
	if LoggerInstance == nil {
		return
	}

	// 转换为logrus级别
	logrusLevel := toLogrusLevel(level)

	fields := logrus.Fields{
		"type":      SystemLog,
		"component": component,
		"event":     event,
		"message":   message,
		"level":     logrusLevel.String(),
	}

	// 添加额外字段
	for k, v := range extraFields {
		fields[k] = v
	}

	// 根据级别记录日志
	switch logrusLevel {
	case logrus.DebugLevel:
		LoggerInstance.logger.WithFields(fields).Debug(fmt.Sprintf("System event: %s - %s", component, event))
	case logrus.InfoLevel:
		LoggerInstance.logger.WithFields(fields).Info(fmt.Sprintf("System event: %s - %s", component, event))
	case logrus.WarnLevel:
		LoggerInstance.logger.WithFields(fields).Warn(fmt.Sprintf("System event: %s - %s", component, event))
	case logrus.ErrorLevel:
		LoggerInstance.logger.WithFields(fields).Error(fmt.Sprintf("System event: %s - %s", component, event))
	case logrus.FatalLevel:
		LoggerInstance.logger.WithFields(fields).Fatal(fmt.Sprintf("System event: %s - %s", component, event))
	default:
		LoggerInstance.logger.WithFields(fields).Info(fmt.Sprintf("System event: %s - %s", component, event))
	}
}

// LogLevel 日志级别类型，封装logrus.Level避免上层直接依赖logrus
type LogLevel int

const (
	// DebugLevel 调试级别
	DebugLevel LogLevel = iota
	// InfoLevel 信息级别
	InfoLevel
	// WarnLevel 警告级别
	WarnLevel
	// ErrorLevel 错误级别
	ErrorLevel
	// FatalLevel 致命错误级别
	FatalLevel
)

// toLogrusLevel 将封装的LogLevel转换为logrus.Level
func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case DebugLevel:
		return logrus.DebugLevel
	case InfoLevel:
		return logrus.InfoLevel
	case WarnLevel:
		return logrus.WarnLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
