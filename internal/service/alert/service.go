/**
 * 服务:告警处理服务
 * @author: sun977
 * @date: 2026.03.14
 * @description: 告警处理主流程,规范化->计数->记录->同步分发通知与音效
 * @func: Service、Process、SendTest
 */
package alert

import (
	"neonotifier/internal/model"
	"neonotifier/internal/pkg/logger"
	"neonotifier/internal/pkg/notify"
)

// 测试通知文案
const (
	testNotificationTitle   = "🧪 EDR 测试通知"
	testNotificationMessage = "这是一条测试消息，用于验证通知功能是否正常工作。"
)

// Notifier 平台通知能力
// 服务只依赖接口,平台实现可替换
type Notifier interface {
	Notify(title, message, severity string) notify.Result
	PlaySound() notify.Result
}

// Service 告警处理服务
type Service struct {
	counters *Counters
	notifier Notifier
}

func NewService(counters *Counters, notifier Notifier) *Service {
	return &Service{
		counters: counters,
		notifier: notifier,
	}
}

// Process 处理一条告警
// 空字段先补缺省值再规范化;计数在规范化后立即加一,之后的分发结果不影响计数。
// 分发是同步的:调用方要等分发尝试结束才能写响应,分发失败不向上传播
func (s *Service) Process(rawType, rawMessage string) notify.Result {
	if rawType == "" {
		rawType = model.DefaultAlertType
	}
	if rawMessage == "" {
		rawMessage = model.DefaultAlertMessage
	}

	a, title := Normalize(rawType, rawMessage)
	seq := s.counters.Incr()

	logger.LogAlertEvent(seq, a.RawType, title, a.Message, a.Severity.String(), a.Severity.Escalates())

	result := s.notifier.Notify(title, a.Message, a.Severity.String())
	s.notifier.PlaySound()

	return result
}

// SendTest 发送一条测试通知验证链路
// 不计入告警计数,不写告警日志,也不触发音效
func (s *Service) SendTest() notify.Result {
	return s.notifier.Notify(testNotificationTitle, testNotificationMessage, model.SeverityInfo.String())
}

// AlertCount 当前累计告警数,状态接口读取
func (s *Service) AlertCount() uint64 {
	return s.counters.Alerts()
}
