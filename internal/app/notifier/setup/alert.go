package setup

import (
	"neonotifier/internal/config"
	"neonotifier/internal/pkg/notify"
	alertsvc "neonotifier/internal/service/alert"
)

// SetupAlert 初始化告警处理模块
// 计数器、平台通知分发器与告警服务按依赖顺序装配
func SetupAlert(cfg *config.Config) *AlertModule {
	counters := alertsvc.NewCounters()
	notifier := notify.NewPlatformNotifier(cfg.Notify)
	service := alertsvc.NewService(counters, notifier)

	return &AlertModule{
		Counters: counters,
		Notifier: notifier,
		Service:  service,
	}
}
