package setup

import (
	"net/http"

	"neonotifier/internal/app/notifier/router"
	"neonotifier/internal/pkg/notify"
	alertsvc "neonotifier/internal/service/alert"
)

// AlertModule 告警处理模块
type AlertModule struct {
	Counters *alertsvc.Counters
	Notifier *notify.PlatformNotifier
	Service  *alertsvc.Service
}

// ServerModule 服务器模块
type ServerModule struct {
	Router     *router.Router
	HTTPServer *http.Server
}
