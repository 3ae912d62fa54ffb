package setup

import (
	"fmt"
	"net/http"

	"neonotifier/internal/app/notifier/router"
	"neonotifier/internal/config"
)

// SetupServer 初始化服务器模块
func SetupServer(cfg *config.Config, alert *AlertModule) *ServerModule {
	r := router.NewRouter(cfg, alert.Service, alert.Notifier)

	// 初始化HTTP服务器
	httpServer := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        r.GetEngine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return &ServerModule{
		Router:     r,
		HTTPServer: httpServer,
	}
}
