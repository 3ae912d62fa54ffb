/**
 * 路由注册
 * @author: sun977
 * @date: 2026.03.15
 * @description: 通知服务路由注册,统一管理告警上报与状态查询路由
 * @func: Router、NewRouter、registerRoutes
 */
package router

import (
	"github.com/gin-gonic/gin"

	"neonotifier/internal/app/notifier/middleware"
	"neonotifier/internal/config"
	alerthandler "neonotifier/internal/handler/alert"
	statushandler "neonotifier/internal/handler/status"
	"neonotifier/internal/pkg/notify"
	alertsvc "neonotifier/internal/service/alert"
)

// Router 通知服务路由器
type Router struct {
	engine *gin.Engine
	config *config.Config

	// 中间件
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware

	// 处理器
	alertHandler  *alerthandler.AlertHandler
	statusHandler *statushandler.StatusHandler
}

// NewRouter 创建路由器
func NewRouter(cfg *config.Config, service *alertsvc.Service, notifier *notify.PlatformNotifier) *Router {
	// 设置Gin模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine: engine,
		config: cfg,
	}

	// 初始化中间件
	r.initMiddleware()

	// 初始化处理器
	r.initHandlers(service, notifier)

	// 注册路由
	r.registerRoutes()

	return r
}

// initMiddleware 初始化中间件
func (r *Router) initMiddleware() {
	mwCfg := r.config.Middleware
	if mwCfg == nil {
		mwCfg = &config.MiddlewareConfig{}
	}

	r.corsMiddleware = middleware.NewCORSMiddleware(mwCfg.CORS)
	r.loggingMiddleware = middleware.NewLoggingMiddleware(mwCfg.Logging)
}

// initHandlers 初始化处理器
func (r *Router) initHandlers(service *alertsvc.Service, notifier *notify.PlatformNotifier) {
	r.alertHandler = alerthandler.NewAlertHandler(service)
	r.statusHandler = statushandler.NewStatusHandler(service, notifier, r.config.App.Name)
}

// registerRoutes 注册路由
func (r *Router) registerRoutes() {
	// 注册全局中间件
	r.registerGlobalMiddleware()

	// 告警上报接口,GET与POST同路径注册,兼容curl快速上报和Agent结构化上报两种方式
	r.engine.GET("/api/agent/edr-alert", r.alertHandler.HandleAlertGet)
	r.engine.POST("/api/agent/edr-alert", r.alertHandler.HandleAlertPost)

	// 状态查询接口
	r.engine.GET("/health", r.statusHandler.HandleHealth)
	r.engine.GET("/stats", r.statusHandler.HandleStats)

	// 未知路径与未注册方法统一返回404,与上一代服务的对外行为一致
	r.engine.HandleMethodNotAllowed = true
	r.engine.NoRoute(r.statusHandler.HandleNotFound)
	r.engine.NoMethod(r.statusHandler.HandleNotFound)
}

// registerGlobalMiddleware 注册全局中间件
func (r *Router) registerGlobalMiddleware() {
	// 恢复中间件
	r.engine.Use(middleware.RecoveryMiddleware())

	// 服务端标识头
	r.engine.Use(middleware.ServerHeaderMiddleware())

	// CORS中间件
	if r.corsMiddleware != nil {
		r.engine.Use(r.corsMiddleware.Handler())
	}

	// 日志中间件
	if r.loggingMiddleware != nil {
		r.engine.Use(r.loggingMiddleware.Handler())
	}
}

// GetEngine 获取Gin引擎
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
