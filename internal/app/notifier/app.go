/**
 * 通知服务应用核心逻辑
 * @author: sun977
 * @date: 2026.03.15
 * @description: 应用初始化与生命周期管理,负责装配各组件并从main函数分离应用逻辑
 * @architecture: App持有路由/服务器/告警服务,Start与Stop管理生命周期
 */

package notifier

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"neonotifier/internal/app/notifier/router"
	"neonotifier/internal/app/notifier/setup"
	"neonotifier/internal/config"
	"neonotifier/internal/pkg/logger"
	"neonotifier/internal/pkg/monitor"
	"neonotifier/internal/pkg/notify"
	alertsvc "neonotifier/internal/service/alert"
)

// App 通知服务应用结构体
type App struct {
	config        *config.Config
	logger        *logger.LoggerManager
	router        *router.Router
	httpServer    *http.Server
	counters      *alertsvc.Counters
	notifier      *notify.PlatformNotifier
	service       *alertsvc.Service
	configWatcher *config.ConfigWatcher
}

// NewApp 创建应用实例
// cfg为nil时走默认配置查找路径,命令行入口会传入已合并flag的配置
func NewApp(cfg *config.Config) (*App, error) {
	if cfg == nil {
		loaded, err := config.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// 初始化日志管理器
	loggerManager, err := logger.InitLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	// 记录应用启动日志
	logger.Info("neoNotifier application initializing...")

	// 初始化各模块
	alertModule := setup.SetupAlert(cfg)
	serverModule := setup.SetupServer(cfg, alertModule)

	return &App{
		config:     cfg,
		logger:     loggerManager,
		router:     serverModule.Router,
		httpServer: serverModule.HTTPServer,
		counters:   alertModule.Counters,
		notifier:   alertModule.Notifier,
		service:    alertModule.Service,
	}, nil
}

// GetRouter 获取路由器实例
func (a *App) GetRouter() *router.Router {
	return a.router
}

// GetConfig 获取配置实例
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetHTTPServer 获取HTTP服务器实例
func (a *App) GetHTTPServer() *http.Server {
	return a.httpServer
}

// GetService 获取告警服务实例
func (a *App) GetService() *alertsvc.Service {
	return a.service
}

// GetNotifier 获取平台通知分发器实例
func (a *App) GetNotifier() *notify.PlatformNotifier {
	return a.notifier
}

// Start 启动应用
func (a *App) Start() error {
	logger.Info("Starting neoNotifier server...")

	// 先显式绑定端口,绑定失败要让调用方直接退出而不是空转
	ln, err := net.Listen("tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", a.httpServer.Addr, err)
	}

	// 启动HTTP服务器
	go func() {
		if err := a.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server terminated unexpectedly: ", err)
		}
	}()

	logger.Infof("neoNotifier started successfully on %s", a.httpServer.Addr)
	logger.Infof("Notification backend selected: %s", a.notifier.ActiveBackendName())

	// 主机环境采集可能较慢,后台记录不阻塞启动
	go a.logHostEnvironment()

	// 启动配置热重载
	a.startConfigWatcher()

	return nil
}

// logHostEnvironment 记录被保护主机的环境信息
// 排查告警来源时经常要对照主机环境,启动时留一条系统日志
func (a *App) logHostEnvironment() {
	hostInfo, err := monitor.GetHostInfo()
	if err != nil {
		logger.Error("Failed to collect host environment: ", err)
		return
	}

	logger.LogSystemEvent("App", "HostEnvironment", "Host environment collected", logger.InfoLevel, map[string]interface{}{
		"hostname":         hostInfo.Hostname,
		"system":           hostInfo.System,
		"platform":         hostInfo.Platform,
		"platform_version": hostInfo.PlatformVersion,
		"kernel_version":   hostInfo.KernelVersion,
		"arch":             hostInfo.Arch,
		"cpu_cores":        hostInfo.CPUCores,
		"memory_total":     monitor.FormatBytes(hostInfo.MemoryTotal),
	})
}

// Stop 停止应用
func (a *App) Stop(ctx context.Context) error {
	logger.Info("Stopping neoNotifier server...")

	// 先停配置监听,避免关停期间触发重载
	if a.configWatcher != nil {
		if err := a.configWatcher.Stop(); err != nil {
			logger.Warnf("Failed to stop config watcher: %v", err)
		}
	}

	// 停止HTTP服务器
	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop HTTP server: %w", err)
	}

	logger.Info("neoNotifier stopped successfully")
	return nil
}

// startConfigWatcher 启动配置文件热重载
// 运行期只接受日志配置变化,host/port/sound改动会被拒绝并等待重启生效
func (a *App) startConfigWatcher() {
	configFile := config.UsedConfigFile()
	if configFile == "" {
		// 纯命令行参数运行时没有可监听的文件
		logger.Debug("No config file in use, hot reload disabled")
		return
	}

	watcher, err := config.WatchConfig(configFile, func(oldCfg, newCfg *config.Config) error {
		if err := config.ValidateConfigChange(oldCfg, newCfg); err != nil {
			logger.Warnf("Config change rejected: %v", err)
			return err
		}

		if a.logger != nil {
			if err := a.logger.UpdateConfig(newCfg.Log); err != nil {
				return fmt.Errorf("failed to apply log config: %w", err)
			}
		}

		config.SetConfig(newCfg)
		logger.Info("Config hot reload applied")
		return nil
	})
	if err != nil {
		logger.Warnf("Failed to start config watcher: %v", err)
		return
	}

	a.configWatcher = watcher
	logger.Infof("Config hot reload watching %s", configFile)
}
