/*
 * @author: sun977
 * @date: 2026.03.15
 * @description: 服务模式与测试模式的运行逻辑
 */

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	notifierapp "neonotifier/internal/app/notifier"
	"neonotifier/internal/config"
	"neonotifier/internal/pkg/logger"
	"neonotifier/internal/pkg/monitor"

	"github.com/pterm/pterm"
)

// runServer 启动守护进程并等待中断信号
func runServer(cfg *config.Config) {
	// 创建应用实例
	app, err := notifierapp.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create notifier app: %v", err)
	}

	// 启动应用,端口被占用等绑定失败在这里直接退出
	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start notifier app: %v", err)
	}

	printStartupBanner(app)

	logger.Infof("EDR告警提醒器启动: %s:%d", cfg.Server.Host, cfg.Server.Port)

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("\n正在关闭服务器...")

	// 给服务器5秒钟的时间来完成现有请求
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Stop(ctx); err != nil {
		log.Fatal("Notifier forced to shutdown:", err)
	}

	logger.Info("EDR告警提醒器已停止")
}

// runTest 发送一条测试通知后退出,不启动HTTP监听
// 测试通知不计入告警统计,也不触发音效
func runTest(cfg *config.Config) {
	app, err := notifierapp.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create notifier app: %v", err)
	}

	pterm.Info.Println("发送测试通知...")
	result := app.GetService().SendTest()
	pterm.Success.Printf("测试通知已发送 (后端: %s)\n", result.Backend)
}

// printStartupBanner 打印启动横幅,保持与上一代服务一致的输出内容
func printStartupBanner(app *notifierapp.App) {
	cfg := app.GetConfig()
	notifier := app.GetNotifier()

	base := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)

	library := "系统原生"
	if notifier.LibraryAvailable() {
		library = "beeep"
	}

	sound := "禁用"
	if notifier.SoundEnabled() {
		sound = "启用"
	}

	divider := strings.Repeat("=", 60)
	pterm.Println(divider)
	pterm.Println("🚀 EDR 告警提醒器已启动")
	pterm.Println(divider)

	rows := pterm.TableData{
		{"监听地址", base},
		{"告警API", base + "/api/agent/edr-alert"},
		{"健康检查", base + "/health"},
		{"统计信息", base + "/stats"},
		{"系统平台", monitor.SystemName()},
		{"通知库", library},
		{"告警音效", sound},
	}
	if err := pterm.DefaultTable.WithBoxed(false).WithData(rows).Render(); err != nil {
		// 表格渲染失败降级为逐行输出
		for _, row := range rows {
			pterm.Printf("%s: %s\n", row[0], row[1])
		}
	}

	pterm.Println(divider)
	pterm.Println("按 Ctrl+C 停止服务")
	pterm.Println()
}
