/*
 * @author: sun977
 * @date: 2026.03.15
 * @description: Cobra Root Command 定义
 */

package main

import (
	"fmt"
	"os"

	"neonotifier/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	flagPort    int
	flagHost    string
	flagNoSound bool
	flagTest    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "neoNotifier",
	Short: "neoNotifier 本机EDR告警提醒器",
	Long: `neoNotifier 是运行在分析人员工作机上的EDR告警中继守护进程。
它监听本机HTTP端口接收EDR上报的告警,转换为桌面通知与告警音效,
并持续累计告警统计供面板查询。

示例:
  1.默认启动(监听 0.0.0.0:8080)
	neoNotifier
  2.指定端口并关闭音效
	neoNotifier -p 9090 --no-sound
  3.发送一条测试通知后退出
	neoNotifier --test
  4.用指定配置文件启动
	neoNotifier --config /etc/neonotifier/config.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadRunConfig(cmd)

		// 测试模式只发一条通知,不启动监听
		if flagTest {
			runTest(cfg)
			return
		}

		runServer(cfg)
	},
}

func Execute() {
	// 全局 Panic Recovery,启动期的异常也要给出可读的错误而不是堆栈
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n[FATAL] Notifier crashed unexpectedly: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// 全局 Flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "配置文件路径 (默认: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "日志级别 (debug, info, warn, error)")

	// 运行参数,与上一代服务的命令行保持兼容
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "监听端口 (默认: 8080)")
	rootCmd.Flags().StringVarP(&flagHost, "host", "H", "", "监听地址 (默认: 0.0.0.0)")
	rootCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "禁用告警音效")
	rootCmd.Flags().BoolVar(&flagTest, "test", false, "发送测试通知后退出")
}

// loadRunConfig 加载配置并合并命令行参数
// 优先级:命令行参数 > 环境变量 > 配置文件 > 缺省值
func loadRunConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.Server.Port = flagPort
	}
	if f := cmd.Flags().Lookup("host"); f != nil && f.Changed {
		cfg.Server.Host = flagHost
	}
	if flagNoSound {
		cfg.Notify.SoundEnabled = false
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.Log.Level = f.Value.String()
	}

	return cfg
}
