// 控制台兜底通知
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// consoleBackend 通知链的最后一环
// 永远可用且永远不会失败,保证告警至少在控制台可见
type consoleBackend struct {
	w io.Writer
}

func newConsoleBackend() *consoleBackend {
	return &consoleBackend{w: os.Stdout}
}

func (c *consoleBackend) Name() string {
	return BackendConsole
}

func (c *consoleBackend) Available() bool {
	return true
}

// Notify 打印带分隔线的告警块,写入错误直接忽略
func (c *consoleBackend) Notify(n *Notification) error {
	divider := strings.Repeat("=", 50)

	fmt.Fprintf(c.w, "\n%s\n", divider)
	fmt.Fprintln(c.w, "🚨 EDR告警 🚨")
	fmt.Fprintf(c.w, "时间: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(c.w, "标题: %s\n", n.Title)
	fmt.Fprintf(c.w, "内容: %s\n", n.Message)
	fmt.Fprintf(c.w, "类型: %s\n", n.Severity)
	fmt.Fprintf(c.w, "%s\n\n", divider)

	return nil
}

// PlaySound 终端响铃
func (c *consoleBackend) PlaySound() error {
	fmt.Fprint(c.w, "\a")
	return nil
}
