package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// macOS (Darwin) 下的原生通知实现
// 策略:
// 1. 桌面通知走 osascript 的 display notification (系统自带,无需安装)
// 2. 音效走 afplay 播放系统提示音

type nativeBackend struct{}

func newNativeBackend() Backend {
	return nativeBackend{}
}

func (nativeBackend) Name() string {
	return BackendNative
}

// Available 探测 osascript 是否存在
func (nativeBackend) Available() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

func (nativeBackend) Notify(n *Notification) error {
	// 标题和内容来自外部请求,必须转义后再拼进AppleScript
	script := fmt.Sprintf(`display notification "%s" with title "%s"`,
		escapeAppleScript(n.Message), escapeAppleScript(n.Title))
	return exec.Command("osascript", "-e", script).Run()
}

func (nativeBackend) PlaySound() error {
	return exec.Command("afplay", "/System/Library/Sounds/Glass.aiff").Run()
}

// escapeAppleScript 转义AppleScript字符串字面量中的反斜杠和双引号
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
