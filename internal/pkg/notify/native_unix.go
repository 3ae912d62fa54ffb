//go:build !windows && !darwin

package notify

import (
	"fmt"
	"os"
	"os/exec"
)

// Linux/Unix 下的原生通知实现
// 策略:
// 1. 桌面通知走 notify-send (libnotify,主流桌面发行版自带)
// 2. 音效走 paplay 播放系统提示音,失败退化为终端响铃

type nativeBackend struct{}

func newNativeBackend() Backend {
	return nativeBackend{}
}

func (nativeBackend) Name() string {
	return BackendNative
}

// Available 探测 notify-send 是否存在
func (nativeBackend) Available() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

func (nativeBackend) Notify(n *Notification) error {
	expireMs := n.TimeoutSeconds * 1000
	if expireMs <= 0 {
		expireMs = 10000
	}

	args := []string{
		n.Title,
		n.Message,
		"--urgency=critical",
		fmt.Sprintf("--expire-time=%d", expireMs),
	}
	if n.IconPath != "" {
		args = append(args, "--icon="+n.IconPath)
	}

	return exec.Command("notify-send", args...).Run()
}

// PlaySound 播放系统提示音
// paplay 不存在或播放失败时退化为终端响铃,响铃不会失败
func (nativeBackend) PlaySound() error {
	if paplayPath, err := exec.LookPath("paplay"); err == nil {
		if err := exec.Command(paplayPath, "/usr/share/sounds/alsa/Front_Right.wav").Run(); err == nil {
			return nil
		}
	}

	fmt.Fprint(os.Stdout, "\a")
	return nil
}
