package notify

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// libraryBackend 通过 beeep 库发送跨平台桌面通知
// darwin/windows 由库内部对接系统通知中心,Linux走D-Bus
type libraryBackend struct{}

func newLibraryBackend() Backend {
	return libraryBackend{}
}

func (libraryBackend) Name() string {
	return BackendLibrary
}

// Available 探测通知库在当前环境是否可用
// Linux及其他Unix需要图形会话,无DISPLAY的纯终端环境下D-Bus通知必然失败
func (libraryBackend) Available() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	default:
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
}

func (libraryBackend) Notify(n *Notification) error {
	return beeep.Notify(n.Title, n.Message, n.IconPath)
}

func (libraryBackend) PlaySound() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}
