package notify

import (
	"fmt"
	"syscall"
	"unsafe"
)

// Windows 下使用 user32.dll 的消息框和系统提示音
// int MessageBoxW(HWND hWnd, LPCWSTR lpText, LPCWSTR lpCaption, UINT uType);
// BOOL MessageBeep(UINT uType);

var (
	modUser32       = syscall.NewLazyDLL("user32.dll")
	procMessageBoxW = modUser32.NewProc("MessageBoxW")
	procMessageBeep = modUser32.NewProc("MessageBeep")
)

// MB_ICONINFORMATION
const mbIconInformation = 0x40

type nativeBackend struct{}

func newNativeBackend() Backend {
	return nativeBackend{}
}

func (nativeBackend) Name() string {
	return BackendNative
}

// Available user32.dll 属于系统基础组件,Windows下恒可用
func (nativeBackend) Available() bool {
	return true
}

// Notify 弹出系统消息框
// 注意:MessageBoxW 会阻塞到用户关闭弹窗,期间占用当前处理协程
func (nativeBackend) Notify(n *Notification) error {
	text, err := syscall.UTF16PtrFromString(n.Message)
	if err != nil {
		return err
	}
	caption, err := syscall.UTF16PtrFromString(n.Title)
	if err != nil {
		return err
	}

	// 返回 0 表示调用失败
	r1, _, callErr := procMessageBoxW.Call(
		0,
		uintptr(unsafe.Pointer(text)),
		uintptr(unsafe.Pointer(caption)),
		uintptr(mbIconInformation),
	)
	if r1 == 0 {
		return fmt.Errorf("MessageBoxW failed: %v", callErr)
	}
	return nil
}

// PlaySound 播放系统默认提示音
func (nativeBackend) PlaySound() error {
	// uType 0 = MB_OK 默认音
	r1, _, callErr := procMessageBeep.Call(0)
	if r1 == 0 {
		return fmt.Errorf("MessageBeep failed: %v", callErr)
	}
	return nil
}
