/**
 * 通知:平台通知分发器
 * @author: sun977
 * @date: 2026.03.14
 * @description: 桌面通知与音效的策略链分发,控制台兜底保证告警永远可见
 * @func: PlatformNotifier、Notify、PlaySound、LibraryAvailable
 */
package notify

import (
	"neonotifier/internal/config"
	"neonotifier/internal/pkg/logger"
)

// PlatformNotifier 平台通知分发器
// 策略链: native_library -> platform_native,取第一个可用的后端
// 选中的后端发送失败时直接落到控制台兜底,不再尝试链上的下一个后端
type PlatformNotifier struct {
	library        Backend
	native         Backend
	console        *consoleBackend
	soundEnabled   bool
	timeoutSeconds int
}

// NewPlatformNotifier 创建平台通知分发器
func NewPlatformNotifier(cfg *config.NotifyConfig) *PlatformNotifier {
	return &PlatformNotifier{
		library:        newLibraryBackend(),
		native:         newNativeBackend(),
		console:        newConsoleBackend(),
		soundEnabled:   cfg.SoundEnabled,
		timeoutSeconds: cfg.TimeoutSeconds,
	}
}

// Notify 发送桌面通知
// 结果只用于记录,任何失败都不会向调用方传播
func (p *PlatformNotifier) Notify(title, message, severity string) Result {
	n := &Notification{
		Title:          title,
		Message:        message,
		Severity:       severity,
		IconPath:       iconFor(severity),
		TimeoutSeconds: p.timeoutSeconds,
	}

	for _, b := range []Backend{p.library, p.native} {
		if !b.Available() {
			continue
		}
		if err := b.Notify(n); err != nil {
			// 失败直接兜底,不尝试下一个后端
			logger.LogNotifyEvent("notify", b.Name(), false, err)
			break
		}
		logger.LogNotifyEvent("notify", b.Name(), true, nil)
		return Result{Backend: b.Name(), Succeeded: true}
	}

	_ = p.console.Notify(n)
	logger.LogNotifyEvent("notify", BackendConsole, true, nil)
	return Result{Backend: BackendConsole, Succeeded: true}
}

// PlaySound 播放告警音效
// 音效是尽力而为的旁路:关闭时什么都不做,播放失败只留痕不兜底
func (p *PlatformNotifier) PlaySound() Result {
	if !p.soundEnabled {
		return Result{}
	}

	for _, b := range []Backend{p.library, p.native} {
		if !b.Available() {
			continue
		}
		if err := b.PlaySound(); err != nil {
			logger.LogNotifyEvent("sound", b.Name(), false, err)
			return Result{Backend: b.Name(), Succeeded: false}
		}
		logger.LogNotifyEvent("sound", b.Name(), true, nil)
		return Result{Backend: b.Name(), Succeeded: true}
	}

	_ = p.console.PlaySound()
	return Result{Backend: BackendConsole, Succeeded: true}
}

// LibraryAvailable 通知库当前是否可用,状态接口的plyer_available字段
func (p *PlatformNotifier) LibraryAvailable() bool {
	return p.library.Available()
}

// SoundEnabled 音效开关状态
func (p *PlatformNotifier) SoundEnabled() bool {
	return p.soundEnabled
}

// ActiveBackendName 当前会被选中的后端名称,启动日志与排障用
func (p *PlatformNotifier) ActiveBackendName() string {
	for _, b := range []Backend{p.library, p.native} {
		if b.Available() {
			return b.Name()
		}
	}
	return BackendConsole
}
