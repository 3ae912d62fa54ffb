/**
 * 通知:通知后端契约
 * @author: sun977
 * @date: 2026.03.13
 * @description: 桌面通知后端的统一接口与分发结果定义
 * @func: Backend接口、Notification、Result
 */
package notify

// 后端名称,分发结果与状态接口共用
const (
	// BackendLibrary 跨平台通知库后端
	BackendLibrary = "native_library"
	// BackendNative 操作系统原生通知后端
	BackendNative = "platform_native"
	// BackendConsole 控制台兜底输出
	BackendConsole = "console_fallback"
)

// Notification 一次桌面通知的全部内容
type Notification struct {
	Title    string
	Message  string
	Severity string
	// IconPath 图标路径,空串表示使用桌面环境默认图标
	IconPath string
	// TimeoutSeconds 通知展示时长,只有支持过期时间的后端会使用
	TimeoutSeconds int
}

// Backend 通知后端策略接口
// Available 为运行时探测,Notify/PlaySound 的失败由分发器统一兜底
type Backend interface {
	Name() string
	Available() bool
	Notify(n *Notification) error
	PlaySound() error
}

// Result 一次分发的结果,只用于记录
type Result struct {
	Backend   string
	Succeeded bool
}
