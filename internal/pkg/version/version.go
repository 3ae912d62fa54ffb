// Package version 维护 neoNotifier 的版本信息
// 发布时更新 Version,其余变量由构建脚本通过 -ldflags 注入
package version

var (
	Version    = "1.2.0" // 版本号 -- 发布时候更新版本号
	APIVersion = "1.0"
	BuildTime  string
	GitCommit  string
	GoVersion  string
)

func GetVersion() string {
	return Version
}

// GetUserAgent 返回对外请求使用的 UA 标识
func GetUserAgent() string {
	return "neoNotifier/" + Version
}
