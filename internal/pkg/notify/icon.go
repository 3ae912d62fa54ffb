package notify

// iconFor 根据告警级别返回图标路径
// 预留位:当前所有级别都是空串,由桌面环境使用默认图标
// 未知级别同样返回空串,永远不会失败
func iconFor(severity string) string {
	iconMap := map[string]string{
		"info":     "",
		"warning":  "",
		"error":    "",
		"critical": "",
	}
	return iconMap[severity]
}
