/**
 * 模型:响应模型
 * @author: sun977
 * @date: 2026.03.10
 * @description: API响应数据模型,告警应答/健康检查/统计接口的响应结构体
 * @func: APIResponse、HealthResponse、StatsResponse及构造函数
 */
package model

// 响应状态值
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse 通用API响应结构
// 上报端只认 status/message 两个字段,其余字段保持 omitempty 以兼容旧版接口
type APIResponse struct {
	Code    int         `json:"code,omitempty"`  // 响应状态码，可选
	Status  string      `json:"status"`          // 响应状态："success" 或 "error"
	Message string      `json:"message"`         // 响应消息
	Data    interface{} `json:"data,omitempty"`  // 响应数据，可选
	Error   string      `json:"error,omitempty"` // 错误信息，可选
}

// NewSuccessResponse 构造成功响应
func NewSuccessResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
	}
}

// NewErrorResponse 构造错误响应
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: message,
	}
}

// HealthResponse 健康检查响应结构
type HealthResponse struct {
	Status     string `json:"status"`      // 固定为 "healthy"
	Service    string `json:"service"`     // 服务名称
	Uptime     int64  `json:"uptime"`      // 当前Unix时间戳(秒),沿用旧版接口语义
	AlertCount uint64 `json:"alert_count"` // 已处理告警总数
}

// StatsResponse 运行统计响应结构
type StatsResponse struct {
	AlertCount     uint64 `json:"alert_count"`     // 已处理告警总数
	System         string `json:"system"`          // 宿主操作系统
	PlyerAvailable bool   `json:"plyer_available"` // 通知库后端是否可用(字段名兼容旧版接口)
	SoundEnabled   bool   `json:"sound_enabled"`   // 声音提示是否开启
}
