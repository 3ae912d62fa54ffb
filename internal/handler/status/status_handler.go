/**
 * 状态查询处理器
 * @author: sun977
 * @date: 2026.03.15
 * @description: 健康检查与运行统计的只读接口
 * @func: StatusHandler、HandleHealth、HandleStats、HandleNotFound
 */
package status

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"neonotifier/internal/model"
	"neonotifier/internal/pkg/monitor"
	alertsvc "neonotifier/internal/service/alert"
)

// PlatformProbe 状态接口依赖的平台探测能力
type PlatformProbe interface {
	LibraryAvailable() bool
	SoundEnabled() bool
}

// StatusHandler 健康检查与统计处理器
// 纯读路径,不触碰任何共享状态
type StatusHandler struct {
	service     *alertsvc.Service
	probe       PlatformProbe
	serviceName string
}

// NewStatusHandler 创建状态查询处理器实例
func NewStatusHandler(service *alertsvc.Service, probe PlatformProbe, serviceName string) *StatusHandler {
	return &StatusHandler{
		service:     service,
		probe:       probe,
		serviceName: serviceName,
	}
}

// HandleHealth 健康检查
// @Summary 健康检查
// @Description 返回服务健康状态与累计告警数
// @Tags 状态
// @Produce json
// @Success 200 {object} model.HealthResponse "服务健康"
// @Router /health [get]
func (h *StatusHandler) HandleHealth(c *gin.Context) {
	// uptime沿用历史语义:调用时刻的Unix秒,不是运行时长
	c.JSON(http.StatusOK, &model.HealthResponse{
		Status:     "healthy",
		Service:    h.serviceName,
		Uptime:     time.Now().Unix(),
		AlertCount: h.service.AlertCount(),
	})
}

// HandleStats 运行统计
// @Summary 运行统计
// @Description 返回告警计数、平台信息与通知能力状态
// @Tags 状态
// @Produce json
// @Success 200 {object} model.StatsResponse "统计信息"
// @Router /stats [get]
func (h *StatusHandler) HandleStats(c *gin.Context) {
	// plyer_available 字段名为兼容上一代服务的面板保留
	c.JSON(http.StatusOK, &model.StatsResponse{
		AlertCount:     h.service.AlertCount(),
		System:         monitor.SystemName(),
		PlyerAvailable: h.probe.LibraryAvailable(),
		SoundEnabled:   h.probe.SoundEnabled(),
	})
}

// HandleNotFound 未知路径统一应答
// 未注册的路径和方法都落到这里,返回与历史一致的404 JSON
func (h *StatusHandler) HandleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, model.NewErrorResponse("Not Found"))
}
