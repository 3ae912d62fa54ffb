/**
 * 告警接收处理器
 * @author: sun977
 * @date: 2026.03.15
 * @description: EDR告警接收入口,支持GET查询串与POST JSON两种提交编码
 * @func: AlertHandler、HandleAlertGet、HandleAlertPost
 */
package alert

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"neonotifier/internal/model"
	"neonotifier/internal/pkg/logger"
	"neonotifier/internal/pkg/utils"
	alertsvc "neonotifier/internal/service/alert"
)

// 应答文案
const ackMessage = "alert received and processed"

// AlertHandler 告警接收处理器
type AlertHandler struct {
	service *alertsvc.Service
}

// NewAlertHandler 创建告警接收处理器实例
func NewAlertHandler(service *alertsvc.Service) *AlertHandler {
	return &AlertHandler{
		service: service,
	}
}

// HandleAlertGet 接收GET方式提交的告警
// @Summary 接收EDR告警(GET)
// @Description 从查询参数读取告警类型与内容,缺失或为空时使用缺省值,永远不因查询串报错
// @Tags 告警
// @Produce json
// @Param type query string false "告警类型" default(info)
// @Param message query string false "告警内容"
// @Success 200 {object} model.APIResponse "告警已接收并处理"
// @Router /api/agent/edr-alert [get]
func (h *AlertHandler) HandleAlertGet(c *gin.Context) {
	// 缺失与空值同等对待,由服务层补缺省值
	rawType := c.Query("type")
	rawMessage := c.Query("message")

	h.service.Process(rawType, rawMessage)

	c.JSON(http.StatusOK, model.NewSuccessResponse(ackMessage))
}

// HandleAlertPost 接收POST方式提交的告警
// @Summary 接收EDR告警(POST)
// @Description 从JSON请求体读取告警类型与内容,字段缺省值与GET一致
// @Tags 告警
// @Accept json
// @Produce json
// @Param request body model.AlertRequest true "告警数据"
// @Success 200 {object} model.APIResponse "告警已接收并处理"
// @Failure 500 {object} model.APIResponse "载荷不可解析"
// @Router /api/agent/edr-alert [post]
func (h *AlertHandler) HandleAlertPost(c *gin.Context) {
	// Content-Length 缺失或为零与畸形JSON同等对待
	// 沿用上一代服务的线上行为:载荷错误返回500而不是400,配套Agent只按非200判定失败
	if c.Request.ContentLength <= 0 {
		h.badPayload(c, fmt.Errorf("empty request body"))
		return
	}

	var req model.AlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badPayload(c, err)
		return
	}

	h.service.Process(req.Type, req.Message)

	c.JSON(http.StatusOK, model.NewSuccessResponse(ackMessage))
}

// badPayload 记录载荷错误并返回500应答
func (h *AlertHandler) badPayload(c *gin.Context, err error) {
	logger.LogError(err, utils.GetClientIP(c), c.Request.URL.Path, c.Request.Method, map[string]interface{}{
		"reason": "bad_payload",
	})
	c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to process alert: "+err.Error()))
}
