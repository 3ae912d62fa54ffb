/**
 * 恢复中间件
 * @author: sun977
 * @date: 2026.03.15
 * @description: panic恢复中间件,单条请求的异常不能拖垮常驻守护进程
 * @func: RecoveryMiddleware
 */
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"neonotifier/internal/model"
	"neonotifier/internal/pkg/logger"
	"neonotifier/internal/pkg/utils"
)

// RecoveryMiddleware panic恢复中间件
// 恢复后按统一错误格式应答,进程继续对外服务
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.LogError(
			fmt.Errorf("panic recovered: %v", recovered),
			utils.GetClientIP(c),
			c.Request.URL.Path,
			c.Request.Method,
			map[string]interface{}{"reason": "panic"},
		)

		c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewErrorResponse("Internal Server Error"))
	})
}
