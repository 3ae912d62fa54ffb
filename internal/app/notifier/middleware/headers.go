/**
 * 响应头中间件
 * @author: sun977
 * @date: 2026.03.15
 * @description: 为所有响应附加服务端标识头
 */
package middleware

import (
	"github.com/gin-gonic/gin"

	"neonotifier/internal/pkg/version"
)

// ServerHeaderMiddleware 服务端标识头中间件
// 上一代服务的每个响应都带 Server 头,保持对外行为一致
func ServerHeaderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Server", version.GetUserAgent())
		c.Next()
	}
}
