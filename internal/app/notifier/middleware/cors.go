/**
 * CORS中间件
 * @author: sun977
 * @date: 2026.03.15
 * @description: 跨域请求处理中间件,默认对所有来源放行以匹配局域网上报场景
 * @func: CORSMiddleware、预检请求处理
 */
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"neonotifier/internal/config"
)

// CORSMiddleware CORS中间件
type CORSMiddleware struct {
	config *config.CORSConfig
}

// NewCORSMiddleware 创建CORS中间件
func NewCORSMiddleware(cfg *config.CORSConfig) *CORSMiddleware {
	if cfg == nil {
		cfg = &config.CORSConfig{
			Enabled:         true,
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:    []string{"Content-Type", "Content-Length"},
			MaxAge:          43200,
		}
	}

	return &CORSMiddleware{config: cfg}
}

// Handler CORS处理器
// 响应头对所有应答生效,包括404,面板轮询统计接口时依赖这一点
func (m *CORSMiddleware) Handler() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if !m.config.Enabled {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")

		// 处理预检请求
		if c.Request.Method == http.MethodOptions {
			m.setPreflightHeaders(c, origin)
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		m.setCORSHeaders(c, origin)

		c.Next()
	})
}

// setCORSHeaders 设置CORS头部
func (m *CORSMiddleware) setCORSHeaders(c *gin.Context, origin string) {
	// 设置允许的源
	if m.config.AllowAllOrigins {
		c.Header("Access-Control-Allow-Origin", "*")
	} else if m.isOriginAllowed(origin) {
		c.Header("Access-Control-Allow-Origin", origin)
	}

	// 设置允许的方法
	if len(m.config.AllowMethods) > 0 {
		c.Header("Access-Control-Allow-Methods", strings.Join(m.config.AllowMethods, ", "))
	}

	// 设置允许的头部
	if len(m.config.AllowHeaders) > 0 {
		c.Header("Access-Control-Allow-Headers", strings.Join(m.config.AllowHeaders, ", "))
	}
}

// setPreflightHeaders 设置预检响应头部
func (m *CORSMiddleware) setPreflightHeaders(c *gin.Context, origin string) {
	m.setCORSHeaders(c, origin)

	// 设置缓存时间
	if m.config.MaxAge > 0 {
		c.Header("Access-Control-Max-Age", strconv.Itoa(m.config.MaxAge))
	}
}

// isOriginAllowed 检查源是否被允许
func (m *CORSMiddleware) isOriginAllowed(origin string) bool {
	if m.config.AllowAllOrigins {
		return true
	}

	if origin == "" {
		return false
	}

	for _, allowed := range m.config.AllowOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	return false
}

// GetConfig 获取当前配置
func (m *CORSMiddleware) GetConfig() *config.CORSConfig {
	return m.config
}
