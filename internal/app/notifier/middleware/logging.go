/**
 * 日志中间件
 * @author: sun977
 * @date: 2026.03.15
 * @description: HTTP访问日志中间件,记录每次上报请求的处理信息
 * @func: LoggingMiddleware
 */
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"neonotifier/internal/config"
	"neonotifier/internal/pkg/logger"
)

// LoggingMiddleware 访问日志中间件
type LoggingMiddleware struct {
	config *config.LoggingConfig
}

// NewLoggingMiddleware 创建日志中间件
func NewLoggingMiddleware(cfg *config.LoggingConfig) *LoggingMiddleware {
	if cfg == nil {
		cfg = &config.LoggingConfig{Enabled: true}
	}

	return &LoggingMiddleware{config: cfg}
}

// Handler 日志处理器
// 访问日志和告警事件日志是两条线:这里记录HTTP维度,告警维度由服务层记录
func (m *LoggingMiddleware) Handler() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		if !m.config.Enabled || m.shouldSkip(c.Request.URL.Path) {
			c.Next()
			return
		}

		startTime := time.Now()

		c.Next()

		logger.LogAccessRequest(c, startTime)
	})
}

// shouldSkip 检查是否跳过该路径的访问日志
func (m *LoggingMiddleware) shouldSkip(path string) bool {
	for _, skip := range m.config.SkipPaths {
		if path == skip {
			return true
		}
	}
	return false
}

// GetConfig 获取当前配置
func (m *LoggingMiddleware) GetConfig() *config.LoggingConfig {
	return m.config
}
