package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"neonotifier/internal/config"
)

func newCORSRouter(cfg *config.CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewCORSMiddleware(cfg).Handler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error"})
	})
	return r
}

func TestCORSHeaderOnAllResponses(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{Enabled: true, AllowAllOrigins: true})

	// 正常应答带通配CORS头
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// 404应答同样要带,面板跨域轮询时才能读到错误体
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest("GET", "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w2.Code)
	assert.Equal(t, "*", w2.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{
		Enabled:         true,
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          43200,
	})

	req := httptest.NewRequest("OPTIONS", "/ok", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code, "预检请求应该返回204")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "43200", w.Header().Get("Access-Control-Max-Age"))
}

func TestCORSDisabled(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{Enabled: false})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), "关闭CORS后不应该输出响应头")
}

func TestCORSExplicitOriginList(t *testing.T) {
	router := newCORSRouter(&config.CORSConfig{
		Enabled:      true,
		AllowOrigins: []string{"http://dashboard.local"},
	})

	// 命中白名单的来源按原样回显
	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))

	// 未命中时不输出来源头
	req2 := httptest.NewRequest("GET", "/ok", nil)
	req2.Header.Set("Origin", "http://evil.local")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Empty(t, w2.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddlewareSkipPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mw := NewLoggingMiddleware(&config.LoggingConfig{
		Enabled:   true,
		SkipPaths: []string{"/health"},
	})

	assert.True(t, mw.shouldSkip("/health"))
	assert.False(t, mw.shouldSkip("/stats"))
	assert.False(t, mw.shouldSkip("/api/agent/edr-alert"))

	// 挂上中间件后请求链不应该被打断
	r := gin.New()
	r.Use(mw.Handler())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	// panic被恢复并按统一错误格式应答,进程不退出
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestServerHeaderMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(ServerHeaderMiddleware())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Server"), "neoNotifier/", "响应应带服务端标识头")
}
