package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"neonotifier/internal/model"
	"neonotifier/internal/pkg/monitor"
	"neonotifier/internal/pkg/notify"
	alertsvc "neonotifier/internal/service/alert"
)

// silentNotifier 吞掉所有通知的桩实现
type silentNotifier struct{}

func (silentNotifier) Notify(title, message, severity string) notify.Result {
	return notify.Result{Backend: notify.BackendConsole, Succeeded: true}
}

func (silentNotifier) PlaySound() notify.Result {
	return notify.Result{Backend: notify.BackendConsole, Succeeded: true}
}

// fixedProbe 固定返回值的平台探测桩
type fixedProbe struct {
	library bool
	sound   bool
}

func (p fixedProbe) LibraryAvailable() bool { return p.library }
func (p fixedProbe) SoundEnabled() bool     { return p.sound }

func newStatusRouter(probe fixedProbe) (*gin.Engine, *alertsvc.Service) {
	gin.SetMode(gin.TestMode)

	svc := alertsvc.NewService(alertsvc.NewCounters(), silentNotifier{})
	handler := NewStatusHandler(svc, probe, "neoNotifier")

	r := gin.New()
	r.GET("/health", handler.HandleHealth)
	r.GET("/stats", handler.HandleStats)
	r.NoRoute(handler.HandleNotFound)
	return r, svc
}

func TestHandleHealth(t *testing.T) {
	router, svc := newStatusRouter(fixedProbe{library: true, sound: true})

	// 先造两条已处理告警,检查计数透出
	svc.Process("info", "first")
	svc.Process("error", "second")

	before := time.Now().Unix()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	after := time.Now().Unix()

	assert.Equal(t, http.StatusOK, w.Code, "健康检查应该返回200")

	var resp model.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "健康检查应答应该是合法JSON")
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "neoNotifier", resp.Service)
	assert.Equal(t, uint64(2), resp.AlertCount)
	// uptime沿用旧版语义:调用时刻的Unix秒
	assert.GreaterOrEqual(t, resp.Uptime, before)
	assert.LessOrEqual(t, resp.Uptime, after)
}

func TestHandleHealthWireFormat(t *testing.T) {
	router, _ := newStatusRouter(fixedProbe{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	// 字段名固定,上报端按这些键取值
	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	for _, key := range []string{"status", "service", "uptime", "alert_count"} {
		assert.Contains(t, raw, key, "健康检查应答缺少字段 %s", key)
	}
}

func TestHandleStats(t *testing.T) {
	router, svc := newStatusRouter(fixedProbe{library: true, sound: false})

	svc.Process("warning", "probe")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code, "统计接口应该返回200")

	var resp model.StatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1), resp.AlertCount)
	assert.Equal(t, monitor.SystemName(), resp.System, "system字段应该是规范化平台名")
	assert.True(t, resp.PlyerAvailable)
	assert.False(t, resp.SoundEnabled)
}

func TestHandleStatsWireFormat(t *testing.T) {
	router, _ := newStatusRouter(fixedProbe{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/stats", nil))

	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	// plyer_available 字段名兼容旧版面板,不能改
	for _, key := range []string{"alert_count", "system", "plyer_available", "sound_enabled"} {
		assert.Contains(t, raw, key, "统计应答缺少字段 %s", key)
	}
}

func TestStatusEndpointsReadOnly(t *testing.T) {
	router, svc := newStatusRouter(fixedProbe{})

	// 状态接口查询多少次都不应该影响计数
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, httptest.NewRequest("GET", "/stats", nil))
		assert.Equal(t, http.StatusOK, w2.Code)
	}
	assert.Equal(t, uint64(0), svc.AlertCount(), "只读接口不应该增加告警计数")
}

func TestHandleNotFound(t *testing.T) {
	router, _ := newStatusRouter(fixedProbe{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/no/such/path", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "未知路径应该返回404")

	var resp model.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusError, resp.Status)
	assert.Equal(t, "Not Found", resp.Message)
}
