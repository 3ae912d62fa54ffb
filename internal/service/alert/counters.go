package alert

import "sync/atomic"

// Counters 进程级运行计数
// 注入到处理器使用,不做包级全局;进程结束即消失,不持久化
type Counters struct {
	alertCount atomic.Uint64
}

func NewCounters() *Counters {
	return &Counters{}
}

// Incr 告警计数原子加一,返回本条告警的序号
func (c *Counters) Incr() uint64 {
	return c.alertCount.Add(1)
}

// Alerts 当前累计告警数
func (c *Counters) Alerts() uint64 {
	return c.alertCount.Load()
}
