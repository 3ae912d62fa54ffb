package monitor

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"neonotifier/internal/pkg/logger"
)

// HostInfo 主机静态信息,用于启动横幅和状态接口
type HostInfo struct {
	Hostname        string
	System          string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Arch            string
	CPUCores        int
	MemoryTotal     uint64
}

var (
	systemNameOnce sync.Once
	systemName     string
)

// SystemName 返回规范化的平台名称(Linux/Darwin/Windows)
// 状态接口的system字段依赖这个格式,未知平台原样返回GOOS
func SystemName() string {
	systemNameOnce.Do(func() {
		switch runtime.GOOS {
		case "linux":
			systemName = "Linux"
		case "darwin":
			systemName = "Darwin"
		case "windows":
			systemName = "Windows"
		default:
			systemName = runtime.GOOS
		}
	})
	return systemName
}

// GetHostInfo 获取主机静态信息
// 任何一项采集失败都降级到运行时回退值,不阻塞启动
func GetHostInfo() (*HostInfo, error) {
	info := &HostInfo{System: SystemName()}

	// Host Info
	hInfo, err := host.Info()
	if err != nil {
		logger.LogSystemEvent("Monitor", "GetHostInfo", "Failed to get host info: "+err.Error(), logger.WarnLevel, nil)
	} else {
		info.Hostname = hInfo.Hostname
		info.Platform = hInfo.Platform
		info.PlatformVersion = hInfo.PlatformVersion
		info.KernelVersion = hInfo.KernelVersion
		info.Arch = hInfo.KernelArch
	}

	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	// CPU Info
	cpuInfo, err := cpu.Info()
	if err != nil {
		logger.LogSystemEvent("Monitor", "GetHostInfo", "Failed to get CPU info: "+err.Error(), logger.WarnLevel, nil)
		info.CPUCores = runtime.NumCPU()
	} else if len(cpuInfo) > 0 {
		cores := 0
		for _, c := range cpuInfo {
			cores += int(c.Cores)
		}
		if cores == 0 {
			cores = runtime.NumCPU()
		}
		info.CPUCores = cores
	} else {
		info.CPUCores = runtime.NumCPU()
	}

	// Memory Info
	vMem, err := mem.VirtualMemory()
	if err != nil {
		logger.LogSystemEvent("Monitor", "GetHostInfo", "Failed to get Memory info: "+err.Error(), logger.WarnLevel, nil)
	} else {
		info.MemoryTotal = vMem.Total
	}

	return info, nil
}

// FormatBytes 把字节数格式化为可读字符串
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
