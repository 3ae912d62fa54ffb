/**
 * 配置:配置文件热重载
 * @author: sun977
 * @date: 2026.03.14
 * @description: 基于fsnotify监听配置文件变化,防抖后重载并通过回调分发变更
 * @func: ConfigWatcher、WatchConfig、ValidateConfigChange
 */
package config

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ConfigWatcher 配置文件监听器
//
// 工作原理:
// 1. fsnotify 监听配置文件写入/创建事件
// 2. 先用 yaml 语法探测避免加载写了一半的文件
// 3. 防抖延迟后重载配置并执行回调
//
// 注意:监听地址/端口/声音开关属于启动后不可变配置,
// 变更这些字段会被 ValidateConfigChange 拒绝,直到重启才生效
type ConfigWatcher struct {
	configPath  string
	config      *Config
	loader      *ConfigLoader
	watcher     *fsnotify.Watcher
	callbacks   []ConfigChangeCallback
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
	reloadDelay time.Duration
	lastReload  time.Time
}

// ConfigChangeCallback 配置变更回调函数
type ConfigChangeCallback func(oldConfig, newConfig *Config) error

// NewConfigWatcher 创建配置监听器
func NewConfigWatcher(configFile string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	loader := NewConfigLoader("", "NEONOTIFIER")
	loader.SetConfigFile(configFile)

	ctx, cancel := context.WithCancel(context.Background())

	return &ConfigWatcher{
		configPath:  configFile,
		loader:      loader,
		watcher:     watcher,
		callbacks:   make([]ConfigChangeCallback, 0),
		ctx:         ctx,
		cancel:      cancel,
		reloadDelay: 1 * time.Second, // 防抖延迟
	}, nil
}

// Start 启动配置监听
func (cw *ConfigWatcher) Start() error {
	// 初始加载配置
	config, err := cw.loader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load initial config: %w", err)
	}

	cw.mu.Lock()
	cw.config = config
	cw.mu.Unlock()

	if err := cw.watcher.Add(cw.configPath); err != nil {
		return fmt.Errorf("failed to watch config file %s: %w", cw.configPath, err)
	}

	// 启动监听协程
	go cw.watchLoop()

	return nil
}

// Stop 停止配置监听
func (cw *ConfigWatcher) Stop() error {
	cw.cancel()
	return cw.watcher.Close()
}

// GetConfig 获取当前配置
func (cw *ConfigWatcher) GetConfig() *Config {
	cw.mu.RLock()
	defer cw.mu.RUnlock()
	return cw.config
}

// AddCallback 添加配置变更回调
func (cw *ConfigWatcher) AddCallback(callback ConfigChangeCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// watchLoop 监听循环
func (cw *ConfigWatcher) watchLoop() {
	for {
		select {
		case <-cw.ctx.Done():
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleFileEvent(event)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			fmt.Printf("Config watcher error: %v\n", err)
		}
	}
}

// handleFileEvent 处理文件事件
func (cw *ConfigWatcher) handleFileEvent(event fsnotify.Event) {
	// 只处理写入和创建事件
	if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
		// 防抖处理，避免频繁重载
		now := time.Now()
		if now.Sub(cw.lastReload) < cw.reloadDelay {
			return
		}
		cw.lastReload = now

		// 延迟重载，确保文件写入完成
		time.AfterFunc(cw.reloadDelay, func() {
			if !cw.probeSyntax() {
				return
			}
			if err := cw.reloadConfig(); err != nil {
				fmt.Printf("Failed to reload config: %v\n", err)
			}
		})
	}
}

// probeSyntax 轻量语法探测
// 编辑器保存往往触发多次写事件,半截文件直接跳过本轮重载
func (cw *ConfigWatcher) probeSyntax() bool {
	data, err := os.ReadFile(cw.configPath)
	if err != nil {
		return false
	}

	var probe struct {
		Log *LogConfig `yaml:"log"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		fmt.Printf("Config file not yet parseable, skip reload: %v\n", err)
		return false
	}
	return true
}

// reloadConfig 重新加载配置
func (cw *ConfigWatcher) reloadConfig() error {
	newConfig, err := cw.loader.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load new config: %w", err)
	}

	cw.mu.RLock()
	oldConfig := cw.config
	cw.mu.RUnlock()

	// 执行回调函数
	for _, callback := range cw.callbacks {
		if err := callback(oldConfig, newConfig); err != nil {
			return fmt.Errorf("config change callback failed: %w", err)
		}
	}

	cw.mu.Lock()
	cw.config = newConfig
	cw.mu.Unlock()

	fmt.Println("Config reloaded successfully")
	return nil
}

// WatchConfig 监听配置变更（便捷函数）
func WatchConfig(configFile string, callback ConfigChangeCallback) (*ConfigWatcher, error) {
	watcher, err := NewConfigWatcher(configFile)
	if err != nil {
		return nil, err
	}

	if callback != nil {
		watcher.AddCallback(callback)
	}

	if err := watcher.Start(); err != nil {
		return nil, err
	}

	return watcher, nil
}

// ValidateConfigChange 验证配置变更
// 监听地址、端口与声音开关在运行期不可变
func ValidateConfigChange(oldConfig, newConfig *Config) error {
	if oldConfig.Server.Host != newConfig.Server.Host {
		return fmt.Errorf("server host cannot be changed during runtime")
	}

	if oldConfig.Server.Port != newConfig.Server.Port {
		return fmt.Errorf("server port cannot be changed during runtime")
	}

	if oldConfig.Notify.SoundEnabled != newConfig.Notify.SoundEnabled {
		return fmt.Errorf("sound switch cannot be changed during runtime")
	}

	if newConfig.Server.Port <= 0 || newConfig.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", newConfig.Server.Port)
	}

	return nil
}
