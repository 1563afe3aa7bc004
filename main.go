package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SandOcean-ovo/Table-Clock/config"
	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
	"github.com/SandOcean-ovo/Table-Clock/internal/version"
)

// startInputScanner 打开 evdev 设备并启动按键/编码器扫描线程。
// 预览构建或非 Linux 平台下 OpenEvdevSource 返回错误，此时输入只来自预览键盘。
func startInputScanner(cfg *config.Config, queue *input.Queue) (stop func()) {
	keymap := map[uint16]int{
		cfg.Input.BackKeyCode:    0,
		cfg.Input.ConfirmKeyCode: 1,
		cfg.Input.EncoderKeyCode: 2,
	}
	src, err := input.OpenEvdevSource(cfg.Input.Devices, keymap, cfg.Input.EncoderRelCode)
	if err != nil {
		logger.Warn("输入设备不可用: %v", err)
		return func() {}
	}

	keys := []*input.Key{
		input.NewKey("back", src.KeyLevel(0), input.EventBackPressed),
		input.NewKey("confirm", src.KeyLevel(1), input.EventConfirmPressed),
		input.NewKey("encoder", src.KeyLevel(2), input.EventEncoderPressed),
	}
	encoder := input.NewEncoder(src.Counter())

	scanner := input.NewScanner(queue, keys, encoder,
		time.Duration(cfg.Input.ScanPeriodMS)*time.Millisecond)
	scanner.Start()
	logger.Info("输入扫描已启动: devices=%v period=%dms", cfg.Input.Devices, cfg.Input.ScanPeriodMS)

	return func() {
		scanner.Stop()
		_ = src.Close()
	}
}

// runCore 启动公共部分：日志、配置、设置、时钟、输入，然后进入 UI 循环。
func runCore(enableDisplay bool) {
	// 初始化日志
	if err := logger.InitLogger(); err != nil {
		// 日志不可用时继续跑，输出只剩 stdout
		logger.Warn("初始化日志失败: %v", err)
	}
	defer logger.Close()
	logger.Info("启动 %s %s ...", version.AppName, version.Version)

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("加载配置失败: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("配置无效: %v", err)
	}

	// 加载持久化设置（损坏时回落出厂默认并重写）
	settingsMgr := settings.NewManager(settings.NewFileStore(cfg.Settings.Path))
	if err := settingsMgr.Load(); err != nil {
		logger.Warn("设置读取失败，已重置为出厂默认: %v", err)
	}

	// 时钟与温度传感器
	rtc := clock.NewSystemRTC()
	sensor := clock.NewHostSensor()

	// 输入事件队列 + 扫描线程
	queue := input.NewQueue()
	stopScanner := startInputScanner(cfg, queue)
	defer stopScanner()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// UI 主循环（display/headless 由构建标签决定）
	uiLoop(enableDisplay, cfg, rtc, sensor, settingsMgr, queue, quit)

	logger.Info("服务已关闭")
}
