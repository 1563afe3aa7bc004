//go:build (linux && device_display) || preview

package main

import (
	"os"
	"runtime"

	"github.com/SandOcean-ovo/Table-Clock/config"
	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/display"
	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

func uiLoop(enableDisplay bool, cfg *config.Config, rtc clock.RTC, sensor clock.Sensor,
	settingsMgr *settings.Manager, queue *input.Queue, quit <-chan os.Signal) {

	var disp display.Display
	var mgr *display.Manager

	if enableDisplay {
		d, err := display.NewDisplay(cfg.Device.Name,
			cfg.Display.Width, cfg.Display.Height, cfg.Display.PreviewScale)
		if err != nil {
			logger.Error("初始化显示失败: %v", err)
		} else {
			disp = d
			services := display.NewAppServices(cfg, rtc, sensor, settingsMgr)
			mgr = display.NewManagerWithServices(disp, services, queue)
		}
	} else if runtime.GOOS == "darwin" {
		// macOS 上如果直接运行而未加 -display，这里给个明确提示
		logger.Warn("屏幕UI未启用：请使用 -display 启动；并用 go build -tags preview 编译以启用 SDL2 预览")
	}

	// UI 主循环占用主线程（macOS SDL 要求）。收到退出信号后 Stop。
	if mgr != nil {
		go func() {
			<-quit
			logger.Info("正在关闭服务...")
			mgr.Stop()
		}()
		if err := mgr.Run(); err != nil {
			logger.Error("屏幕交互系统运行错误: %v", err)
		}
	} else {
		<-quit
		logger.Info("正在关闭服务...")
	}

	// 关闭显示（best-effort）
	if disp != nil {
		_ = disp.Close()
	}
}
