package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/SandOcean-ovo/Table-Clock/config"
	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/display"
	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

func init() {
	// 锁定主线程用于 SDL（macOS 必须）
	runtime.LockOSThread()
}

// 显示预览：go run -tags preview ./cmd/display-test
func main() {
	fmt.Println("🚀 启动 TableClock 显示预览...")

	cfg := config.DefaultConfig()

	// 创建显示实例
	disp, err := display.NewDisplay(cfg.Device.Name,
		cfg.Display.Width, cfg.Display.Height, cfg.Display.PreviewScale)
	if err != nil {
		log.Fatalf("❌ 初始化显示失败: %v", err)
	}
	defer disp.Close()

	// 预览用内存设置，不落盘
	settingsMgr := settings.NewManager(settings.NewFileStore(cfg.Settings.Path))
	_ = settingsMgr.Load()

	services := display.NewAppServices(cfg, clock.NewSystemRTC(), clock.NewHostSensor(), settingsMgr)
	queue := input.NewQueue()
	manager := display.NewManagerWithServices(disp, services, queue)

	fmt.Printf("✅ 显示系统已启动，%dx%d @ %dx\n",
		cfg.Display.Width, cfg.Display.Height, cfg.Display.PreviewScale)
	fmt.Println("💡 按键: B=返回 回车=确认 空格=编码器按键 方向键=旋转 ESC=退出")

	if err := manager.Run(); err != nil {
		log.Fatalf("❌ 显示运行错误: %v", err)
	}

	fmt.Println("👋 显示系统已关闭")
}
