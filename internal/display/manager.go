package display

import (
	"fmt"
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/system"
)

// Manager 显示管理器：驱动引擎主循环，并负责自动熄屏/唤醒
type Manager struct {
	display     Display
	graphics    *Graphics
	pageManager *PageManager
	services    *AppServices
	queue       *input.Queue
	running     bool

	// 屏幕熄屏/唤醒（背光）
	bl          *system.Backlight
	lastInputAt time.Time
	screenIsOff bool
}

// NewManagerWithServices 使用外部注入的 services 与输入队列创建管理器。
// 设备端 queue 由扫描线程填充；预览端由键盘事件填充。
func NewManagerWithServices(disp Display, services *AppServices, queue *input.Queue) *Manager {
	// 获取后缓冲区用于绘图
	backBuffer := disp.GetBackBuffer()
	graphics := NewGraphics(backBuffer)
	pm := NewPageManager(graphics, queue)

	// 创建所有页面
	mainPage := NewMainPage(pm, services)
	mainMenuPage := NewMainMenuPage(pm, services)
	displaySettingsPage := NewDisplaySettingsPage(pm, services)
	autoOffPage := NewAutoOffPage(pm, services)
	languagePage := NewLanguagePage(pm, services)
	timeSetPage := NewTimeSetPage(pm, services)
	timeDatePage := NewTimeDatePage(pm, services)
	timeTimePage := NewTimeTimePage(pm, services)
	timeDSTPage := NewTimeDSTPage(pm, services)
	infoPage := NewInfoPage(pm, services)

	// 注册页面
	pm.RegisterPage("main", mainPage)
	pm.RegisterPage("main_menu", mainMenuPage)
	pm.RegisterPage("display_settings", displaySettingsPage)
	pm.RegisterPage("auto_off", autoOffPage)
	pm.RegisterPage("language", languagePage)
	pm.RegisterPage("time_set", timeSetPage)
	pm.RegisterPage("time_date", timeDatePage)
	pm.RegisterPage("time_time", timeTimePage)
	pm.RegisterPage("time_dst", timeDSTPage)
	pm.RegisterPage("info", infoPage)

	// 默认页面：主时钟页
	pm.SetHomePage("main")
	pm.GoHome()

	// 背光探测（best-effort，预览环境下通常不存在）
	var bl *system.Backlight
	if b, err := system.DiscoverBacklight(); err == nil {
		bl = b
	}

	return &Manager{
		display:     disp,
		graphics:    graphics,
		pageManager: pm,
		services:    services,
		queue:       queue,
		running:     false,
		bl:          bl,
		lastInputAt: time.Now(),
		screenIsOff: false,
	}
}

// Run 运行显示循环
func (m *Manager) Run() error {
	m.running = true

	for m.running {
		// 轮询窗口事件（设备端恒为 false）
		if shouldQuit := m.display.PollEvents(); shouldQuit {
			fmt.Println("🛑 收到退出事件（PollEvents=true）")
			m.running = false
			break
		}

		// 预览端：键盘映射出的事件并入队列
		for _, ev := range m.display.GetInputEvents() {
			if !m.queue.Push(ev) {
				logger.Warn("输入队列已满，丢弃事件: %s", ev.Type)
			}
		}

		// 任意输入都刷新空闲计时；熄屏状态下输入只用于唤醒
		if m.queue.Count() > 0 {
			m.lastInputAt = time.Now()
			if m.screenIsOff {
				m.wakeScreen()
				// 唤醒事件本身不进入页面
				m.queue.Clear()
				continue
			}
		}

		// 熄屏逻辑：空闲到时回到主页并关闭背光
		m.maybeScreenOff()

		if !m.screenIsOff {
			if dirty := m.pageManager.Loop(); dirty {
				if err := m.display.Update(); err != nil {
					return fmt.Errorf("更新显示失败: %w", err)
				}
			}
		}

		// 引擎节拍
		time.Sleep(5 * time.Millisecond)
	}

	return nil
}

func (m *Manager) maybeScreenOff() {
	timeout := m.services.AutoOffTimeout()
	if timeout <= 0 {
		// 从不熄屏：如果当前处于熄屏态则唤醒
		if m.screenIsOff {
			m.wakeScreen()
		}
		return
	}
	if m.screenIsOff {
		return
	}
	if time.Since(m.lastInputAt) < timeout {
		return
	}
	// 熄屏前回到主页，唤醒后直接看到时钟
	m.pageManager.GoHome()
	if m.bl != nil {
		_ = m.bl.Off()
	}
	m.screenIsOff = true
	logger.Info("空闲超时，屏幕已关闭")
}

func (m *Manager) wakeScreen() {
	if m.bl != nil {
		_ = m.bl.SetPercent(100)
	}
	m.screenIsOff = false
	logger.Info("输入唤醒，屏幕已点亮")
}

// Stop 停止显示循环
func (m *Manager) Stop() {
	m.running = false
}
