package display

import (
	"fmt"
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

const (
	// mainSensorPeriod 温湿度采样周期
	mainSensorPeriod = 30 * time.Second
	// mainWarnDuration 设置读取失败提示显示时长
	mainWarnDuration = 3 * time.Second
)

// MainPage 主时钟页：大字时间 + 日期星期 + 温湿度
type MainPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	lastSample   time.Time
	temp         float64
	humi         float64
	hasHumi      bool
	sensorOK     bool
	warnUntil    time.Time
	warnConsumed bool
}

func NewMainPage(pm *PageManager, services *AppServices) *MainPage {
	return &MainPage{
		BasePage: BasePage{Name: "main", Refresh: 100 * time.Millisecond},
		pm:       pm,
		services: services,
	}
}

func (p *MainPage) OnEnter() {
	// 进入时立即采一次样
	p.lastSample = time.Time{}

	// 设置文件损坏时上电提示一次
	if p.services.Settings != nil && p.services.Settings.LoadFailed && !p.warnConsumed {
		p.warnUntil = time.Now().Add(mainWarnDuration)
		p.warnConsumed = true
	}
}

func (p *MainPage) Update(now time.Time) {
	if p.services.Sensor == nil {
		return
	}
	if now.Sub(p.lastSample) < mainSensorPeriod {
		return
	}
	p.lastSample = now

	sample, err := p.services.Sensor.Read()
	if err != nil {
		if p.sensorOK {
			logger.Warn("温度读取失败: %v", err)
		}
		p.sensorOK = false
		return
	}
	p.temp = sample.Temp
	p.humi = sample.Humi
	p.hasHumi = sample.HasHumi
	p.sensorOK = true
}

func (p *MainPage) HandleInput(ev input.Event) {
	switch ev.Type {
	case input.EventConfirmPressed, input.EventEncoderPressed:
		if err := p.pm.SwitchTo("main_menu"); err != nil {
			logger.Error("进入菜单失败: %v", err)
		}
	}
}

func (p *MainPage) Render(g *Graphics, xOff, yOff int) {
	t := p.services.DisplayTime()
	cx := xOff + g.Width()/2

	// 时间大字居中
	g.SetFont(FontClock)
	g.DrawStrCentered(cx, yOff+30, t.Format("15:04:05"))

	// 日期 + 星期
	g.SetFont(FontSmall)
	date := fmt.Sprintf("%04d-%02d-%02d  %s",
		t.Year(), int(t.Month()), t.Day(),
		p.services.weekday(t.Weekday()))
	g.DrawStrCentered(cx, yOff+46, date)

	// 温湿度（读取失败时留空）
	if p.sensorOK {
		env := fmt.Sprintf("%.1fC", p.temp)
		if p.hasHumi {
			env = fmt.Sprintf("%.1fC  %.0f%%", p.temp, p.humi)
		}
		g.DrawStrCentered(cx, yOff+60, env)
	}

	// 设置损坏提示
	if time.Now().Before(p.warnUntil) {
		DrawMsgBox(g, xOff, yOff, p.services.tr("Settings Reset!", "设置已重置!"))
	}
}
