package display

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/version"
)

// infoSamplePeriod 运行时长/内存的采样周期
const infoSamplePeriod = 10 * time.Second

// InfoPage 设备信息页：版本、运行时长、内存
type InfoPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	// Render 只画缓存值，采样放在 Update（切换动画期间 Render 会被调用两次）
	lastSample time.Time
	uptimeText string
	memText    string
}

func NewInfoPage(pm *PageManager, services *AppServices) *InfoPage {
	return &InfoPage{
		BasePage: BasePage{Name: "info", Refresh: 10 * time.Second},
		pm:       pm,
		services: services,
	}
}

func (p *InfoPage) OnEnter() {
	// 进入时立即采一次样
	p.lastSample = time.Time{}
}

func (p *InfoPage) Update(now time.Time) {
	if now.Sub(p.lastSample) < infoSamplePeriod {
		return
	}
	p.lastSample = now

	p.uptimeText = ""
	if up, err := host.Uptime(); err == nil {
		p.uptimeText = fmt.Sprintf("Up: %s", formatUptime(up))
	}
	p.memText = ""
	if vm, err := mem.VirtualMemory(); err == nil {
		p.memText = fmt.Sprintf("Mem: %d/%d MB", vm.Used/1024/1024, vm.Total/1024/1024)
	}
}

// HandleInput 任意按键返回
func (p *InfoPage) HandleInput(ev input.Event) {
	switch ev.Type {
	case input.EventBackPressed, input.EventConfirmPressed, input.EventEncoderPressed:
		p.pm.Back()
	}
}

func (p *InfoPage) Render(g *Graphics, xOff, yOff int) {
	g.SetFont(FontMenu)
	g.DrawStr(xOff+2, yOff+11, version.AppName+" "+version.Version)

	g.SetFont(FontSmall)
	g.DrawStr(xOff+2, yOff+24, version.Copyright)

	line := 38
	if p.uptimeText != "" {
		g.DrawStr(xOff+2, yOff+line, p.uptimeText)
		line += 12
	}
	if p.memText != "" {
		g.DrawStr(xOff+2, yOff+line, p.memText)
	}
}

// formatUptime 秒数转 "3d 04:12" 形式
func formatUptime(sec uint64) string {
	d := sec / 86400
	h := (sec % 86400) / 3600
	m := (sec % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %02d:%02d", d, h, m)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
