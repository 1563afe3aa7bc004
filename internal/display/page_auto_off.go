package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

// savedPopupDuration 保存成功提示显示时长
const savedPopupDuration = time.Second

// AutoOffPage 自动熄屏时长选择
type AutoOffPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu    *MenuList
	options []settings.AutoOff

	msgUntil time.Time
}

func NewAutoOffPage(pm *PageManager, services *AppServices) *AutoOffPage {
	p := &AutoOffPage{
		BasePage: BasePage{Name: "auto_off"},
		pm:       pm,
		services: services,
		options: []settings.AutoOff{
			settings.AutoOffNever,
			settings.AutoOff30S,
			settings.AutoOff1Min,
			settings.AutoOff5Min,
			settings.AutoOff10Min,
		},
	}
	p.menu = NewMenuList(p.items(), 3)
	return p
}

func (p *AutoOffPage) items() []string {
	return []string{
		p.services.tr("Never", "从不"),
		p.services.tr("30 sec", "30 秒"),
		p.services.tr("1 min", "1 分钟"),
		p.services.tr("5 min", "5 分钟"),
		p.services.tr("10 min", "10 分钟"),
	}
}

func (p *AutoOffPage) OnEnter() {
	now := time.Now()
	p.msgUntil = time.Time{}
	p.menu.SetItems(p.items())
	p.menu.Reset(now)

	// 定位到当前设置
	cur := p.services.Settings.Get().AutoOff
	for i, opt := range p.options {
		if opt == cur {
			p.menu.Select(i, now)
			break
		}
	}
}

func (p *AutoOffPage) Update(now time.Time) {
	p.menu.Update(now)
	// 提示播完后自动返回
	if !p.msgUntil.IsZero() && !now.Before(p.msgUntil) {
		p.msgUntil = time.Time{}
		p.pm.Back()
	}
}

func (p *AutoOffPage) HandleInput(ev input.Event) {
	// 提示期间不响应输入
	if !p.msgUntil.IsZero() {
		return
	}
	switch ev.Type {
	case input.EventEncoderRotated:
		p.menu.HandleRotate(int(ev.Value), time.Now())
	case input.EventConfirmPressed, input.EventEncoderPressed:
		opt := p.options[p.menu.Selected()]
		if err := p.services.SetAutoOff(opt); err != nil {
			logger.Error("保存自动熄屏设置失败: %v", err)
			return
		}
		p.msgUntil = time.Now().Add(savedPopupDuration)
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *AutoOffPage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("Auto-Off", "自动熄屏"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())

	if !p.msgUntil.IsZero() {
		DrawMsgBox(g, xOff, yOff, p.services.tr("Saved!", "已保存!"))
	}
}
