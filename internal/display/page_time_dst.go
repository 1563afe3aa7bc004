package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// TimeDSTPage 夏令时开关
type TimeDSTPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu     *MenuList
	msgUntil time.Time
}

func NewTimeDSTPage(pm *PageManager, services *AppServices) *TimeDSTPage {
	p := &TimeDSTPage{
		BasePage: BasePage{Name: "time_dst"},
		pm:       pm,
		services: services,
	}
	p.menu = NewMenuList(p.items(), 2)
	return p
}

func (p *TimeDSTPage) items() []string {
	return []string{
		p.services.tr("Off", "关闭"),
		p.services.tr("On", "开启"),
	}
}

func (p *TimeDSTPage) OnEnter() {
	now := time.Now()
	p.msgUntil = time.Time{}
	p.menu.SetItems(p.items())
	p.menu.Reset(now)
	if p.services.Settings.Get().DSTEnabled {
		p.menu.Select(1, now)
	}
}

func (p *TimeDSTPage) Update(now time.Time) {
	p.menu.Update(now)
	if !p.msgUntil.IsZero() && !now.Before(p.msgUntil) {
		p.msgUntil = time.Time{}
		p.pm.Back()
	}
}

func (p *TimeDSTPage) HandleInput(ev input.Event) {
	if !p.msgUntil.IsZero() {
		return
	}
	switch ev.Type {
	case input.EventEncoderRotated:
		p.menu.HandleRotate(int(ev.Value), time.Now())
	case input.EventConfirmPressed, input.EventEncoderPressed:
		enabled := p.menu.Selected() == 1
		if err := p.services.SetDST(enabled); err != nil {
			logger.Error("保存夏令时设置失败: %v", err)
			return
		}
		p.msgUntil = time.Now().Add(savedPopupDuration)
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *TimeDSTPage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("DST", "夏令时"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())

	if !p.msgUntil.IsZero() {
		DrawMsgBox(g, xOff, yOff, p.services.tr("Saved!", "已保存!"))
	}
}
