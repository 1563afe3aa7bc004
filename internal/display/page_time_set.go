package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// TimeSetPage 时间设置菜单
type TimeSetPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu    *MenuList
	targets []string
}

func NewTimeSetPage(pm *PageManager, services *AppServices) *TimeSetPage {
	p := &TimeSetPage{
		BasePage: BasePage{Name: "time_set"},
		pm:       pm,
		services: services,
		targets:  []string{"time_date", "time_time", "time_dst"},
	}
	p.menu = NewMenuList(p.items(), 3)
	return p
}

func (p *TimeSetPage) items() []string {
	return []string{
		p.services.tr("Set Date", "设置日期"),
		p.services.tr("Set Time", "设置时间"),
		p.services.tr("DST", "夏令时"),
	}
}

func (p *TimeSetPage) OnEnter() {
	p.menu.SetItems(p.items())
	p.menu.Reset(time.Now())
}

func (p *TimeSetPage) Update(now time.Time) {
	p.menu.Update(now)
}

func (p *TimeSetPage) HandleInput(ev input.Event) {
	switch ev.Type {
	case input.EventEncoderRotated:
		p.menu.HandleRotate(int(ev.Value), time.Now())
	case input.EventConfirmPressed, input.EventEncoderPressed:
		if err := p.pm.SwitchTo(p.targets[p.menu.Selected()]); err != nil {
			logger.Error("页面切换失败: %v", err)
		}
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *TimeSetPage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("Time Set", "时间设置"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())
}
