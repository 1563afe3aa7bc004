package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// DisplaySettingsPage 显示设置菜单
type DisplaySettingsPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu    *MenuList
	targets []string
}

func NewDisplaySettingsPage(pm *PageManager, services *AppServices) *DisplaySettingsPage {
	p := &DisplaySettingsPage{
		BasePage: BasePage{Name: "display_settings"},
		pm:       pm,
		services: services,
		targets:  []string{"auto_off", "language"},
	}
	p.menu = NewMenuList(p.items(), 2)
	return p
}

func (p *DisplaySettingsPage) items() []string {
	return []string{
		p.services.tr("Auto-Off", "自动熄屏"),
		p.services.tr("Language", "语言"),
	}
}

func (p *DisplaySettingsPage) OnEnter() {
	p.menu.SetItems(p.items())
	p.menu.Reset(time.Now())
}

func (p *DisplaySettingsPage) Update(now time.Time) {
	p.menu.Update(now)
}

func (p *DisplaySettingsPage) HandleInput(ev input.Event) {
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

func (p *DisplaySettingsPage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("Display", "显示设置"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())
}
