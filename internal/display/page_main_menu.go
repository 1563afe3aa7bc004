package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// MainMenuPage 主菜单
type MainMenuPage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu    *MenuList
	targets []string
}

func NewMainMenuPage(pm *PageManager, services *AppServices) *MainMenuPage {
	p := &MainMenuPage{
		BasePage: BasePage{Name: "main_menu"},
		pm:       pm,
		services: services,
		targets:  []string{"display_settings", "time_set", "info"},
	}
	p.menu = NewMenuList(p.items(), 3)
	return p
}

func (p *MainMenuPage) items() []string {
	return []string{
		p.services.tr("Display", "显示设置"),
		p.services.tr("Time Set", "时间设置"),
		p.services.tr("Info", "关于"),
	}
}

func (p *MainMenuPage) OnEnter() {
	// 语言可能在子页面被修改过
	p.menu.SetItems(p.items())
	p.menu.Reset(time.Now())
}

func (p *MainMenuPage) Update(now time.Time) {
	p.menu.Update(now)
}

func (p *MainMenuPage) HandleInput(ev input.Event) {
	switch ev.Type {
	case input.EventEncoderRotated:
		p.menu.HandleRotate(int(ev.Value), time.Now())
	case input.EventConfirmPressed, input.EventEncoderPressed:
		target := p.targets[p.menu.Selected()]
		if err := p.pm.SwitchTo(target); err != nil {
			logger.Error("页面切换失败: %v", err)
		}
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *MainMenuPage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("Menu", "菜单"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())
}

// drawPageTitle 页面标题：小字 + 下划线
func drawPageTitle(g *Graphics, xOff, yOff int, title string) {
	g.SetFont(FontSmall)
	g.DrawStrCentered(xOff+g.Width()/2, yOff+10, title)
	g.DrawHLine(xOff, yOff+13, g.Width())
}
