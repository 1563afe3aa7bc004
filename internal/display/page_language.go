package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

// LanguagePage 界面语言选择
type LanguagePage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	menu     *MenuList
	msgUntil time.Time
}

func NewLanguagePage(pm *PageManager, services *AppServices) *LanguagePage {
	p := &LanguagePage{
		BasePage: BasePage{Name: "language"},
		pm:       pm,
		services: services,
	}
	// 语言名不翻译
	p.menu = NewMenuList([]string{"English", "中文"}, 2)
	return p
}

func (p *LanguagePage) OnEnter() {
	now := time.Now()
	p.msgUntil = time.Time{}
	p.menu.Reset(now)
	p.menu.Select(int(p.services.Lang()), now)
}

func (p *LanguagePage) Update(now time.Time) {
	p.menu.Update(now)
	if !p.msgUntil.IsZero() && !now.Before(p.msgUntil) {
		p.msgUntil = time.Time{}
		p.pm.Back()
	}
}

func (p *LanguagePage) HandleInput(ev input.Event) {
	if !p.msgUntil.IsZero() {
		return
	}
	switch ev.Type {
	case input.EventEncoderRotated:
		p.menu.HandleRotate(int(ev.Value), time.Now())
	case input.EventConfirmPressed, input.EventEncoderPressed:
		lang := uint8(settings.LangEnglish)
		if p.menu.Selected() == 1 {
			lang = settings.LangChinese
		}
		if err := p.services.SetLanguage(lang); err != nil {
			logger.Error("保存语言设置失败: %v", err)
			return
		}
		p.msgUntil = time.Now().Add(savedPopupDuration)
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *LanguagePage) Render(g *Graphics, xOff, yOff int) {
	drawPageTitle(g, xOff, yOff, p.services.tr("Language", "语言"))
	p.menu.Draw(g, xOff, yOff+16, g.Width())

	if !p.msgUntil.IsZero() {
		DrawMsgBox(g, xOff, yOff, p.services.tr("Saved!", "已保存!"))
	}
}
