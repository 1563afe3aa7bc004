package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// TimeDatePage 日期设置：年/月/日三字段滑动选择器
type TimeDatePage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	picker *SlotPicker
	year   int
	month  int
	day    int
}

func NewTimeDatePage(pm *PageManager, services *AppServices) *TimeDatePage {
	p := &TimeDatePage{
		BasePage: BasePage{Name: "time_date", Refresh: 30 * time.Millisecond},
		pm:       pm,
		services: services,
	}
	p.picker = NewSlotPicker([]SlotField{
		{
			Label:  "Year",
			Format: "%04d",
			Min:    func() int { return 2000 },
			Max:    func() int { return 2099 },
			Get:    func() int { return p.year },
			Set:    func(v int) { p.year = v },
		},
		{
			Label:  "Month",
			Format: "%02d",
			Min:    func() int { return 1 },
			Max:    func() int { return 12 },
			Get:    func() int { return p.month },
			Set:    func(v int) { p.month = v },
		},
		{
			Label:  "Day",
			Format: "%02d",
			Min:    func() int { return 1 },
			Max:    func() int { return clock.DaysInMonth(p.year, p.month) },
			Get:    func() int { return p.day },
			Set:    func(v int) { p.day = v },
		},
	})
	// 改年/月后把日期收紧到当月天数内（3 月 31 日 → 4 月 30 日）
	p.picker.AfterChange = func() {
		if max := clock.DaysInMonth(p.year, p.month); p.day > max {
			p.day = max
		}
	}
	return p
}

func (p *TimeDatePage) OnEnter() {
	t := p.services.Clock.Now()
	p.year = t.Year()
	p.month = int(t.Month())
	p.day = t.Day()
	p.picker.Reset(time.Now())
}

func (p *TimeDatePage) Update(now time.Time) {
	p.picker.Update(now)
	if p.picker.Done() {
		p.pm.Back()
	}
}

func (p *TimeDatePage) HandleInput(ev input.Event) {
	now := time.Now()
	switch ev.Type {
	case input.EventEncoderRotated:
		p.picker.HandleRotate(int(ev.Value), now)
	case input.EventEncoderPressed:
		p.picker.HandleEncoderPress(now)
	case input.EventConfirmPressed:
		if p.picker.State() != SlotFocused {
			return
		}
		if err := p.services.SetDate(p.year, p.month, p.day); err != nil {
			logger.Error("写入日期失败: %v", err)
			return
		}
		p.picker.ShowMessage(p.services.tr("Date Saved!", "日期已保存!"), now)
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *TimeDatePage) Render(g *Graphics, xOff, yOff int) {
	p.picker.Draw(g, xOff, yOff)
}
