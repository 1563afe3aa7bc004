package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// TimeTimePage 时间设置：时/分/秒三字段滑动选择器
type TimeTimePage struct {
	BasePage
	pm       *PageManager
	services *AppServices

	picker *SlotPicker
	hour   int
	min    int
	sec    int
}

func NewTimeTimePage(pm *PageManager, services *AppServices) *TimeTimePage {
	p := &TimeTimePage{
		BasePage: BasePage{Name: "time_time", Refresh: 30 * time.Millisecond},
		pm:       pm,
		services: services,
	}
	rng := func(lo, hi int, get func() int, set func(int)) SlotField {
		return SlotField{
			Format: "%02d",
			Min:    func() int { return lo },
			Max:    func() int { return hi },
			Get:    get,
			Set:    set,
		}
	}
	fHour := rng(0, 23, func() int { return p.hour }, func(v int) { p.hour = v })
	fHour.Label = "Hour"
	fMin := rng(0, 59, func() int { return p.min }, func(v int) { p.min = v })
	fMin.Label = "Min"
	fSec := rng(0, 59, func() int { return p.sec }, func(v int) { p.sec = v })
	fSec.Label = "Sec"
	p.picker = NewSlotPicker([]SlotField{fHour, fMin, fSec})
	return p
}

func (p *TimeTimePage) OnEnter() {
	t := p.services.Clock.Now()
	p.hour = t.Hour()
	p.min = t.Minute()
	p.sec = t.Second()
	p.picker.Reset(time.Now())
}

func (p *TimeTimePage) Update(now time.Time) {
	p.picker.Update(now)
	if p.picker.Done() {
		p.pm.Back()
	}
}

func (p *TimeTimePage) HandleInput(ev input.Event) {
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
		if err := p.services.SetClock(p.hour, p.min, p.sec); err != nil {
			logger.Error("写入时间失败: %v", err)
			return
		}
		p.picker.ShowMessage(p.services.tr("Time Saved!", "时间已保存!"), now)
	case input.EventBackPressed:
		p.pm.Back()
	}
}

func (p *TimeTimePage) Render(g *Graphics, xOff, yOff int) {
	p.picker.Draw(g, xOff, yOff)
}
