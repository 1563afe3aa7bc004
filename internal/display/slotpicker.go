package display

import (
	"fmt"
	"time"
)

const (
	// slotEnterDuration 进入动画时长
	slotEnterDuration = 800 * time.Millisecond
	// slotZoomDuration 聚焦/失焦缩放动画时长
	slotZoomDuration = 600 * time.Millisecond
	// slotRollDuration 数值滚动动画时长
	slotRollDuration = 150 * time.Millisecond
	// slotMessageDuration 保存提示显示时长
	slotMessageDuration = time.Second
	// slotRowHeight 滚动一格的像素高度
	slotRowHeight = 16
)

// SlotState 滑动选择器状态
type SlotState int

const (
	SlotEntering SlotState = iota // 整体入场
	SlotZoomingIn                 // 聚焦字段放大
	SlotFocused                   // 聚焦，可旋转调值
	SlotRolling                   // 数值滚动中
	SlotZoomingOut                // 失焦缩小
	SlotSwitching                 // 切到下一字段（瞬时）
	SlotShowingMessage            // 显示保存提示
)

// SlotField 滑动选择器中的一个字段
type SlotField struct {
	Label  string
	Format string // "%02d" / "%04d"
	Min    func() int
	Max    func() int
	Get    func() int
	Set    func(v int)
}

// SlotPicker 老虎机风格的数值选择器。
// 字段循环聚焦：编码器按键切换字段，旋转立即改值并播放滚动动画，
// 确认键保存并显示提示，提示结束后由页面负责返回。
type SlotPicker struct {
	fields []SlotField
	focus  int
	state  SlotState

	anim     Anim // 入场/缩放共用
	rollAnim Anim
	rollDir  int // +1 值增大（新值从下方滚入）

	// AfterChange 数值变化后的钩子（例如改月份后收紧日期上限）
	AfterChange func()

	msg      string
	msgUntil time.Time
	done     bool
}

// NewSlotPicker 创建选择器
func NewSlotPicker(fields []SlotField) *SlotPicker {
	return &SlotPicker{fields: fields}
}

// Reset 回到入场状态（页面 OnEnter 时调用）
func (sp *SlotPicker) Reset(now time.Time) {
	sp.focus = 0
	sp.state = SlotEntering
	sp.anim.Start(0, 1, slotEnterDuration, now)
	sp.rollAnim = Anim{}
	sp.msg = ""
	sp.done = false
}

// State 当前状态
func (sp *SlotPicker) State() SlotState { return sp.state }

// Focus 当前聚焦字段索引
func (sp *SlotPicker) Focus() int { return sp.focus }

// Done 保存提示是否已播完（页面据此返回上一页）
func (sp *SlotPicker) Done() bool { return sp.done }

// Update 推进状态机
func (sp *SlotPicker) Update(now time.Time) {
	switch sp.state {
	case SlotEntering:
		if sp.anim.Advance(now) {
			sp.state = SlotZoomingIn
			sp.anim.Start(0, 1, slotZoomDuration, now)
		}

	case SlotZoomingIn:
		if sp.anim.Advance(now) {
			sp.state = SlotFocused
		}

	case SlotRolling:
		if sp.rollAnim.Advance(now) {
			sp.state = SlotFocused
		}

	case SlotZoomingOut:
		if sp.anim.Advance(now) {
			sp.state = SlotSwitching
		}
		if sp.state == SlotSwitching {
			// 瞬时态：切换焦点后立刻开始放大下一字段
			sp.focus = (sp.focus + 1) % len(sp.fields)
			sp.state = SlotZoomingIn
			sp.anim.Start(0, 1, slotZoomDuration, now)
		}

	case SlotShowingMessage:
		if !now.Before(sp.msgUntil) {
			sp.done = true
		}
	}
}

// HandleRotate 旋转调值：仅聚焦态有效（滚动中忽略，天然限速）
func (sp *SlotPicker) HandleRotate(delta int, now time.Time) {
	if sp.state != SlotFocused || delta == 0 {
		return
	}
	f := sp.fields[sp.focus]

	min, max := f.Min(), f.Max()
	rng := max - min + 1
	v := f.Get() + delta
	// 两端环绕（23 时 +1 回到 0 时）
	v = min + ((v-min)%rng+rng)%rng
	f.Set(v)
	if sp.AfterChange != nil {
		sp.AfterChange()
	}

	sp.rollDir = 1
	if delta < 0 {
		sp.rollDir = -1
	}
	sp.state = SlotRolling
	sp.rollAnim.Start(1, 0, slotRollDuration, now)
}

// HandleEncoderPress 编码器按键：失焦当前字段，循环切到下一个
func (sp *SlotPicker) HandleEncoderPress(now time.Time) {
	if sp.state != SlotFocused {
		return
	}
	sp.state = SlotZoomingOut
	sp.anim.Start(1, 0, slotZoomDuration, now)
}

// ShowMessage 确认保存后显示提示
func (sp *SlotPicker) ShowMessage(text string, now time.Time) {
	if sp.state != SlotFocused {
		return
	}
	sp.state = SlotShowingMessage
	sp.msg = text
	sp.msgUntil = now.Add(slotMessageDuration)
}

// fieldX 字段水平中心位置（均分屏宽）
func (sp *SlotPicker) fieldX(g *Graphics, i int) int {
	n := len(sp.fields)
	return g.Width()*(2*i+1)/(2*n)
}

// Draw 绘制选择器
func (sp *SlotPicker) Draw(g *Graphics, xOff, yOff int) {
	if sp.state == SlotShowingMessage {
		DrawMsgBox(g, xOff, yOff, sp.msg)
		return
	}

	const (
		labelY = 12 // 标签基线
		rowY   = 44 // 未聚焦值基线
		bigY   = 40 // 聚焦值基线
	)

	// 入场：整体从屏下滑入
	slide := 0
	if sp.state == SlotEntering {
		slide = int(lerp(float64(g.Height()), 0, easeInOutQuad(sp.anim.Value())))
	}

	for i, f := range sp.fields {
		cx := xOff + sp.fieldX(g, i)
		text := fmt.Sprintf(f.Format, f.Get())

		g.SetFont(FontSmall)
		g.DrawStrCentered(cx, yOff+slide+labelY, f.Label)

		if i != sp.focus || sp.state == SlotEntering {
			g.SetFont(FontMedium)
			g.DrawStrCentered(cx, yOff+slide+rowY, text)
			continue
		}

		sp.drawFocused(g, cx, yOff+slide, rowY, bigY, f)
	}
}

// drawFocused 绘制聚焦字段：缩放插值 + 滚动偏移 + 相邻值
func (sp *SlotPicker) drawFocused(g *Graphics, cx, yOff, rowY, bigY int, f SlotField) {
	// 缩放进度：0=未聚焦 1=完全聚焦
	zoom := 1.0
	switch sp.state {
	case SlotZoomingIn, SlotZoomingOut:
		zoom = easeInOutQuad(sp.anim.Value())
	}

	y := int(lerp(float64(rowY), float64(bigY), zoom))
	// 过半后换大字体
	if zoom > 0.5 {
		g.SetFont(FontLarge)
	} else {
		g.SetFont(FontMedium)
	}

	text := fmt.Sprintf(f.Format, f.Get())

	if sp.state != SlotRolling {
		g.DrawStrCentered(cx, yOff+y, text)
		if sp.state == SlotFocused {
			sp.drawNeighbors(g, cx, yOff+y, 0, f)
		}
		return
	}

	// 滚动：新值带残余偏移滑向落点（缓出），相邻值跟随
	p := 1 - sp.rollAnim.Value()
	roll := int((1 - easeOutQuad(p)) * float64(slotRowHeight) * float64(sp.rollDir))
	g.DrawStrCentered(cx, yOff+y+roll, text)
	sp.drawNeighbors(g, cx, yOff+y, roll, f)
}

// drawNeighbors 在聚焦值上下绘制相邻值（小字体，环绕）
func (sp *SlotPicker) drawNeighbors(g *Graphics, cx, baseY, roll int, f SlotField) {
	min, max := f.Min(), f.Max()
	rng := max - min + 1
	wrap := func(v int) int { return min + ((v-min)%rng+rng)%rng }

	g.SetFont(FontMedium)
	prev := fmt.Sprintf(f.Format, wrap(f.Get()-1))
	next := fmt.Sprintf(f.Format, wrap(f.Get()+1))
	g.DrawStrCentered(cx, baseY-slotRowHeight+roll, prev)
	g.DrawStrCentered(cx, baseY+slotRowHeight+roll, next)
}
