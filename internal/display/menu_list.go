package display

import "time"

const (
	// menuRowHeight 菜单行高（像素）
	menuRowHeight = 13
	// menuScrollDuration 视口滚动动画时长
	menuScrollDuration = 200 * time.Millisecond
	// menuHighlightDuration 仅高亮移动（不滚动）时的动画时长
	menuHighlightDuration = 120 * time.Millisecond
)

// MenuList 滚动列表菜单：编码器移动高亮，超出视口时整体滚动。
// 高亮用反色绘制（先画实心框，再在裁剪窗口内用背景色重画文字）。
type MenuList struct {
	items    []string
	selected int
	top      int // 视口顶部条目索引
	visible  int // 视口内可见条目数

	// HighlightDur/ScrollDur 可按页面覆盖动画时长
	HighlightDur time.Duration
	ScrollDur    time.Duration

	highlightY Anim // 高亮框位置（列表像素空间）
	scrollY    Anim // 视口偏移（列表像素空间）
}

// NewMenuList 创建菜单，visible 为一屏可见条目数
func NewMenuList(items []string, visible int) *MenuList {
	if visible <= 0 || visible > len(items) {
		visible = len(items)
	}
	m := &MenuList{
		items:        items,
		visible:      visible,
		HighlightDur: menuHighlightDuration,
		ScrollDur:    menuScrollDuration,
	}
	m.Reset(time.Now())
	return m
}

// SetItems 替换条目文案（切换语言后调用），选中位置保持
func (m *MenuList) SetItems(items []string) {
	m.items = items
}

// Selected 当前选中条目索引
func (m *MenuList) Selected() int { return m.selected }

// Reset 回到第一项并吸附动画
func (m *MenuList) Reset(now time.Time) {
	m.selected = 0
	m.top = 0
	m.highlightY.Start(0, 0, 0, now)
	m.scrollY.Start(0, 0, 0, now)
}

// Select 直接跳到指定条目（进入页面时按当前设置定位），不播动画
func (m *MenuList) Select(i int, now time.Time) {
	if i < 0 || i >= len(m.items) {
		return
	}
	m.selected = i
	if m.selected < m.top {
		m.top = m.selected
	} else if m.selected >= m.top+m.visible {
		m.top = m.selected - m.visible + 1
	}
	m.highlightY.Start(0, float64(m.selected*menuRowHeight), 0, now)
	m.scrollY.Start(0, float64(m.top*menuRowHeight), 0, now)
}

// HandleRotate 编码器旋转：按符号移动一格，两端环绕
func (m *MenuList) HandleRotate(delta int, now time.Time) {
	if delta == 0 || len(m.items) == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}

	n := len(m.items)
	m.selected = (m.selected + dir + n) % n

	// 选中项滑出视口时滚动视口
	newTop := m.top
	if m.selected < m.top {
		newTop = m.selected
	} else if m.selected >= m.top+m.visible {
		newTop = m.selected - m.visible + 1
	}

	dur := m.HighlightDur
	if newTop != m.top {
		dur = m.ScrollDur
		m.scrollY.Start(m.scrollY.Value(), float64(newTop*menuRowHeight), dur, now)
		m.top = newTop
	}
	m.highlightY.Start(m.highlightY.Value(), float64(m.selected*menuRowHeight), dur, now)
}

// Update 推进动画
func (m *MenuList) Update(now time.Time) {
	m.highlightY.Advance(now)
	m.scrollY.Advance(now)
}

// Animating 是否有动画在播放
func (m *MenuList) Animating() bool {
	return m.highlightY.Active() || m.scrollY.Active()
}

// Draw 在 (x, y) 处绘制，w 为菜单宽度
func (m *MenuList) Draw(g *Graphics, x, y, w int) {
	scroll := int(m.scrollY.Value())
	listBottom := y + m.visible*menuRowHeight

	drawItems := func() {
		for i, it := range m.items {
			iy := y + i*menuRowHeight - scroll
			if iy+menuRowHeight <= y || iy >= listBottom {
				continue
			}
			g.DrawStr(x+4, iy+menuRowHeight-3, it)
		}
	}

	g.SetFont(FontMenu)
	g.SetDrawColor(1)
	g.SetClipWindow(x, y, x+w, listBottom)
	drawItems()

	// 反色高亮
	hlY := y + int(m.highlightY.Value()) - scroll
	g.DrawBox(x, hlY, w, menuRowHeight)
	clipTop := hlY
	if clipTop < y {
		clipTop = y
	}
	clipBottom := hlY + menuRowHeight
	if clipBottom > listBottom {
		clipBottom = listBottom
	}
	g.SetClipWindow(x, clipTop, x+w, clipBottom)
	g.SetDrawColor(0)
	drawItems()

	g.SetMaxClipWindow()
	g.SetDrawColor(1)
}
