package display

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
)

// Page 页面接口
// Render 只负责画（可重复调用），逻辑放在 Update；
// xOff/yOff 为滑动切换动画期间的绘制偏移。
type Page interface {
	Render(g *Graphics, xOff, yOff int)
	HandleInput(ev input.Event)
	Update(now time.Time)
	OnEnter()
	OnExit()
	GetName() string
	RefreshInterval() time.Duration
	LastDrawAt() time.Time
	MarkDrawn(t time.Time)
}

// BasePage 页面基类
type BasePage struct {
	Name    string
	Refresh time.Duration // 重绘间隔（页面自己的刷新节奏）

	lastDraw time.Time
}

// GetName 获取页面名称
func (p *BasePage) GetName() string {
	return p.Name
}

// RefreshInterval 重绘间隔，未设置时默认 50ms
func (p *BasePage) RefreshInterval() time.Duration {
	if p.Refresh <= 0 {
		return 50 * time.Millisecond
	}
	return p.Refresh
}

// LastDrawAt 上次重绘时间
func (p *BasePage) LastDrawAt() time.Time {
	return p.lastDraw
}

// MarkDrawn 记录重绘时间
func (p *BasePage) MarkDrawn(t time.Time) {
	p.lastDraw = t
}

// OnEnter 进入页面
func (p *BasePage) OnEnter() {
	// 默认实现
}

// OnExit 退出页面
func (p *BasePage) OnExit() {
	// 默认实现
}

// Update 更新页面
func (p *BasePage) Update(now time.Time) {
	// 默认实现
}

// HandleInput 处理输入事件
func (p *BasePage) HandleInput(ev input.Event) {
	// 默认实现
}
