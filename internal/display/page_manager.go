package display

import (
	"fmt"
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
)

const (
	// TransitionDuration 页面滑动切换时长
	TransitionDuration = 250 * time.Millisecond
	// HistoryDepth 导航历史栈深度
	HistoryDepth = 8
)

// pmState 页面管理器状态
type pmState int

const (
	pmIdle pmState = iota
	pmTransition
)

// PageManager 页面管理器：页面注册、导航历史与滑动切换动画
type PageManager struct {
	g     *Graphics
	queue *input.Queue

	pages       map[string]Page
	currentPage Page
	pageStack   []Page // 页面导航堆栈（最多 HistoryDepth 层）

	state      pmState
	transFrom  Page
	transTo    Page
	transStart time.Time
	transDir   int // +1 前进（新页从右侧滑入），-1 返回

	homePageName string
	forceRedraw  bool
	nowFn        func() time.Time
}

// NewPageManager 创建页面管理器
func NewPageManager(g *Graphics, queue *input.Queue) *PageManager {
	return &PageManager{
		g:     g,
		queue: queue,
		pages: make(map[string]Page),
		nowFn: time.Now,
	}
}

// RegisterPage 注册页面
func (pm *PageManager) RegisterPage(name string, page Page) {
	pm.pages[name] = page
}

// SetHomePage 设置首页名称（GoHome 的目标）
func (pm *PageManager) SetHomePage(name string) {
	pm.homePageName = name
}

// CurrentPage 获取当前页面
func (pm *PageManager) CurrentPage() Page {
	return pm.currentPage
}

// InTransition 是否处于切换动画中
func (pm *PageManager) InTransition() bool {
	return pm.state == pmTransition
}

// SwitchTo 导航到新页面 (Push)：当前页入栈，带滑动动画。
// 切换动画进行中或目标即当前页时忽略。
func (pm *PageManager) SwitchTo(name string) error {
	page, ok := pm.pages[name]
	if !ok {
		return fmt.Errorf("页面不存在: %s", name)
	}
	if pm.state == pmTransition || page == pm.currentPage {
		return nil
	}

	if pm.currentPage != nil {
		// 栈满时放弃入栈（导航仍继续，只是无法返回到更早的页面）
		if len(pm.pageStack) < HistoryDepth {
			pm.pageStack = append(pm.pageStack, pm.currentPage)
		}
		pm.currentPage.OnExit()
		pm.startTransition(pm.currentPage, page, +1)
	}

	pm.currentPage = page
	pm.currentPage.OnEnter()
	return nil
}

// Back 返回上一页 (Pop)，带反向滑动动画
func (pm *PageManager) Back() {
	if pm.state == pmTransition {
		return
	}
	if len(pm.pageStack) == 0 {
		return // 已经在根页面，无法返回
	}

	lastIdx := len(pm.pageStack) - 1
	prevPage := pm.pageStack[lastIdx]
	pm.pageStack = pm.pageStack[:lastIdx]

	if pm.currentPage != nil {
		pm.currentPage.OnExit()
		pm.startTransition(pm.currentPage, prevPage, -1)
	}

	pm.currentPage = prevPage
	pm.currentPage.OnEnter()
}

// GoHome 直接回到首页：清空历史栈，不播放动画（熄屏前调用）
func (pm *PageManager) GoHome() {
	home, ok := pm.pages[pm.homePageName]
	if !ok {
		return
	}

	pm.pageStack = pm.pageStack[:0]
	pm.state = pmIdle
	pm.transFrom = nil
	pm.transTo = nil

	if home == pm.currentPage {
		return
	}
	if pm.currentPage != nil {
		pm.currentPage.OnExit()
	}
	pm.currentPage = home
	pm.currentPage.OnEnter()
	pm.forceRedraw = true
}

func (pm *PageManager) startTransition(from, to Page, dir int) {
	pm.state = pmTransition
	pm.transFrom = from
	pm.transTo = to
	pm.transDir = dir
	pm.transStart = pm.nowFn()
}

// Loop 执行一个引擎周期：取事件、更新页面、按需重绘。
// 返回本周期是否有新画面需要刷到屏幕。
func (pm *PageManager) Loop() bool {
	now := pm.nowFn()

	// 每周期最多消费一个事件；切换动画期间不取队列，事件留待动画结束后分发
	if pm.state == pmIdle {
		if ev, ok := pm.queue.Pop(); ok && pm.currentPage != nil {
			pm.currentPage.HandleInput(ev)
		}
	}

	if pm.state == pmTransition {
		return pm.loopTransition(now)
	}

	if pm.currentPage == nil {
		return false
	}

	pm.currentPage.Update(now)

	if pm.forceRedraw || now.Sub(pm.currentPage.LastDrawAt()) >= pm.currentPage.RefreshInterval() {
		pm.forceRedraw = false
		pm.g.Clear()
		pm.currentPage.Render(pm.g, 0, 0)
		pm.currentPage.MarkDrawn(now)
		return true
	}
	return false
}

// loopTransition 切换动画期间：两个页面都更新、都按偏移绘制，每周期重绘
func (pm *PageManager) loopTransition(now time.Time) bool {
	elapsed := now.Sub(pm.transStart)
	if elapsed >= TransitionDuration {
		// 动画结束：精确落位，立即把最终页面画在偏移 0 处
		to := pm.transTo
		pm.state = pmIdle
		pm.transFrom = nil
		pm.transTo = nil

		pm.g.Clear()
		to.Update(now)
		to.Render(pm.g, 0, 0)
		to.MarkDrawn(now)
		return true
	}

	p := float64(elapsed) / float64(TransitionDuration)
	w := float64(pm.g.Width())

	var fromX, toX int
	if pm.transDir >= 0 {
		// 前进：旧页左移出屏，新页从右侧滑入；两者偏移之和恒为屏宽
		fromX = int(-w * p)
		toX = int(w - w*p)
	} else {
		fromX = int(w * p)
		toX = int(-w + w*p)
	}

	pm.transFrom.Update(now)
	pm.transTo.Update(now)

	pm.g.Clear()
	pm.transFrom.Render(pm.g, fromX, 0)
	pm.transTo.Render(pm.g, toX, 0)
	return true
}
