package display

import (
	"fmt"
	"image"
	"testing"
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
)

// stubPage 记录生命周期与渲染偏移的测试页面
type stubPage struct {
	BasePage
	enterCount int
	exitCount  int
	inputCount int
	lastEvent  input.Event
	offsets    [][2]int // 每次 Render 记录 (xOff, yOff)
}

func newStubPage(name string) *stubPage {
	return &stubPage{BasePage: BasePage{Name: name, Refresh: time.Millisecond}}
}

func (p *stubPage) OnEnter() { p.enterCount++ }
func (p *stubPage) OnExit()  { p.exitCount++ }

func (p *stubPage) HandleInput(ev input.Event) {
	p.inputCount++
	p.lastEvent = ev
}

func (p *stubPage) Render(g *Graphics, xOff, yOff int) {
	p.offsets = append(p.offsets, [2]int{xOff, yOff})
}

func newTestPM() (*PageManager, *input.Queue, func(d time.Duration) time.Time) {
	img := image.NewRGBA(image.Rect(0, 0, 128, 64))
	q := input.NewQueue()
	pm := NewPageManager(NewGraphics(img), q)

	cur := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	pm.nowFn = func() time.Time { return cur }
	advance := func(d time.Duration) time.Time {
		cur = cur.Add(d)
		return cur
	}
	return pm, q, advance
}

// finishTransition 推进时间播完切换动画
func finishTransition(pm *PageManager, advance func(time.Duration) time.Time) {
	advance(TransitionDuration + time.Millisecond)
	pm.Loop()
}

func TestPageManager_SwitchToAndBack(t *testing.T) {
	pm, _, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.SetHomePage("a")
	pm.GoHome()

	if a.enterCount != 1 {
		t.Fatalf("首页 enter = %d, want 1", a.enterCount)
	}

	if err := pm.SwitchTo("b"); err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	finishTransition(pm, advance)

	if a.exitCount != 1 || b.enterCount != 1 {
		t.Errorf("切换后 a.exit=%d b.enter=%d", a.exitCount, b.enterCount)
	}
	if pm.CurrentPage() != b {
		t.Error("当前页应为 b")
	}

	pm.Back()
	finishTransition(pm, advance)

	if b.exitCount != 1 || a.enterCount != 2 {
		t.Errorf("返回后 b.exit=%d a.enter=%d", b.exitCount, a.enterCount)
	}
	if pm.CurrentPage() != a {
		t.Error("返回后当前页应为 a")
	}
}

func TestPageManager_SwitchToUnknownPage(t *testing.T) {
	pm, _, _ := newTestPM()
	if err := pm.SwitchTo("nope"); err == nil {
		t.Error("未注册页面应返回错误")
	}
}

func TestPageManager_BackOnEmptyStackIsNoop(t *testing.T) {
	pm, _, _ := newTestPM()
	a := newStubPage("a")
	pm.RegisterPage("a", a)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.Back()
	if pm.CurrentPage() != a || a.exitCount != 0 {
		t.Error("空栈 Back 应无副作用")
	}
}

func TestPageManager_SwitchIgnoredDuringTransition(t *testing.T) {
	pm, _, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	c := newStubPage("c")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.RegisterPage("c", c)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.SwitchTo("b")
	if !pm.InTransition() {
		t.Fatal("应处于切换动画中")
	}

	// 动画中再次切换被忽略
	if err := pm.SwitchTo("c"); err != nil {
		t.Fatalf("动画中 SwitchTo 应静默忽略: %v", err)
	}
	if c.enterCount != 0 {
		t.Error("动画中切换不应触发 OnEnter")
	}

	finishTransition(pm, advance)
	if pm.CurrentPage() != b {
		t.Error("动画结束后当前页应为 b")
	}
}

func TestPageManager_HistoryCap(t *testing.T) {
	pm, _, advance := newTestPM()
	pages := make([]*stubPage, 12)
	for i := range pages {
		pages[i] = newStubPage(fmt.Sprintf("p%d", i))
		pm.RegisterPage(pages[i].GetName(), pages[i])
	}
	pm.SetHomePage("p0")
	pm.GoHome()

	// 连续前进 11 次：只有前 8 次入栈
	for i := 1; i < 12; i++ {
		pm.SwitchTo(fmt.Sprintf("p%d", i))
		finishTransition(pm, advance)
	}
	if pm.CurrentPage() != pages[11] {
		t.Fatal("导航应到达最后一页")
	}

	// 能回退 8 层，之后 Back 无效
	for i := 0; i < HistoryDepth; i++ {
		pm.Back()
		finishTransition(pm, advance)
	}
	last := pm.CurrentPage()
	pm.Back()
	if pm.CurrentPage() != last {
		t.Errorf("超出历史深度后 Back 应无效，当前 %s", pm.CurrentPage().GetName())
	}
}

func TestPageManager_TransitionOffsetsSpanScreenWidth(t *testing.T) {
	pm, _, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.SwitchTo("b")
	advance(TransitionDuration / 2)
	if !pm.Loop() {
		t.Fatal("动画中每周期都应重绘")
	}

	if len(a.offsets) == 0 || len(b.offsets) == 0 {
		t.Fatal("动画中两个页面都应被渲染")
	}
	fromX := a.offsets[len(a.offsets)-1][0]
	toX := b.offsets[len(b.offsets)-1][0]
	// 前进方向：旧页左移、新页右侧滑入，两者偏移差恒为屏宽
	if toX-fromX != 128 {
		t.Errorf("toX-fromX = %d, want 128", toX-fromX)
	}
	if fromX > 0 || toX < 0 {
		t.Errorf("偏移方向错误: fromX=%d toX=%d", fromX, toX)
	}
}

func TestPageManager_TransitionCompletesWithFinalFrame(t *testing.T) {
	pm, _, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.SwitchTo("b")
	advance(TransitionDuration)
	if !pm.Loop() {
		t.Error("动画结束周期应重绘最终帧")
	}
	if pm.InTransition() {
		t.Error("动画应已结束")
	}
	final := b.offsets[len(b.offsets)-1]
	if final != [2]int{0, 0} {
		t.Errorf("最终帧应画在原点: %v", final)
	}
}

func TestPageManager_GoHomeClearsStackWithoutAnimation(t *testing.T) {
	pm, _, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	c := newStubPage("c")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.RegisterPage("c", c)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.SwitchTo("b")
	finishTransition(pm, advance)
	pm.SwitchTo("c")
	finishTransition(pm, advance)

	pm.GoHome()
	if pm.InTransition() {
		t.Error("GoHome 不应播放动画")
	}
	if pm.CurrentPage() != a {
		t.Error("GoHome 后应在首页")
	}

	// 栈已清空：Back 无效
	pm.Back()
	if pm.CurrentPage() != a {
		t.Error("GoHome 后历史栈应为空")
	}
}

func TestPageManager_OneEventPerLoop(t *testing.T) {
	pm, q, advance := newTestPM()
	a := newStubPage("a")
	pm.RegisterPage("a", a)
	pm.SetHomePage("a")
	pm.GoHome()

	q.Push(input.Event{Type: input.EventConfirmPressed})
	q.Push(input.Event{Type: input.EventBackPressed})

	pm.Loop()
	if a.inputCount != 1 || a.lastEvent.Type != input.EventConfirmPressed {
		t.Fatalf("第一周期应只分发第一个事件: count=%d", a.inputCount)
	}

	advance(time.Millisecond)
	pm.Loop()
	if a.inputCount != 2 || a.lastEvent.Type != input.EventBackPressed {
		t.Fatalf("第二周期应分发第二个事件: count=%d", a.inputCount)
	}
}

func TestPageManager_EventsDeferredDuringTransition(t *testing.T) {
	pm, q, advance := newTestPM()
	a := newStubPage("a")
	b := newStubPage("b")
	pm.RegisterPage("a", a)
	pm.RegisterPage("b", b)
	pm.SetHomePage("a")
	pm.GoHome()

	pm.SwitchTo("b")
	q.Push(input.Event{Type: input.EventConfirmPressed})

	// 动画期间不取队列
	advance(TransitionDuration / 2)
	pm.Loop()
	if a.inputCount != 0 || b.inputCount != 0 {
		t.Error("动画期间不应分发事件")
	}
	if q.Count() != 1 {
		t.Errorf("事件应留在队列中, count = %d", q.Count())
	}

	// 动画结束后事件分发给新的当前页
	advance(TransitionDuration)
	pm.Loop()
	advance(time.Millisecond)
	pm.Loop()
	if b.inputCount != 1 || b.lastEvent.Type != input.EventConfirmPressed {
		t.Errorf("动画结束后事件应分发给目标页: count = %d", b.inputCount)
	}
	if a.inputCount != 0 {
		t.Error("旧页面不应收到事件")
	}
}
