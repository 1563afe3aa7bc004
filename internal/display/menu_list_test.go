package display

import (
	"testing"
	"time"
)

func TestMenuList_SelectionWraps(t *testing.T) {
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	m := NewMenuList([]string{"A", "B", "C"}, 3)
	m.Reset(now)

	// 第一项向上：环绕到最后一项
	m.HandleRotate(-1, now)
	if m.Selected() != 2 {
		t.Errorf("向上环绕后 Selected = %d, want 2", m.Selected())
	}

	// 最后一项向下：环绕回第一项
	m.HandleRotate(1, now)
	if m.Selected() != 0 {
		t.Errorf("向下环绕后 Selected = %d, want 0", m.Selected())
	}
}

func TestMenuList_ViewportScrollsOnlyWhenLeaving(t *testing.T) {
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	m := NewMenuList([]string{"A", "B", "C", "D", "E"}, 4)
	m.Reset(now)

	// 视口内移动：top 不变，动画用短时长
	m.HandleRotate(1, now)
	if m.top != 0 {
		t.Errorf("视口内移动不应滚动, top = %d", m.top)
	}
	if m.highlightY.duration != m.HighlightDur {
		t.Errorf("视口内移动应使用高亮时长, got %v", m.highlightY.duration)
	}

	// 移动到第 5 项（索引 4）：离开视口，top 滚动到 1，动画用滚动时长
	m.HandleRotate(1, now)
	m.HandleRotate(1, now)
	m.HandleRotate(1, now)
	if m.Selected() != 4 {
		t.Fatalf("Selected = %d, want 4", m.Selected())
	}
	if m.top != 1 {
		t.Errorf("离开视口应滚动, top = %d, want 1", m.top)
	}
	if m.highlightY.duration != m.ScrollDur {
		t.Errorf("滚动时应使用滚动时长, got %v", m.highlightY.duration)
	}
	if !m.scrollY.Active() {
		t.Error("滚动动画应在播放中")
	}
}

func TestMenuList_AnimationSettles(t *testing.T) {
	now := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	m := NewMenuList([]string{"A", "B", "C"}, 3)
	m.Reset(now)

	m.HandleRotate(1, now)
	if !m.Animating() {
		t.Fatal("旋转后应有动画")
	}

	m.Update(now.Add(m.HighlightDur + time.Millisecond))
	if m.Animating() {
		t.Error("超过时长后动画应结束")
	}
	if m.highlightY.Value() != float64(menuRowHeight) {
		t.Errorf("高亮位置应精确落位: %v", m.highlightY.Value())
	}
}
