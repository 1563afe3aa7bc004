package display

import (
	"math"
	"testing"
	"time"
)

func TestAnim_LinearInterpolation(t *testing.T) {
	var a Anim
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)

	a.Start(0, 100, 200*time.Millisecond, t0)
	if !a.Active() {
		t.Fatal("Start 后应处于播放中")
	}

	a.Advance(t0.Add(50 * time.Millisecond))
	if math.Abs(a.Value()-25) > 0.001 {
		t.Errorf("25%% 进度值 = %v, want 25", a.Value())
	}

	a.Advance(t0.Add(100 * time.Millisecond))
	if math.Abs(a.Value()-50) > 0.001 {
		t.Errorf("50%% 进度值 = %v, want 50", a.Value())
	}
}

func TestAnim_ExactSnapAtEnd(t *testing.T) {
	var a Anim
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)

	// 终点值刻意选不能被浮点整除的数，验证吸附而非累积
	a.Start(0, 128, 250*time.Millisecond, t0)

	// 超过时长的那一次 Advance 必须返回 true 且值严格等于终点
	done := a.Advance(t0.Add(251 * time.Millisecond))
	if !done {
		t.Error("越过时长的 Advance 应返回完成")
	}
	if a.Value() != 128 {
		t.Errorf("完成后值 = %v, want 精确 128", a.Value())
	}
	if a.Active() {
		t.Error("完成后应回到空闲")
	}

	// 空闲后再 Advance 不应再返回完成
	if a.Advance(t0.Add(300 * time.Millisecond)) {
		t.Error("空闲状态 Advance 不应返回完成")
	}
}

func TestAnim_ZeroDuration(t *testing.T) {
	var a Anim
	t0 := time.Now()

	a.Start(5, 42, 0, t0)
	if a.Active() {
		t.Error("零时长动画应立即完成")
	}
	if a.Value() != 42 {
		t.Errorf("零时长动画值 = %v, want 42", a.Value())
	}
}

func TestEaseInOutQuad(t *testing.T) {
	if easeInOutQuad(0) != 0 {
		t.Error("p=0 应为 0")
	}
	if easeInOutQuad(1) != 1 {
		t.Error("p=1 应为 1")
	}
	if math.Abs(easeInOutQuad(0.5)-0.5) > 1e-9 {
		t.Errorf("p=0.5 应为 0.5, got %v", easeInOutQuad(0.5))
	}
	// 前半段慢于线性
	if easeInOutQuad(0.25) >= 0.25 {
		t.Error("缓入段应慢于线性")
	}
	// 后半段快于线性剩余
	if easeInOutQuad(0.75) <= 0.75 {
		t.Error("缓出段应快于线性")
	}
}

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 || easeOutQuad(1) != 1 {
		t.Error("端点值错误")
	}
	if easeOutQuad(0.5) <= 0.5 {
		t.Error("缓出曲线前期应快于线性")
	}
}
