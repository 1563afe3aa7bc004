package display

import (
	"testing"
	"time"
)

func newTestPicker(hour, min, sec *int) *SlotPicker {
	field := func(label string, v *int, lo, hi int) SlotField {
		return SlotField{
			Label:  label,
			Format: "%02d",
			Min:    func() int { return lo },
			Max:    func() int { return hi },
			Get:    func() int { return *v },
			Set:    func(nv int) { *v = nv },
		}
	}
	return NewSlotPicker([]SlotField{
		field("Hour", hour, 0, 23),
		field("Min", min, 0, 59),
		field("Sec", sec, 0, 59),
	})
}

// advanceToFocused 播完入场和聚焦动画
func advanceToFocused(sp *SlotPicker, now time.Time) time.Time {
	sp.Update(now.Add(slotEnterDuration + time.Millisecond))
	now = now.Add(slotEnterDuration + slotZoomDuration + 2*time.Millisecond)
	sp.Update(now)
	return now
}

func TestSlotPicker_EnterThenZoomInThenFocused(t *testing.T) {
	h, m, s := 12, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)

	if sp.State() != SlotEntering {
		t.Fatalf("Reset 后应为入场态: %v", sp.State())
	}

	sp.Update(t0.Add(slotEnterDuration + time.Millisecond))
	if sp.State() != SlotZoomingIn {
		t.Fatalf("入场结束应进入放大态: %v", sp.State())
	}

	sp.Update(t0.Add(slotEnterDuration + slotZoomDuration + 2*time.Millisecond))
	if sp.State() != SlotFocused {
		t.Fatalf("放大结束应进入聚焦态: %v", sp.State())
	}
}

func TestSlotPicker_HourWrapsAtMidnight(t *testing.T) {
	h, m, s := 23, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)
	now := advanceToFocused(sp, t0)

	sp.HandleRotate(1, now)
	if h != 0 {
		t.Errorf("23 时 +1 应回到 0, got %d", h)
	}
	if sp.State() != SlotRolling {
		t.Errorf("调值后应进入滚动态: %v", sp.State())
	}

	// 反向环绕
	now = now.Add(slotRollDuration + time.Millisecond)
	sp.Update(now)
	sp.HandleRotate(-1, now)
	if h != 23 {
		t.Errorf("0 时 -1 应回到 23, got %d", h)
	}
}

func TestSlotPicker_RotationIgnoredWhileRolling(t *testing.T) {
	h, m, s := 10, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)
	now := advanceToFocused(sp, t0)

	sp.HandleRotate(1, now)
	if h != 11 {
		t.Fatalf("第一次旋转后 h = %d", h)
	}

	// 滚动未结束：再次旋转被忽略
	sp.HandleRotate(1, now.Add(slotRollDuration/2))
	if h != 11 {
		t.Errorf("滚动中旋转不应改值, got %d", h)
	}

	// 滚动结束后恢复响应
	now = now.Add(slotRollDuration + time.Millisecond)
	sp.Update(now)
	sp.HandleRotate(1, now)
	if h != 12 {
		t.Errorf("滚动结束后旋转应生效, got %d", h)
	}
}

func TestSlotPicker_EncoderPressCyclesFocus(t *testing.T) {
	h, m, s := 0, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)
	now := advanceToFocused(sp, t0)

	want := []int{1, 2, 0} // Hour -> Min -> Sec -> Hour 循环
	for _, w := range want {
		sp.HandleEncoderPress(now)
		if sp.State() != SlotZoomingOut {
			t.Fatalf("按键后应进入缩小态: %v", sp.State())
		}
		// 缩小结束（含瞬时切换）→ 放大 → 聚焦
		now = now.Add(slotZoomDuration + time.Millisecond)
		sp.Update(now)
		if sp.Focus() != w {
			t.Fatalf("切换后 Focus = %d, want %d", sp.Focus(), w)
		}
		if sp.State() != SlotZoomingIn {
			t.Fatalf("切换后应进入放大态: %v", sp.State())
		}
		now = now.Add(slotZoomDuration + time.Millisecond)
		sp.Update(now)
		if sp.State() != SlotFocused {
			t.Fatalf("放大结束应回到聚焦态: %v", sp.State())
		}
	}
}

func TestSlotPicker_RotationIgnoredWhileZooming(t *testing.T) {
	h, m, s := 5, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)

	// 入场态旋转无效
	sp.HandleRotate(1, t0)
	if h != 5 {
		t.Errorf("入场中旋转不应改值, got %d", h)
	}

	now := advanceToFocused(sp, t0)
	sp.HandleEncoderPress(now)
	sp.HandleRotate(1, now)
	if h != 5 {
		t.Errorf("缩小中旋转不应改值, got %d", h)
	}
}

func TestSlotPicker_MessageThenDone(t *testing.T) {
	h, m, s := 0, 0, 0
	sp := newTestPicker(&h, &m, &s)
	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)
	now := advanceToFocused(sp, t0)

	sp.ShowMessage("Time Saved!", now)
	if sp.State() != SlotShowingMessage {
		t.Fatalf("确认后应进入提示态: %v", sp.State())
	}

	sp.Update(now.Add(slotMessageDuration - time.Millisecond))
	if sp.Done() {
		t.Error("提示未播完不应 Done")
	}

	sp.Update(now.Add(slotMessageDuration))
	if !sp.Done() {
		t.Error("提示播完应 Done")
	}
}

func TestSlotPicker_DayClampedAfterMonthChange(t *testing.T) {
	year, month, day := 2025, 3, 31
	field := func(label, format string, v *int, lo func() int, hi func() int) SlotField {
		return SlotField{
			Label: label, Format: format,
			Min: lo, Max: hi,
			Get: func() int { return *v },
			Set: func(nv int) { *v = nv },
		}
	}
	fix := func(n int) func() int { return func() int { return n } }
	daysInMonth := func() int {
		switch month {
		case 2:
			return 28
		case 4, 6, 9, 11:
			return 30
		default:
			return 31
		}
	}
	sp := NewSlotPicker([]SlotField{
		field("Year", "%04d", &year, fix(2000), fix(2099)),
		field("Month", "%02d", &month, fix(1), fix(12)),
		field("Day", "%02d", &day, fix(1), daysInMonth),
	})
	sp.AfterChange = func() {
		if day > daysInMonth() {
			day = daysInMonth()
		}
	}

	t0 := time.Date(2025, 8, 23, 12, 0, 0, 0, time.UTC)
	sp.Reset(t0)
	now := advanceToFocused(sp, t0)

	// 切到月份字段
	sp.HandleEncoderPress(now)
	now = now.Add(2*slotZoomDuration + 2*time.Millisecond)
	sp.Update(now.Add(-slotZoomDuration - time.Millisecond))
	sp.Update(now)
	if sp.Focus() != 1 || sp.State() != SlotFocused {
		t.Fatalf("应聚焦月份字段: focus=%d state=%v", sp.Focus(), sp.State())
	}

	// 3 月 31 日 -> 4 月：日期应收紧到 30
	sp.HandleRotate(1, now)
	if month != 4 {
		t.Fatalf("month = %d, want 4", month)
	}
	if day != 30 {
		t.Errorf("改月后日期应收紧到 30, got %d", day)
	}
}
