package clock

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29}, // 闰年
		{2000, 2, 29}, // 400 整除
		{2100, 2, 28}, // 100 整除但非 400 整除
		{2025, 4, 30},
		{2025, 12, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestApplyDST_CrossesMidnight(t *testing.T) {
	base := time.Date(2025, 12, 31, 23, 30, 0, 0, time.Local)

	got := ApplyDST(base, true)
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 1 || got.Hour() != 0 || got.Minute() != 30 {
		t.Errorf("ApplyDST 跨年结果错误: %v", got)
	}

	same := ApplyDST(base, false)
	if !same.Equal(base) {
		t.Errorf("未启用夏令时不应改变时间: %v", same)
	}
}

func TestSystemRTC_SetTime(t *testing.T) {
	rtc := NewSystemRTC()

	target := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	if err := rtc.SetTime(target); err != nil {
		t.Fatalf("SetTime 失败: %v", err)
	}

	got := rtc.Now()
	if d := got.Sub(target); d < 0 || d > time.Second {
		t.Errorf("SetTime 之后 Now 偏差过大: %v", d)
	}
}
