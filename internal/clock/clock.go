package clock

import (
	"sync"
	"time"
)

// RTC 实时时钟抽象（设备上对应 RX8025T 等外部 RTC 芯片）
type RTC interface {
	Now() time.Time
	SetTime(t time.Time) error
}

// SystemRTC 基于系统时钟的 RTC 实现
// SetTime 不直接改系统时间（通常无权限），而是记录一个偏移量，
// 之后 Now() 在系统时钟基础上叠加偏移。
type SystemRTC struct {
	mu     sync.Mutex
	offset time.Duration
}

func NewSystemRTC() *SystemRTC {
	return &SystemRTC{}
}

func (r *SystemRTC) Now() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return time.Now().Add(r.offset)
}

func (r *SystemRTC) SetTime(t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = time.Until(t)
	return nil
}

// ApplyDST 返回显示用时间：启用夏令时则 +1 小时（跨天/跨月/跨年由 time 包处理）
func ApplyDST(t time.Time, enabled bool) time.Time {
	if !enabled {
		return t
	}
	return t.Add(time.Hour)
}

// DaysInMonth 返回指定年月的天数（含闰年二月）
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// IsLeapYear 闰年判断
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var weekdayEN = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
var weekdayCN = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// WeekdayName 星期显示名（lang: 0=English 1=中文）
func WeekdayName(w time.Weekday, lang uint8) string {
	if lang == 1 {
		return weekdayCN[int(w)]
	}
	return weekdayEN[int(w)]
}
