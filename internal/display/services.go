package display

import (
	"fmt"
	"time"

	appcfg "github.com/SandOcean-ovo/Table-Clock/config"
	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

// AppServices UI 业务服务集合：统一封装 config / 时钟 / 传感器 / 设置
type AppServices struct {
	Config   *appcfg.Config
	Clock    clock.RTC
	Sensor   clock.Sensor
	Settings *settings.Manager
}

func NewAppServices(cfg *appcfg.Config, rtc clock.RTC, sensor clock.Sensor, sm *settings.Manager) *AppServices {
	return &AppServices{
		Config:   cfg,
		Clock:    rtc,
		Sensor:   sensor,
		Settings: sm,
	}
}

// Lang 当前语言（0=English 1=中文）
func (s *AppServices) Lang() uint8 {
	if s.Settings == nil {
		return settings.LangEnglish
	}
	return s.Settings.Get().Language
}

// DisplayTime 显示用时间（已按夏令时设置调整）
func (s *AppServices) DisplayTime() time.Time {
	t := time.Now()
	if s.Clock != nil {
		t = s.Clock.Now()
	}
	dst := false
	if s.Settings != nil {
		dst = s.Settings.Get().DSTEnabled
	}
	return clock.ApplyDST(t, dst)
}

// SetDate 修改 RTC 日期（保留时分秒）
func (s *AppServices) SetDate(year, month, day int) error {
	if s.Clock == nil {
		return fmt.Errorf("时钟未初始化")
	}
	now := s.Clock.Now()
	t := time.Date(year, time.Month(month), day, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	return s.Clock.SetTime(t)
}

// SetClock 修改 RTC 时间（保留年月日）
func (s *AppServices) SetClock(hour, min, sec int) error {
	if s.Clock == nil {
		return fmt.Errorf("时钟未初始化")
	}
	now := s.Clock.Now()
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
	return s.Clock.SetTime(t)
}

// SetLanguage 修改并保存语言设置
func (s *AppServices) SetLanguage(lang uint8) error {
	if s.Settings == nil {
		return fmt.Errorf("设置未初始化")
	}
	return s.Settings.Update(func(st *settings.Settings) {
		st.Language = lang
	})
}

// SetAutoOff 修改并保存自动熄屏设置
func (s *AppServices) SetAutoOff(a settings.AutoOff) error {
	if s.Settings == nil {
		return fmt.Errorf("设置未初始化")
	}
	return s.Settings.Update(func(st *settings.Settings) {
		st.AutoOff = a
	})
}

// SetDST 修改并保存夏令时设置
func (s *AppServices) SetDST(enabled bool) error {
	if s.Settings == nil {
		return fmt.Errorf("设置未初始化")
	}
	return s.Settings.Update(func(st *settings.Settings) {
		st.DSTEnabled = enabled
	})
}

// AutoOffTimeout 当前自动熄屏空闲时长（0 表示从不熄屏）
func (s *AppServices) AutoOffTimeout() time.Duration {
	if s.Settings == nil {
		return 0
	}
	return s.Settings.Get().AutoOff.Duration()
}

// weekday 按当前语言取星期文案
func (s *AppServices) weekday(w time.Weekday) string {
	return clock.WeekdayName(w, s.Lang())
}

// tr 按当前语言取文案
func (s *AppServices) tr(en, cn string) string {
	if s.Lang() == settings.LangChinese {
		return cn
	}
	return en
}
