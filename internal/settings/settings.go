package settings

import (
	"encoding/binary"
	"fmt"
	"time"
)

// MagicNumber 设置记录魔法数，用于验证持久化数据是否有效
const MagicNumber uint32 = 0xDEADBEEF

// RecordSize 持久化记录的固定长度：magic(4) + language(1) + auto_off(1) + dst(1) + checksum(1)
const RecordSize = 8

// AutoOff 自动熄屏时间选项
type AutoOff uint8

const (
	AutoOffNever AutoOff = iota // 从不自动熄屏
	AutoOff30S
	AutoOff1Min
	AutoOff5Min
	AutoOff10Min
)

// Duration 选项对应的空闲时长（Never 返回 0）
func (a AutoOff) Duration() time.Duration {
	switch a {
	case AutoOff30S:
		return 30 * time.Second
	case AutoOff1Min:
		return time.Minute
	case AutoOff5Min:
		return 5 * time.Minute
	case AutoOff10Min:
		return 10 * time.Minute
	default:
		return 0
	}
}

// 语言设置取值
const (
	LangEnglish uint8 = 0
	LangChinese uint8 = 1
)

// Settings 需要持久化的全部设置项
type Settings struct {
	Language   uint8   // 0: English, 1: 中文
	AutoOff    AutoOff // 自动熄屏时间
	DSTEnabled bool    // 夏令时是否启用
}

// Default 出厂默认设置
func Default() Settings {
	return Settings{
		Language:   LangEnglish,
		AutoOff:    AutoOffNever,
		DSTEnabled: false,
	}
}

// checksum 对 magic 之后、checksum 之前的字节做加法校验
func checksum(b []byte) uint8 {
	var sum uint8
	for _, v := range b[4 : RecordSize-1] {
		sum += v
	}
	return sum
}

// Marshal 序列化为固定长度记录（小端 magic + 校验和）
func (s Settings) Marshal() []byte {
	b := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(b[0:4], MagicNumber)
	b[4] = s.Language
	b[5] = uint8(s.AutoOff)
	if s.DSTEnabled {
		b[6] = 1
	}
	b[RecordSize-1] = checksum(b)
	return b
}

// Unmarshal 解析并校验记录，魔法数或校验和不符返回错误
func Unmarshal(b []byte) (Settings, error) {
	if len(b) != RecordSize {
		return Settings{}, fmt.Errorf("设置数据长度无效: %d", len(b))
	}
	if binary.LittleEndian.Uint32(b[0:4]) != MagicNumber {
		return Settings{}, fmt.Errorf("设置数据魔法数不匹配")
	}
	if b[RecordSize-1] != checksum(b) {
		return Settings{}, fmt.Errorf("设置数据校验和错误")
	}
	s := Settings{
		Language:   b[4],
		AutoOff:    AutoOff(b[5]),
		DSTEnabled: b[6] != 0,
	}
	if s.AutoOff > AutoOff10Min {
		s.AutoOff = AutoOffNever
	}
	if s.Language > LangChinese {
		s.Language = LangEnglish
	}
	return s, nil
}
