package input

import "time"

// EventType 输入事件类型
type EventType uint8

const (
	EventNone           EventType = iota // 无事件
	EventBackPressed                     // 返回键按下
	EventConfirmPressed                  // 确认键按下
	EventEncoderPressed                  // 编码器按键按下
	EventEncoderRotated                  // 编码器旋转（Value 为增量）
)

func (t EventType) String() string {
	switch t {
	case EventBackPressed:
		return "back_pressed"
	case EventConfirmPressed:
		return "confirm_pressed"
	case EventEncoderPressed:
		return "encoder_pressed"
	case EventEncoderRotated:
		return "encoder_rotated"
	default:
		return "none"
	}
}

// Event 一次输入事件
type Event struct {
	Type      EventType
	Value     int16 // 旋转事件的增量（正=顺时针），按键事件为 0
	Timestamp time.Time
}
