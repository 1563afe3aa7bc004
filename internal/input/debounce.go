package input

// DebounceCount 连续采样到按下电平多少次后确认按下
const DebounceCount = 2

// KeyState 按键状态机状态
type KeyState uint8

const (
	KeyIdle      KeyState = iota // 空闲
	KeyDebounce                  // 消抖中
	KeyPressed                   // 已按下（等待释放）
)

// LevelFunc 读取按键当前电平，true 表示按下
type LevelFunc func() bool

// Key 单个按键的消抖状态机。
// 每个扫描周期调用一次 Sample：空闲 -> 消抖 -> 按下，
// 确认按下的那一次采样返回按下事件；按住不重复触发，释放立即回到空闲。
type Key struct {
	name  string
	level LevelFunc
	event EventType

	state KeyState
	count uint8
}

func NewKey(name string, level LevelFunc, event EventType) *Key {
	return &Key{
		name:  name,
		level: level,
		event: event,
	}
}

func (k *Key) Name() string { return k.name }

// Sample 采样一次，跨过消抖阈值时返回 (事件类型, true)
func (k *Key) Sample() (EventType, bool) {
	pressed := k.level()

	switch k.state {
	case KeyIdle:
		if pressed {
			k.state = KeyDebounce
			k.count = 1
		}

	case KeyDebounce:
		if pressed {
			k.count++
			if k.count >= DebounceCount {
				k.state = KeyPressed
				return k.event, true
			}
		} else {
			// 毛刺：回到空闲
			k.state = KeyIdle
			k.count = 0
		}

	case KeyPressed:
		if !pressed {
			k.state = KeyIdle
			k.count = 0
		}

	default:
		k.state = KeyIdle
		k.count = 0
	}

	return EventNone, false
}
