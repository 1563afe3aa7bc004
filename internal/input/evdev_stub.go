//go:build !linux || preview

package input

import "fmt"

// 非 Linux 或 preview 构建下不启用 evdev（预览模式由 SDL 键盘产生事件）
type EvdevSource struct{}

func OpenEvdevSource(paths []string, keymap map[uint16]int, relCode uint16) (*EvdevSource, error) {
	return nil, fmt.Errorf("evdev 仅在 Linux 设备构建可用")
}

func (s *EvdevSource) KeyLevel(slot int) LevelFunc { return func() bool { return false } }
func (s *EvdevSource) Counter() CounterFunc        { return func() uint16 { return 0 } }
func (s *EvdevSource) Close() error                { return nil }
