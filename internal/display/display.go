package display

import (
	"image"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
)

// Display 显示接口
type Display interface {
	// Init 初始化显示
	Init() error

	// Close 关闭显示
	Close() error

	// GetWidth 获取宽度
	GetWidth() int

	// GetHeight 获取高度
	GetHeight() int

	// GetBackBuffer 获取后缓冲区 (用于绘图)
	GetBackBuffer() *image.RGBA

	// Update 更新显示（将后缓冲区刷新到屏幕）
	Update() error

	// PollEvents 轮询事件（返回是否需要退出）
	PollEvents() (shouldQuit bool)

	// GetInputEvents 获取本帧产生的输入事件（预览模式的键盘映射；设备端走 evdev 扫描）
	GetInputEvents() []input.Event
}
