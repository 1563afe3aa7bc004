//go:build preview

package display

import (
	"fmt"
	"image"
	"strings"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/SandOcean-ovo/Table-Clock/internal/input"
)

type sdlDisplay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	title    string
	width    int
	height   int
	scale    int // 窗口放大倍数（128x64 面板直接显示太小）

	backBuffer  *image.RGBA
	inputEvents []input.Event
}

// NewSDL2 创建 SDL2 显示
func NewSDL2(title string, width, height, scale int) Display {
	if scale <= 0 {
		scale = 4
	}
	return &sdlDisplay{
		title:  title,
		width:  width,
		height: height,
		scale:  scale,
	}
}

func (d *sdlDisplay) Init() error {
	// 初始化 SDL
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL 初始化失败: %v", err)
	}

	// 创建窗口（整数倍放大）
	winTitle := d.title
	if strings.TrimSpace(winTitle) == "" {
		winTitle = "TableClock Preview"
	}
	window, err := sdl.CreateWindow(
		winTitle,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(d.width*d.scale),
		int32(d.height*d.scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("创建窗口失败: %v", err)
	}
	d.window = window

	// 创建渲染器
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("创建渲染器失败: %v", err)
	}
	d.renderer = renderer

	// 创建纹理（逻辑分辨率，由渲染器负责放大）
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(d.width),
		int32(d.height),
	)
	if err != nil {
		return fmt.Errorf("创建纹理失败: %v", err)
	}
	d.texture = texture

	// 创建离屏缓冲区
	d.backBuffer = image.NewRGBA(image.Rect(0, 0, d.width, d.height))

	return nil
}

func (d *sdlDisplay) Close() error {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (d *sdlDisplay) GetWidth() int {
	return d.width
}

func (d *sdlDisplay) GetHeight() int {
	return d.height
}

func (d *sdlDisplay) GetBackBuffer() *image.RGBA {
	return d.backBuffer
}

func (d *sdlDisplay) Update() error {
	// 将 backBuffer 复制到纹理（使用 unsafe.Pointer）
	pitch := d.backBuffer.Stride
	rect := &sdl.Rect{X: 0, Y: 0, W: int32(d.width), H: int32(d.height)}

	if err := d.texture.Update(rect, unsafe.Pointer(&d.backBuffer.Pix[0]), pitch); err != nil {
		return fmt.Errorf("更新纹理失败: %v", err)
	}

	// 渲染纹理到窗口
	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()

	return nil
}

func (d *sdlDisplay) PollEvents() (shouldQuit bool) {
	// 清空上一帧的输入事件
	d.inputEvents = nil

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if e.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			d.handleKey(e.Keysym.Sym)
		}
	}
	return false
}

// handleKey 键盘映射：B=返回 回车=确认 空格=编码器按键 上下=旋转
func (d *sdlDisplay) handleKey(sym sdl.Keycode) {
	now := time.Now()
	push := func(t input.EventType, v int16) {
		d.inputEvents = append(d.inputEvents, input.Event{Type: t, Value: v, Timestamp: now})
	}

	switch sym {
	case sdl.K_b, sdl.K_BACKSPACE:
		push(input.EventBackPressed, 0)
	case sdl.K_RETURN:
		push(input.EventConfirmPressed, 0)
	case sdl.K_SPACE:
		push(input.EventEncoderPressed, 0)
	case sdl.K_UP, sdl.K_RIGHT:
		push(input.EventEncoderRotated, 1)
	case sdl.K_DOWN, sdl.K_LEFT:
		push(input.EventEncoderRotated, -1)
	}
}

// GetInputEvents 获取本帧键盘映射出的输入事件
func (d *sdlDisplay) GetInputEvents() []input.Event {
	return d.inputEvents
}
