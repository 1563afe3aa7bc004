package display

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// 单色屏的两种像素
var (
	pixelOn  = color.RGBA{255, 255, 255, 255}
	pixelOff = color.RGBA{0, 0, 0, 255}
)

// Graphics 单色绘图上下文：在 RGBA 后缓冲上模拟 1bpp 面板。
// drawColor=1 画前景（亮），drawColor=0 画背景（灭）；
// 裁剪窗口 + 反色绘制用于实现菜单高亮。
type Graphics struct {
	img    *image.RGBA
	width  int
	height int

	drawColor int
	clip      image.Rectangle
	face      font.Face
}

// NewGraphics 创建绘图上下文
func NewGraphics(img *image.RGBA) *Graphics {
	b := img.Bounds()
	g := &Graphics{
		img:       img,
		width:     b.Dx(),
		height:    b.Dy(),
		drawColor: 1,
		clip:      b,
	}
	g.face = GetFontManager().GetFace(FontMenu)
	return g
}

// Width 画布宽度
func (g *Graphics) Width() int { return g.width }

// Height 画布高度
func (g *Graphics) Height() int { return g.height }

// Clear 全屏清为背景色
func (g *Graphics) Clear() {
	for i := 0; i < len(g.img.Pix); i += 4 {
		g.img.Pix[i+0] = 0
		g.img.Pix[i+1] = 0
		g.img.Pix[i+2] = 0
		g.img.Pix[i+3] = 255
	}
}

// SetDrawColor 设置画笔颜色（1=前景 0=背景）
func (g *Graphics) SetDrawColor(c int) {
	if c != 0 {
		g.drawColor = 1
	} else {
		g.drawColor = 0
	}
}

// SetClipWindow 设置裁剪窗口（含 x0,y0，不含 x1,y1）
func (g *Graphics) SetClipWindow(x0, y0, x1, y1 int) {
	g.clip = image.Rect(x0, y0, x1, y1).Intersect(g.img.Bounds())
}

// SetMaxClipWindow 恢复全屏裁剪
func (g *Graphics) SetMaxClipWindow() {
	g.clip = g.img.Bounds()
}

// SetFont 设置当前字体
func (g *Graphics) SetFont(id FontID) {
	g.face = GetFontManager().GetFace(id)
}

func (g *Graphics) pen() color.RGBA {
	if g.drawColor != 0 {
		return pixelOn
	}
	return pixelOff
}

// DrawPixel 画单个像素（受裁剪窗口约束）
func (g *Graphics) DrawPixel(x, y int) {
	if !(image.Point{X: x, Y: y}).In(g.clip) {
		return
	}
	g.img.SetRGBA(x, y, g.pen())
}

// DrawHLine 水平线
func (g *Graphics) DrawHLine(x, y, w int) {
	for i := 0; i < w; i++ {
		g.DrawPixel(x+i, y)
	}
}

// DrawVLine 垂直线
func (g *Graphics) DrawVLine(x, y, h int) {
	for i := 0; i < h; i++ {
		g.DrawPixel(x, y+i)
	}
}

// DrawBox 实心矩形
func (g *Graphics) DrawBox(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		g.DrawHLine(x, y+dy, w)
	}
}

// DrawFrame 空心矩形
func (g *Graphics) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	g.DrawHLine(x, y, w)
	g.DrawHLine(x, y+h-1, w)
	g.DrawVLine(x, y, h)
	g.DrawVLine(x+w-1, y, h)
}

// clippedDst 在 Drawer 绘制路径上套用裁剪窗口和画笔颜色
type clippedDst struct {
	g *Graphics
}

func (d *clippedDst) ColorModel() color.Model { return d.g.img.ColorModel() }
func (d *clippedDst) Bounds() image.Rectangle { return d.g.img.Bounds() }
func (d *clippedDst) At(x, y int) color.Color { return d.g.img.At(x, y) }

func (d *clippedDst) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(d.g.clip) {
		return
	}
	// 文字轮廓抗锯齿产生的半透明边缘按阈值二值化
	_, _, _, a := c.RGBA()
	if a < 0x8000 {
		return
	}
	d.g.img.SetRGBA(x, y, d.g.pen())
}

// DrawStr 以 (x, y) 为基线起点绘制字符串
func (g *Graphics) DrawStr(x, y int, s string) {
	if g.face == nil {
		return
	}
	d := font.Drawer{
		Dst:  &clippedDst{g: g},
		Src:  image.NewUniform(g.pen()),
		Face: g.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// DrawStrCentered 水平居中绘制（cx 为中心点 x 坐标）
func (g *Graphics) DrawStrCentered(cx, y int, s string) {
	g.DrawStr(cx-g.StrWidth(s)/2, y, s)
}

// StrWidth 测量字符串像素宽度
func (g *Graphics) StrWidth(s string) int {
	if g.face == nil {
		return 0
	}
	return font.MeasureString(g.face, s).Round()
}

// FontAscent 当前字体基线以上高度
func (g *Graphics) FontAscent() int {
	if g.face == nil {
		return 0
	}
	return g.face.Metrics().Ascent.Round()
}

// FontHeight 当前字体行高
func (g *Graphics) FontHeight() int {
	if g.face == nil {
		return 0
	}
	return g.face.Metrics().Height.Round()
}

// PixelOn 读取像素状态（测试用）
func (g *Graphics) PixelOn(x, y int) bool {
	c := g.img.RGBAAt(x, y)
	return c.R > 127
}
