//go:build !preview

package display

// NewDisplay 创建显示实例 (Production - Framebuffer)
func NewDisplay(title string, width, height, scale int) (Display, error) {
	_ = title
	_ = scale // framebuffer 路径由 Update 按面板分辨率缩放
	disp := &fbDisplay{
		width:  width,
		height: height,
	}
	if err := disp.Init(); err != nil {
		return nil, err
	}
	return disp, nil
}
