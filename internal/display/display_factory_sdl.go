//go:build preview

package display

// NewDisplay 创建显示实例 (Preview)
func NewDisplay(title string, width, height, scale int) (Display, error) {
	disp := NewSDL2(title, width, height, scale)
	if err := disp.Init(); err != nil {
		return nil, err
	}
	return disp, nil
}
