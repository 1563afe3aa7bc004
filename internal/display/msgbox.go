package display

// DrawMsgBox 在屏幕中央画一个带边框的提示框（保存成功/加载失败等弹窗）
func DrawMsgBox(g *Graphics, xOff, yOff int, text string) {
	g.SetFont(FontMenu)
	tw := g.StrWidth(text)

	w := tw + 12
	h := 20
	x := xOff + (g.Width()-w)/2
	y := yOff + (g.Height()-h)/2

	// 先擦出底色再画框，避免压在页面内容上
	g.SetDrawColor(0)
	g.DrawBox(x-2, y-2, w+4, h+4)
	g.SetDrawColor(1)
	g.DrawFrame(x, y, w, h)
	g.DrawStr(x+6, y+h-6, text)
}
