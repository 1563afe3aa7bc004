package display

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontID 界面用到的字体槽位
type FontID int

const (
	FontClock  FontID = iota // 主页大号时间
	FontLarge                // 滑动选择器聚焦值
	FontMedium               // 滑动选择器小号值
	FontMenu                 // 菜单项
	FontSmall                // 标签/提示
)

var (
	fontManager     *FontManager
	fontManagerOnce sync.Once
)

// FontManager 字体管理器：解析内置 TTF 并缓存各槽位的 Face
type FontManager struct {
	regular *truetype.Font
	bold    *truetype.Font
	mono    *truetype.Font

	mu    sync.Mutex
	faces map[FontID]font.Face
}

// GetFontManager 获取字体管理器单例
func GetFontManager() *FontManager {
	fontManagerOnce.Do(func() {
		fontManager = &FontManager{
			faces: make(map[FontID]font.Face),
		}
		fontManager.loadFonts()
	})
	return fontManager
}

// loadFonts 加载字体
func (fm *FontManager) loadFonts() {
	ok := true
	if f, err := truetype.Parse(goregular.TTF); err == nil {
		fm.regular = f
	} else {
		ok = false
		fmt.Printf("❌ Go Regular 字体解析失败: %v\n", err)
	}
	if f, err := truetype.Parse(gobold.TTF); err == nil {
		fm.bold = f
	} else {
		ok = false
		fmt.Printf("❌ Go Bold 字体解析失败: %v\n", err)
	}
	if f, err := truetype.Parse(gomono.TTF); err == nil {
		fm.mono = f
	} else {
		ok = false
		fmt.Printf("❌ Go Mono 字体解析失败: %v\n", err)
	}
	if ok {
		fmt.Println("✅ 内置字体加载成功！")
	}
}

// GetFace 获取指定槽位的 Face（带缓存）
func (fm *FontManager) GetFace(id FontID) font.Face {
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if f, ok := fm.faces[id]; ok {
		return f
	}

	var tf *truetype.Font
	var size float64
	switch id {
	case FontClock:
		tf, size = fm.bold, 22
	case FontLarge:
		tf, size = fm.bold, 18
	case FontMedium:
		tf, size = fm.mono, 11
	case FontMenu:
		tf, size = fm.regular, 11
	case FontSmall:
		tf, size = fm.regular, 9
	default:
		tf, size = fm.regular, 11
	}
	if tf == nil {
		return nil
	}

	face := truetype.NewFace(tf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	fm.faces[id] = face
	return face
}
