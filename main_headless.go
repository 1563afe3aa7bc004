//go:build !device_display && !preview

package main

// Headless 版本：不编译屏幕/UI 相关代码（用于无屏调试或服务化运行）。
func main() {
	runCore(false)
}
