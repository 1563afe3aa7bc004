//go:build (linux && device_display) || preview

package main

import (
	"flag"
	"runtime"
)

// Display 版本：支持屏幕/UI（Linux 设备用 FB；macOS 预览用 -tags preview）。
func main() {
	defaultDisplay := runtime.GOOS == "linux"
	enableDisplay := flag.Bool("display", defaultDisplay, "启用屏幕交互系统（macOS 需用 -tags preview 编译）")
	flag.Parse()

	// SDL 在 macOS 必须占用主线程：如果启用 display，就锁定主线程
	if *enableDisplay && runtime.GOOS == "darwin" {
		runtime.LockOSThread()
	}

	runCore(*enableDisplay)
}
