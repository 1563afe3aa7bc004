package version

// AppName 应用名称（开机画面/关于页使用）
const AppName = "TableClock"

// Version 固件版本号
// 可在编译时覆盖：
//
//	go build -ldflags "-X 'github.com/SandOcean-ovo/Table-Clock/internal/version.Version=1.1.0'"
var Version = "1.0.0"

// Copyright 关于页版权信息
const Copyright = "(c) 2025 SandOcean"
