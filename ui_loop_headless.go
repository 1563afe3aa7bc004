//go:build !device_display && !preview

package main

import (
	"os"

	"github.com/SandOcean-ovo/Table-Clock/config"
	"github.com/SandOcean-ovo/Table-Clock/internal/clock"
	"github.com/SandOcean-ovo/Table-Clock/internal/input"
	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
	"github.com/SandOcean-ovo/Table-Clock/internal/settings"
)

func uiLoop(_ bool, _ *config.Config, _ clock.RTC, _ clock.Sensor,
	_ *settings.Manager, _ *input.Queue, quit <-chan os.Signal) {
	<-quit
	logger.Info("正在关闭服务...")
}
