package clock

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

// Sample 一次温湿度采样
type Sample struct {
	Temp    float64 // 摄氏度
	Humi    float64 // 相对湿度百分比
	HasHumi bool    // 传感器是否提供湿度（主板温度传感器没有）
}

// Sensor 温湿度传感器抽象（设备上对应 AHT20 等 I2C 传感器）
type Sensor interface {
	Read() (Sample, error)
}

// HostSensor 基于 gopsutil 的温度传感器实现：取第一个有效的主机温度传感器。
// 不提供湿度。
type HostSensor struct{}

func NewHostSensor() *HostSensor {
	return &HostSensor{}
}

func (s *HostSensor) Read() (Sample, error) {
	temps, err := host.SensorsTemperatures()
	if err != nil && len(temps) == 0 {
		return Sample{}, fmt.Errorf("读取温度传感器失败: %v", err)
	}
	for _, t := range temps {
		if t.Temperature > -40 && t.Temperature < 125 {
			return Sample{Temp: t.Temperature, HasHumi: false}, nil
		}
	}
	return Sample{}, fmt.Errorf("未找到可用的温度传感器")
}
