package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultDeviceName 默认设备名称（会写入 config.json 的 device.name）
// 可在编译时覆盖：
//
//	go build -ldflags "-X 'github.com/SandOcean-ovo/Table-Clock/config.DefaultDeviceName=TableClock Pro'"
var DefaultDeviceName = "TableClock"

// Config 应用配置
type Config struct {
	Device   DeviceConfig   `json:"device"`
	Display  DisplayConfig  `json:"display"`
	Input    InputConfig    `json:"input"`
	Settings SettingsConfig `json:"settings"`
}

// DeviceConfig 设备配置
type DeviceConfig struct {
	Name string `json:"name"`
}

// DisplayConfig 显示配置（128x64 单色屏）
type DisplayConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// PreviewScale 预览窗口放大倍数（仅 -tags preview 生效）
	PreviewScale int `json:"preview_scale"`
}

// InputConfig 输入配置
type InputConfig struct {
	// Devices evdev 设备节点（按键 + 编码器），如 /dev/input/event0
	Devices []string `json:"devices"`
	// ScanPeriodMS 按键/编码器扫描周期（毫秒）
	ScanPeriodMS int `json:"scan_period_ms"`
	// 三个实体键的 KEY_* 扫描码（linux/input-event-codes.h）
	BackKeyCode    uint16 `json:"back_key_code"`
	ConfirmKeyCode uint16 `json:"confirm_key_code"`
	EncoderKeyCode uint16 `json:"encoder_key_code"`
	// EncoderRelCode 编码器旋转的 REL_* 轴（默认 REL_DIAL=7）
	EncoderRelCode uint16 `json:"encoder_rel_code"`
}

// SettingsConfig 设置持久化配置
type SettingsConfig struct {
	// Path 设置记录文件路径（代替单片机上的 EEPROM）
	Path string `json:"path"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			Name: DefaultDeviceName,
		},
		Display: DisplayConfig{
			Width:        128,
			Height:       64,
			PreviewScale: 4,
		},
		Input: InputConfig{
			Devices:        []string{"/dev/input/event0"},
			ScanPeriodMS:   5,
			BackKeyCode:    158, // KEY_BACK
			ConfirmKeyCode: 28,  // KEY_ENTER
			EncoderKeyCode: 352, // KEY_OK
			EncoderRelCode: 7,   // REL_DIAL
		},
		Settings: SettingsConfig{
			Path: defaultSettingsPath(),
		},
	}
}

func defaultConfigPath() string {
	// Linux 设备侧保持 /etc；本地开发默认落到当前工作目录，方便调试/可见
	if runtime.GOOS == "linux" {
		return "/etc/tableclock/config.json"
	}
	if wd, err := os.Getwd(); err == nil && strings.TrimSpace(wd) != "" {
		return filepath.Join(wd, "config.json")
	}
	return filepath.Join(os.TempDir(), "tableclock", "config.json")
}

func defaultSettingsPath() string {
	if runtime.GOOS == "linux" {
		return "/var/lib/tableclock/settings.bin"
	}
	if wd, err := os.Getwd(); err == nil && strings.TrimSpace(wd) != "" {
		return filepath.Join(wd, "data", "settings.bin")
	}
	return filepath.Join(os.TempDir(), "tableclock", "settings.bin")
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	configPath := os.Getenv("TABLECLOCK_CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	return configPath
}

// LoadConfig 加载配置
func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	// 如果配置文件不存在，写入默认配置
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		dir := filepath.Dir(configPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 兼容补全：旧配置缺失字段时只在零值场景下补默认，不覆盖用户显式配置
	def := DefaultConfig()
	changed := false
	if cfg.Display.Width <= 0 || cfg.Display.Height <= 0 {
		cfg.Display.Width = def.Display.Width
		cfg.Display.Height = def.Display.Height
		changed = true
	}
	if cfg.Display.PreviewScale <= 0 {
		cfg.Display.PreviewScale = def.Display.PreviewScale
		changed = true
	}
	if cfg.Input.ScanPeriodMS <= 0 {
		cfg.Input.ScanPeriodMS = def.Input.ScanPeriodMS
		changed = true
	}
	if cfg.Input.BackKeyCode == 0 && cfg.Input.ConfirmKeyCode == 0 && cfg.Input.EncoderKeyCode == 0 {
		cfg.Input.BackKeyCode = def.Input.BackKeyCode
		cfg.Input.ConfirmKeyCode = def.Input.ConfirmKeyCode
		cfg.Input.EncoderKeyCode = def.Input.EncoderKeyCode
		cfg.Input.EncoderRelCode = def.Input.EncoderRelCode
		changed = true
	}
	if strings.TrimSpace(cfg.Settings.Path) == "" {
		cfg.Settings.Path = def.Settings.Path
		changed = true
	}
	if strings.TrimSpace(cfg.Device.Name) == "" {
		cfg.Device.Name = def.Device.Name
		changed = true
	}

	// 补齐过默认值则回写，避免每次启动重复补齐
	if changed {
		_ = cfg.Save()
	}

	return &cfg, nil
}

// Save 保存配置
func (c *Config) Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("显示分辨率无效: %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Input.ScanPeriodMS <= 0 {
		return fmt.Errorf("扫描周期无效: %d ms", c.Input.ScanPeriodMS)
	}
	if strings.TrimSpace(c.Settings.Path) == "" {
		return fmt.Errorf("设置文件路径不能为空")
	}
	return nil
}
