package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// Store 设置持久化后端（设备上对应 AT24C32 EEPROM）
type Store interface {
	Read() ([]byte, error)
	Write(b []byte) error
}

// FileStore 基于文件的 Store 实现
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

func (f *FileStore) Write(b []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.Path, b, 0644)
}

// Manager 设置管理器：持有当前设置并负责加载/保存
type Manager struct {
	mu    sync.Mutex
	store Store
	cur   Settings

	// LoadFailed 初次加载失败标记（主页面会弹窗提示一次）
	LoadFailed bool
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		cur:   Default(),
	}
}

// Load 从 Store 加载设置。数据缺失/损坏时回退默认值并尝试重写，
// 同时置位 LoadFailed 供 UI 提示。
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, err := m.store.Read()
	if err == nil {
		if s, uerr := Unmarshal(b); uerr == nil {
			m.cur = s
			m.LoadFailed = false
			return nil
		} else {
			err = uerr
		}
	}

	logger.Warn("设置加载失败，回退默认值: %v", err)
	m.cur = Default()
	m.LoadFailed = true
	if werr := m.saveLocked(); werr != nil {
		logger.Error("默认设置写入失败: %v", werr)
	}
	return err
}

// Save 保存当前设置（写入后读回比对，模拟 EEPROM 写校验）
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

func (m *Manager) saveLocked() error {
	b := m.cur.Marshal()
	if err := m.store.Write(b); err != nil {
		return fmt.Errorf("写入设置失败: %w", err)
	}
	rb, err := m.store.Read()
	if err != nil {
		return fmt.Errorf("设置写后读回失败: %w", err)
	}
	if !bytes.Equal(b, rb) {
		return fmt.Errorf("设置写入校验失败：读回数据不一致")
	}
	return nil
}

// Get 获取当前设置的副本
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

// Update 修改并立即保存
func (m *Manager) Update(fn func(*Settings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.cur)
	return m.saveLocked()
}
