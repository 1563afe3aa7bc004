package settings

import (
	"fmt"
	"path/filepath"
	"testing"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	s := Settings{Language: LangChinese, AutoOff: AutoOff5Min, DSTEnabled: true}

	got, err := Unmarshal(s.Marshal())
	if err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if got != s {
		t.Errorf("往返结果不一致: got %+v, want %+v", got, s)
	}
}

func TestUnmarshal_CorruptedByte(t *testing.T) {
	b := Default().Marshal()
	b[5] ^= 0xFF // 破坏 auto_off 字节，校验和应不再匹配

	if _, err := Unmarshal(b); err == nil {
		t.Error("损坏数据应返回错误")
	}
}

func TestUnmarshal_BadMagic(t *testing.T) {
	b := Default().Marshal()
	b[0] = 0x00

	if _, err := Unmarshal(b); err == nil {
		t.Error("魔法数不匹配应返回错误")
	}
}

func TestUnmarshal_BadLength(t *testing.T) {
	if _, err := Unmarshal([]byte{1, 2, 3}); err == nil {
		t.Error("长度错误应返回错误")
	}
}

func TestManager_LoadMissingFallsBackToDefault(t *testing.T) {
	m := NewManager(NewFileStore(filepath.Join(t.TempDir(), "settings.bin")))

	if err := m.Load(); err == nil {
		t.Error("首次加载（文件不存在）应返回错误")
	}
	if !m.LoadFailed {
		t.Error("加载失败后 LoadFailed 应为 true")
	}
	if m.Get() != Default() {
		t.Errorf("加载失败后应回退默认值: %+v", m.Get())
	}

	// 回退时会重写默认值，第二次加载应成功
	m2 := NewManager(NewFileStore(filepath.Join(t.TempDir(), "settings.bin")))
	_ = m2.Load()
	if err := m2.Load(); err != nil {
		t.Errorf("默认值重写后再次加载应成功: %v", err)
	}
}

func TestManager_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.bin")

	m := NewManager(NewFileStore(path))
	if err := m.Update(func(s *Settings) {
		s.AutoOff = AutoOff1Min
		s.DSTEnabled = true
	}); err != nil {
		t.Fatalf("Update 失败: %v", err)
	}

	m2 := NewManager(NewFileStore(path))
	if err := m2.Load(); err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	got := m2.Get()
	if got.AutoOff != AutoOff1Min || !got.DSTEnabled {
		t.Errorf("重新加载结果不一致: %+v", got)
	}
}

// badStore 写入后读回返回被篡改的数据，用于验证写校验
type badStore struct {
	data []byte
}

func (s *badStore) Read() ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("empty")
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	out[len(out)-1] ^= 0xFF
	return out, nil
}

func (s *badStore) Write(b []byte) error {
	s.data = append([]byte(nil), b...)
	return nil
}

func TestManager_SaveVerifyFailure(t *testing.T) {
	m := NewManager(&badStore{})
	if err := m.Save(); err == nil {
		t.Error("读回不一致时 Save 应返回错误")
	}
}

func TestAutoOffDuration(t *testing.T) {
	if AutoOffNever.Duration() != 0 {
		t.Error("Never 应返回 0")
	}
	if AutoOff30S.Duration().Seconds() != 30 {
		t.Error("30S 选项时长错误")
	}
	if AutoOff10Min.Duration().Minutes() != 10 {
		t.Error("10Min 选项时长错误")
	}
}
