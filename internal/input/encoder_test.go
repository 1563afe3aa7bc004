package input

import "testing"

func TestEncoder_BasicDelta(t *testing.T) {
	var counter uint16
	e := NewEncoder(func() uint16 { return counter })
	e.Reset()

	if _, ok := e.Sample(); ok {
		t.Error("计数未变化不应产生事件")
	}

	counter = 4
	delta, ok := e.Sample()
	if !ok || delta != 4 {
		t.Errorf("delta = %d ok=%v, want 4", delta, ok)
	}

	counter = 1
	delta, ok = e.Sample()
	if !ok || delta != -3 {
		t.Errorf("delta = %d ok=%v, want -3", delta, ok)
	}
}

func TestEncoder_WrapAroundForward(t *testing.T) {
	counter := uint16(0xFFFE)
	e := NewEncoder(func() uint16 { return counter })
	e.Reset()

	// 0xFFFE -> 0x0002：越过 0 正转 4 步
	counter = 0x0002
	delta, ok := e.Sample()
	if !ok || delta != 4 {
		t.Errorf("正向回绕 delta = %d ok=%v, want 4", delta, ok)
	}
}

func TestEncoder_WrapAroundBackward(t *testing.T) {
	counter := uint16(0x0001)
	e := NewEncoder(func() uint16 { return counter })
	e.Reset()

	// 0x0001 -> 0xFFFF：越过 0 反转 2 步
	counter = 0xFFFF
	delta, ok := e.Sample()
	if !ok || delta != -2 {
		t.Errorf("反向回绕 delta = %d ok=%v, want -2", delta, ok)
	}
}

func TestEncoder_DeltaConsumedOnce(t *testing.T) {
	counter := uint16(0)
	e := NewEncoder(func() uint16 { return counter })
	e.Reset()

	counter = 7
	if delta, ok := e.Sample(); !ok || delta != 7 {
		t.Fatalf("首次采样 delta = %d ok=%v", delta, ok)
	}
	// 同一计数再次采样不应重复产生增量
	if _, ok := e.Sample(); ok {
		t.Error("增量不应被重复消费")
	}
}

func TestEncoder_NilCounter(t *testing.T) {
	e := NewEncoder(nil)
	e.Reset()
	if _, ok := e.Sample(); ok {
		t.Error("无计数源时不应产生事件")
	}
}
