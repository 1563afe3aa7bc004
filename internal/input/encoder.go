package input

// CounterFunc 读取编码器自由运转的 16 位计数器
type CounterFunc func() uint16

// Encoder 旋转编码器采样器。
// 计数器回绕由 uint16 减法 + int16 转换自然处理；
// 两次采样间超过 ±32767 步的累计会产生别名，实际转速远达不到。
type Encoder struct {
	counter CounterFunc
	last    uint16
}

func NewEncoder(counter CounterFunc) *Encoder {
	return &Encoder{counter: counter}
}

// Reset 以当前计数值为基准重新开始
func (e *Encoder) Reset() {
	if e.counter != nil {
		e.last = e.counter()
	}
}

// Sample 采样一次，计数有变化时返回 (增量, true)
func (e *Encoder) Sample() (int16, bool) {
	if e.counter == nil {
		return 0, false
	}
	cur := e.counter()
	delta := int16(cur - e.last)
	if delta == 0 {
		return 0, false
	}
	e.last = cur
	return delta, true
}
