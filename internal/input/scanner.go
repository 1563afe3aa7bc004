package input

import (
	"time"

	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// DefaultScanPeriod 默认扫描周期（单片机上对应按键扫描定时器中断周期）
const DefaultScanPeriod = 5 * time.Millisecond

// Scanner 周期性扫描按键和编码器，把事件推入队列
type Scanner struct {
	queue   *Queue
	keys    []*Key
	encoder *Encoder
	period  time.Duration
	nowFn   func() time.Time

	stop chan struct{}
	done chan struct{}
}

func NewScanner(queue *Queue, keys []*Key, encoder *Encoder, period time.Duration) *Scanner {
	if period <= 0 {
		period = DefaultScanPeriod
	}
	return &Scanner{
		queue:   queue,
		keys:    keys,
		encoder: encoder,
		period:  period,
		nowFn:   time.Now,
	}
}

// ScanOnce 执行一个扫描周期：先按键后编码器
func (s *Scanner) ScanOnce() {
	now := s.nowFn()

	for _, k := range s.keys {
		if ev, ok := k.Sample(); ok {
			if !s.queue.Push(Event{Type: ev, Timestamp: now}) {
				logger.Warn("输入队列已满，丢弃按键事件: %s", k.Name())
			}
		}
	}

	if s.encoder != nil {
		if delta, ok := s.encoder.Sample(); ok {
			if !s.queue.Push(Event{Type: EventEncoderRotated, Value: delta, Timestamp: now}) {
				logger.Warn("输入队列已满，丢弃编码器事件: delta=%d", delta)
			}
		}
	}
}

// Start 启动扫描 goroutine
func (s *Scanner) Start() {
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	if s.encoder != nil {
		s.encoder.Reset()
	}

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.period)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				s.ScanOnce()
			}
		}
	}()
}

// Stop 停止扫描并等待退出
func (s *Scanner) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}
