//go:build linux && !preview

package input

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/SandOcean-ovo/Table-Clock/internal/logger"
)

// inputEvent Linux input_event 结构
// struct input_event { struct timeval time; __u16 type; __u16 code; __s32 value; };
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// evdev 事件类型（linux/input-event-codes.h）
const (
	evKey uint16 = 0x01
	evRel uint16 = 0x02
)

// EvdevSource 把若干 evdev 设备汇聚成按键电平 + 编码器计数。
// 单个 epoll goroutine 负责读取全部设备：
// EV_KEY 维护电平位，EV_REL 累加到 16 位计数器，供 Scanner 轮询采样。
type EvdevSource struct {
	files   []*os.File
	keymap  map[uint16]int // KEY_* 扫描码 -> 按键槽位
	relCode uint16

	levels  [8]atomic.Bool
	counter atomic.Uint32
	closed  atomic.Bool
}

// OpenEvdevSource 打开 evdev 设备并启动读取 goroutine。
// keymap 把扫描码映射到按键槽位（0..7），relCode 为编码器的 REL_* 轴。
func OpenEvdevSource(paths []string, keymap map[uint16]int, relCode uint16) (*EvdevSource, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("未配置输入设备")
	}

	s := &EvdevSource{
		keymap:  keymap,
		relCode: relCode,
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("打开输入设备 %s 失败: %w", p, err)
		}
		s.files = append(s.files, f)
	}

	go s.run()
	return s, nil
}

// run 单 goroutine epoll 读取全部设备
func (s *EvdevSource) run() {
	epfd, err := unix.EpollCreate1(0)
	if err != nil {
		logger.Error("epoll_create1 失败: %v", err)
		return
	}
	defer unix.Close(epfd)

	fdToFile := make(map[int]*os.File)
	for _, f := range s.files {
		fd := int(f.Fd())
		fdToFile[fd] = f
		ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
			logger.Error("epoll_ctl_add fd=%d 失败: %v", fd, err)
			return
		}
	}

	const maxEvents = 32
	epollEvents := make([]unix.EpollEvent, maxEvents)
	evSize := binary.Size(inputEvent{})
	buf := make([]byte, evSize)
	reader := bytes.NewReader(buf)

	for {
		n, err := unix.EpollWait(epfd, epollEvents, -1)
		if err != nil {
			if err == syscall.EINTR {
				continue
			}
			if !s.closed.Load() {
				logger.Error("epoll_wait 失败: %v", err)
			}
			return
		}

		for i := 0; i < n; i++ {
			fd := int(epollEvents[i].Fd)
			f := fdToFile[fd]

			if epollEvents[i].Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
				if !s.closed.Load() {
					logger.Error("输入设备异常断开: %s", f.Name())
				}
				return
			}

			if _, err := f.Read(buf); err != nil {
				if !s.closed.Load() {
					logger.Error("读取 %s 失败: %v", f.Name(), err)
				}
				return
			}

			reader.Reset(buf)
			var ev inputEvent
			if err := binary.Read(reader, binary.LittleEndian, &ev); err != nil {
				continue // 跳过残缺事件
			}
			s.handle(ev)
		}
	}
}

func (s *EvdevSource) handle(ev inputEvent) {
	switch ev.Type {
	case evKey:
		slot, ok := s.keymap[ev.Code]
		if !ok || slot < 0 || slot >= len(s.levels) {
			return
		}
		// value: 1=按下 0=释放 2=自动重复（按住，电平仍为按下）
		s.levels[slot].Store(ev.Value != 0)

	case evRel:
		if ev.Code == s.relCode {
			s.counter.Add(uint32(ev.Value))
		}
	}
}

// KeyLevel 返回指定槽位的电平读取函数
func (s *EvdevSource) KeyLevel(slot int) LevelFunc {
	return func() bool {
		if slot < 0 || slot >= len(s.levels) {
			return false
		}
		return s.levels[slot].Load()
	}
}

// Counter 返回编码器计数读取函数（16 位自由回绕）
func (s *EvdevSource) Counter() CounterFunc {
	return func() uint16 {
		return uint16(s.counter.Load())
	}
}

// Close 关闭全部设备，读取 goroutine 随之退出
func (s *EvdevSource) Close() error {
	s.closed.Store(true)
	for _, f := range s.files {
		_ = f.Close()
	}
	return nil
}
