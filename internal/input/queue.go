package input

import "sync"

// QueueSize 事件队列容量
const QueueSize = 32

// Queue 输入事件 FIFO 循环队列。
// 扫描 goroutine 写、UI 循环读；互斥锁充当单片机上关中断的临界区。
// 队列满时 Push 丢弃新事件并返回 false，生产者永不阻塞。
type Queue struct {
	mu    sync.Mutex
	buf   [QueueSize]Event
	head  int // 写指针
	tail  int // 读指针
	count int
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push 推入一个事件，队列满返回 false
func (q *Queue) Push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count >= QueueSize {
		return false
	}
	q.buf[q.head] = ev
	q.head = (q.head + 1) % QueueSize
	q.count++
	return true
}

// Pop 弹出最早的事件，队列空返回 false
func (q *Queue) Pop() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return Event{}, false
	}
	ev := q.buf[q.tail]
	q.tail = (q.tail + 1) % QueueSize
	q.count--
	return ev, true
}

// Count 当前未处理事件数量
func (q *Queue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Clear 清空队列（熄屏唤醒时丢弃旧事件）
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = [QueueSize]Event{}
	q.head = 0
	q.tail = 0
	q.count = 0
}
