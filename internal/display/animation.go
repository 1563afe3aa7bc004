package display

import "time"

// Anim 单值线性插值动画。
// Start 后每帧 Advance 推进，到达时长时精确吸附到终点值并回到空闲。
type Anim struct {
	from     float64
	to       float64
	value    float64
	start    time.Time
	duration time.Duration
	active   bool
}

// Start 启动动画
func (a *Anim) Start(from, to float64, duration time.Duration, now time.Time) {
	a.from = from
	a.to = to
	a.value = from
	a.start = now
	a.duration = duration
	a.active = duration > 0
	if !a.active {
		a.value = to
	}
}

// Advance 推进动画，本次调用完成（精确到达终点）时返回 true
func (a *Anim) Advance(now time.Time) bool {
	if !a.active {
		return false
	}
	elapsed := now.Sub(a.start)
	if elapsed >= a.duration {
		a.value = a.to // 精确吸附，杜绝浮点残差
		a.active = false
		return true
	}
	p := float64(elapsed) / float64(a.duration)
	a.value = a.from + (a.to-a.from)*p
	return false
}

// Value 当前插值
func (a *Anim) Value() float64 { return a.value }

// Active 是否在播放中
func (a *Anim) Active() bool { return a.active }

// Progress 线性进度 [0,1]
func (a *Anim) Progress(now time.Time) float64 {
	if !a.active {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// easeInOutQuad 二次缓入缓出（缩放动画用）
func easeInOutQuad(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// easeOutQuad 二次缓出（滚动动画用）
func easeOutQuad(p float64) float64 {
	q := 1 - p
	return 1 - q*q
}

// lerp 线性插值
func lerp(from, to, p float64) float64 {
	return from + (to-from)*p
}
