package event

import (
	"image"
	"time"
)

// Input 每帧轮询到的输入状态
type Input interface {
	LeftPressed() bool
	// Cursor 鼠标的屏幕绝对坐标 (窗口位置 + 窗口内坐标)
	Cursor() image.Point
	ClosePressed() bool
}

// Source 把逐帧轮询的输入状态翻译成边沿事件，并按固定间隔产生 Tick
type Source struct {
	interval time.Duration
	pressed  bool
	cursor   image.Point
	lastTick time.Time
	ticked   bool
}

func NewSource(interval time.Duration) *Source {
	if interval <= 0 {
		interval = time.Second
	}
	return &Source{interval: interval}
}

// Poll 对比上一帧的状态，返回这一帧发生的事件 (按发生顺序)
func (s *Source) Poll(in Input, now time.Time) []Event {
	var evs []Event

	if in.ClosePressed() {
		evs = append(evs, Event{Kind: Close, At: now})
	}

	cur := in.Cursor()
	pressed := in.LeftPressed()
	switch {
	case pressed && !s.pressed:
		evs = append(evs, Event{Kind: PointerDown, Cursor: cur, At: now})
	case pressed && cur != s.cursor:
		evs = append(evs, Event{Kind: PointerMove, Cursor: cur, At: now})
	case !pressed && s.pressed:
		evs = append(evs, Event{Kind: PointerUp, Cursor: cur, At: now})
	}
	s.pressed = pressed
	s.cursor = cur

	// 每个间隔的边界最多一次 Tick；第一次轮询一定触发
	slot := now.Truncate(s.interval)
	if !s.ticked || !slot.Equal(s.lastTick) {
		s.lastTick = slot
		s.ticked = true
		evs = append(evs, Event{Kind: Tick, Cursor: cur, At: now})
	}

	return evs
}
