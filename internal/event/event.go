package event

import (
	"image"
	"time"
)

// Kind 事件类型
type Kind int

const (
	PointerDown Kind = iota
	PointerMove
	PointerUp
	Tick
	Close
)

var kindNames = map[Kind]string{
	PointerDown: "pointer-down",
	PointerMove: "pointer-move",
	PointerUp:   "pointer-up",
	Tick:        "tick",
	Close:       "close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event 一个输入或定时器事件。Cursor 是鼠标的屏幕绝对坐标
type Event struct {
	Kind   Kind
	Cursor image.Point
	At     time.Time
}

// Handler 处理某一类事件。返回非 nil 会结束事件循环
type Handler func(Event) error

// Table 按事件类型分发，没有登记的类型直接忽略
type Table map[Kind]Handler

func (t Table) Dispatch(ev Event) error {
	h, ok := t[ev.Kind]
	if !ok || h == nil {
		return nil
	}
	return h(ev)
}
