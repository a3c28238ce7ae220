package widget

import (
	"github.com/ChaseCarlson/ClockWidget/internal/event"
)

// Table 每种事件一个处理函数
func (w *Widget) Table() event.Table {
	return event.Table{
		event.PointerDown: w.onPointerDown,
		event.PointerMove: w.onPointerMove,
		event.PointerUp:   w.onPointerUp,
		event.Tick:        w.onTick,
		event.Close:       w.onClose,
	}
}

// 拖拽时开高频率保证跟手，松开后降回省电模式
func (w *Widget) onPointerDown(ev event.Event) error {
	w.drag.Press(ev.Cursor)
	w.setTPS(w.activeTPS)
	s := w.drag.Session()
	w.logger.Debug("drag start", "cursor", s.CursorStart, "window", s.WindowStart)
	return nil
}

func (w *Widget) onPointerMove(ev event.Event) error {
	if w.drag.Move(ev.Cursor) {
		w.dirty = true
	}
	return nil
}

func (w *Widget) onPointerUp(ev event.Event) error {
	w.drag.Release()
	w.setTPS(w.idleTPS)
	w.logger.Debug("drag end", "cursor", ev.Cursor)
	return nil
}

func (w *Widget) onTick(ev event.Event) error {
	if w.sampler != nil {
		w.caption = w.sampler.Sample().String()
	}
	w.dirty = true
	w.logger.Debug("tick", "at", ev.At.Format("15:04:05"))
	return nil
}

func (w *Widget) onClose(event.Event) error {
	return ErrClosed
}
