package drag

import (
	"image"

	"github.com/ChaseCarlson/ClockWidget/internal/entity"
)

// Window 拖拽需要的最小窗口能力：读/写左上角位置 (屏幕坐标)
type Window interface {
	Position() image.Point
	SetPosition(p image.Point)
}

// State 拖拽状态机只有两个状态
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller 把鼠标移动翻译成窗口移动。
// 状态由 session 决定：session != nil 即 Dragging
type Controller struct {
	win     Window
	session *entity.DragSession
}

func NewController(win Window) *Controller {
	return &Controller{win: win}
}

func (c *Controller) State() State {
	if c.session != nil {
		return Dragging
	}
	return Idle
}

// Session 返回当前拖拽快照，Idle 时为 nil
func (c *Controller) Session() *entity.DragSession {
	return c.session
}

// Press 按下：记录鼠标和窗口的起点。重复按下会重新开始一次拖拽
func (c *Controller) Press(cursor image.Point) {
	c.session = &entity.DragSession{
		CursorStart: cursor,
		WindowStart: c.win.Position(),
	}
}

// Move 拖拽中：新位置 = 起始窗口位置 + (当前鼠标 - 起始鼠标)。
// 返回是否真的移动了窗口
func (c *Controller) Move(cursor image.Point) bool {
	if c.session == nil {
		return false
	}
	delta := cursor.Sub(c.session.CursorStart)
	c.win.SetPosition(c.session.WindowStart.Add(delta))
	return true
}

// Release 松开：丢弃快照，窗口停在原地直到下次按下
func (c *Controller) Release() {
	c.session = nil
}
