package widget

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/ChaseCarlson/ClockWidget/internal/drag"
	"github.com/ChaseCarlson/ClockWidget/internal/monitor"
)

// ErrClosed Close 事件结束事件循环时返回
var ErrClosed = errors.New("widget closed")

// Sampler 状态行的数据来源
type Sampler interface {
	Sample() monitor.Stats
}

// Options 组装 Widget 需要的部件
type Options struct {
	Window    drag.Window
	SetTPS    func(int) // 切换轮询频率
	IdleTPS   int
	ActiveTPS int
	Sampler   Sampler // nil 表示不显示状态行
	Logger    *log.Logger
}

// Widget 时钟挂件的交互状态：拖拽、是否需要重绘、状态行、轮询频率。
// 不依赖任何窗口系统，平台层只负责喂事件和按 Dirty 重绘
type Widget struct {
	drag      *drag.Controller
	setTPS    func(int)
	idleTPS   int
	activeTPS int
	sampler   Sampler
	logger    *log.Logger

	dirty   bool
	caption string
}

func New(opts Options) *Widget {
	w := &Widget{
		drag:      drag.NewController(opts.Window),
		setTPS:    opts.SetTPS,
		idleTPS:   opts.IdleTPS,
		activeTPS: opts.ActiveTPS,
		sampler:   opts.Sampler,
		logger:    opts.Logger,
		dirty:     true, // 第一帧一定要画
	}
	if w.setTPS == nil {
		w.setTPS = func(int) {}
	}
	if w.logger == nil {
		w.logger = log.Default()
	}
	w.setTPS(w.idleTPS)
	return w
}

// Dirty 下一次绘制是否需要重画
func (w *Widget) Dirty() bool { return w.dirty }

// Painted 绘制完成后调用
func (w *Widget) Painted() { w.dirty = false }

// Caption 状态行文字，没开监控时为空
func (w *Widget) Caption() string { return w.caption }

func (w *Widget) State() drag.State { return w.drag.State() }
