package game

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/ChaseCarlson/ClockWidget/config"
	"github.com/ChaseCarlson/ClockWidget/internal/clock"
	"github.com/ChaseCarlson/ClockWidget/internal/dial"
	"github.com/ChaseCarlson/ClockWidget/internal/entity"
	"github.com/ChaseCarlson/ClockWidget/internal/event"
	"github.com/ChaseCarlson/ClockWidget/internal/monitor"
	"github.com/ChaseCarlson/ClockWidget/internal/render"
	"github.com/ChaseCarlson/ClockWidget/internal/widget"
)

// Manager 实现 ebiten.Game，只做平台适配：
// Update 把输入翻译成事件交给 widget，Draw 在 widget 标记为脏时才画
type Manager struct {
	style  dial.Style
	clock  clock.Clock
	window entity.WindowState

	widget   *widget.Widget
	source   *event.Source
	handlers event.Table
	renderer *render.Renderer
}

// New 组装各个部件。style 解析失败时退回默认样式
func New(cfg *config.Config, clk clock.Clock, logger *log.Logger) *Manager {
	style, err := cfg.DialStyle()
	if err != nil {
		logger.Warn("bad style, using defaults", "err", err)
		style = dial.DefaultStyle()
	}

	// 注意：不能把 nil 的 *monitor.Sampler 塞进接口
	var sampler widget.Sampler
	if cfg.ShowMonitor {
		sampler = monitor.NewSampler()
	}

	g := &Manager{
		style:    style,
		clock:    clk,
		window:   cfg.WindowState(),
		source:   event.NewSource(cfg.Tick),
		renderer: render.New(cfg.Window.Alpha, cfg.Style.NumeralScale),
	}
	g.widget = widget.New(widget.Options{
		Window:    ebitenWindow{},
		SetTPS:    ebiten.SetTPS,
		IdleTPS:   cfg.IdleTPS,
		ActiveTPS: cfg.ActiveTPS,
		Sampler:   sampler,
		Logger:    logger,
	})
	g.handlers = g.widget.Table()
	return g
}

// Init 把窗口状态应用到 ebiten 窗口上
func (g *Manager) Init() {
	ebiten.SetWindowDecorated(false) // 无边框
	ebiten.SetScreenTransparent(true)
	ebiten.SetWindowFloating(g.window.Topmost)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true) // 失去焦点也要继续走时
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowTitle("Clock")

	ebiten.SetWindowSize(g.window.Size.X, g.window.Size.Y)
	ebiten.SetWindowPosition(g.window.Position.X, g.window.Position.Y)
}

func (g *Manager) Update() error {
	for _, ev := range g.source.Poll(ebitenInput{}, g.clock.Now()) {
		err := g.handlers.Dispatch(ev)
		if errors.Is(err, widget.ErrClosed) {
			// Esc 和点窗口关闭一样正常退出
			return ebiten.Termination
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Manager) Draw(screen *ebiten.Image) {
	if !g.widget.Dirty() {
		return
	}
	screen.Clear()
	// 圆心和半径跟着实际绘制的客户区走
	size := screen.Bounds().Size()
	frame := dial.Compose(g.style, entity.SampleOf(g.clock.Now()), size.X, size.Y)
	g.renderer.Paint(screen, frame, g.widget.Caption())
	g.widget.Painted()
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 画布大小固定为窗口大小
	return g.window.Size.X, g.window.Size.Y
}

// ebitenWindow 用 ebiten 的窗口位置实现 drag.Window
type ebitenWindow struct{}

func (ebitenWindow) Position() image.Point {
	x, y := ebiten.WindowPosition()
	return image.Pt(x, y)
}

func (ebitenWindow) SetPosition(p image.Point) {
	ebiten.SetWindowPosition(p.X, p.Y)
}

// ebitenInput 用 ebiten 的输入状态实现 event.Input
type ebitenInput struct{}

func (ebitenInput) LeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Cursor ebiten 只给窗口内坐标，加上窗口位置得到屏幕绝对坐标
func (ebitenInput) Cursor() image.Point {
	wx, wy := ebiten.WindowPosition()
	mx, my := ebiten.CursorPosition()
	return image.Pt(wx+mx, wy+my)
}

func (ebitenInput) ClosePressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}
