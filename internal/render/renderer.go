package render

import (
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ChaseCarlson/ClockWidget/internal/dial"
)

// 状态行在圆心下方，离圆心 35% 半径
const captionOffset = 0.35

// Renderer 把 dial.Frame 画到屏幕上。
// 先画到离屏画布，再整体按 alpha 贴到屏幕，模拟半透明窗口
type Renderer struct {
	face         font.Face
	numeralScale float64
	alpha        float32

	canvas   *ebiten.Image
	gradient *ebiten.Image
	gradCols []color.RGBA
}

func New(alpha uint8, numeralScale float64) *Renderer {
	if numeralScale <= 0 {
		numeralScale = 1
	}
	return &Renderer{
		// basicfont.Face7x13：每个字宽 7 像素，高 13 像素
		face:         basicfont.Face7x13,
		numeralScale: numeralScale,
		alpha:        float32(alpha) / 255,
	}
}

// Paint 画一整帧。caption 为空时不画状态行
func (r *Renderer) Paint(screen *ebiten.Image, f dial.Frame, caption string) {
	if f.Size.X <= 0 || f.Size.Y <= 0 {
		return
	}
	canvas := r.canvasFor(f)
	canvas.Clear()

	// 1. 背景渐变
	r.paintGradient(canvas, f)

	// 2. 数字
	for _, l := range f.Numerals {
		r.drawCentered(canvas, l.Text, l.At, l.Color, r.numeralScale)
	}

	// 3. 指针 (时、分、秒)
	for _, h := range f.Hands {
		vector.StrokeLine(canvas,
			float32(h.From.X), float32(h.From.Y),
			float32(h.To.X), float32(h.To.Y),
			float32(h.Width), h.Color, true)
	}

	// 4. 状态行
	if caption != "" {
		at := dial.Point{
			X: f.Dial.Center.X,
			Y: f.Dial.Center.Y + f.Dial.Radius*captionOffset,
		}
		r.drawCentered(canvas, caption, at, color.RGBA{255, 255, 255, 255}, 1)
	}

	// 5. 整体半透明贴到屏幕
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(r.alpha)
	screen.DrawImage(canvas, op)
}

func (r *Renderer) canvasFor(f dial.Frame) *ebiten.Image {
	if r.canvas != nil && r.canvas.Bounds().Size() == f.Size {
		return r.canvas
	}
	if r.canvas != nil {
		r.canvas.Deallocate()
	}
	r.canvas = ebiten.NewImage(f.Size.X, f.Size.Y)
	return r.canvas
}

// paintGradient 渐变只随列变化：生成一张 宽×1 的条带，再纵向拉伸
func (r *Renderer) paintGradient(dst *ebiten.Image, f dial.Frame) {
	if len(f.Gradient) == 0 {
		return
	}
	if r.gradient == nil || !slices.Equal(r.gradCols, f.Gradient) {
		if r.gradient != nil {
			r.gradient.Deallocate()
		}
		pix := make([]byte, 0, 4*len(f.Gradient))
		for _, c := range f.Gradient {
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
		r.gradient = ebiten.NewImage(len(f.Gradient), 1)
		r.gradient.WritePixels(pix)
		r.gradCols = slices.Clone(f.Gradient)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, float64(f.Size.Y))
	dst.DrawImage(r.gradient, op)
}

// drawCentered 水平居中，at.Y 为基线
func (r *Renderer) drawCentered(dst *ebiten.Image, s string, at dial.Point, clr color.Color, scale float64) {
	b := text.BoundString(r.face, s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X)-float64(b.Dx())/2, 0)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, r.face, op)
}
