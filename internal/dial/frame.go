package dial

import (
	"image"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ChaseCarlson/ClockWidget/internal/entity"
)

// Hand 一根指针的样式
type Hand struct {
	Length float64 // 占半径的比例
	Width  float64 // 线宽 (像素)
	Color  color.RGBA
}

// Style 表盘外观。默认值照搬最初版本的常量
type Style struct {
	GradientFrom  color.RGBA // 最左列
	GradientTo    color.RGBA // 最右列
	NumeralRadius float64    // 数字离圆心的比例
	NumeralColor  color.RGBA
	Hour          Hand
	Minute        Hand
	Second        Hand
}

func DefaultStyle() Style {
	return Style{
		GradientFrom:  color.RGBA{0x40, 0x40, 0x40, 0xff},
		GradientTo:    color.RGBA{0x80, 0x80, 0x80, 0xff},
		NumeralRadius: 0.87,
		NumeralColor:  color.RGBA{255, 255, 255, 255},
		Hour:          Hand{Length: 0.5, Width: 8, Color: color.RGBA{255, 0, 0, 255}},
		Minute:        Hand{Length: 0.75, Width: 6, Color: color.RGBA{0, 255, 0, 255}},
		Second:        Hand{Length: 0.9, Width: 4, Color: color.RGBA{0, 0, 255, 255}},
	}
}

// Label 一个要居中绘制的文字，At.X 是水平中心，At.Y 是基线
type Label struct {
	Text  string
	At    Point
	Color color.RGBA
}

// Segment 从 From 到 To 的一条线段
type Segment struct {
	From, To Point
	Width    float64
	Color    color.RGBA
}

// Frame 一帧的完整绘制清单。只依赖时间和尺寸，同样的输入得到同样的帧
type Frame struct {
	Size     image.Point
	Dial     Dial
	Gradient []color.RGBA // 每一列的背景色，长度 = Size.X
	Numerals []Label      // 1..12
	Hands    []Segment    // 时、分、秒的顺序
}

// Compose 根据样式、时间和客户区大小生成一帧
func Compose(style Style, t entity.TimeSample, width, height int) Frame {
	d := New(width, height)
	f := Frame{
		Size:     image.Pt(width, height),
		Dial:     d,
		Gradient: Gradient(style.GradientFrom, style.GradientTo, width),
		Numerals: make([]Label, 0, 12),
	}

	for i := 1; i <= 12; i++ {
		f.Numerals = append(f.Numerals, Label{
			Text:  strconv.Itoa(i),
			At:    d.PointAt(NumeralAngle(i), style.NumeralRadius),
			Color: style.NumeralColor,
		})
	}

	a := AnglesAt(t)
	f.Hands = []Segment{
		handSegment(d, a.Hour, style.Hour),
		handSegment(d, a.Minute, style.Minute),
		handSegment(d, a.Second, style.Second),
	}
	return f
}

func handSegment(d Dial, deg float64, h Hand) Segment {
	return Segment{
		From:  d.Center,
		To:    d.PointAt(deg, h.Length),
		Width: h.Width,
		Color: h.Color,
	}
}

// Gradient 水平渐变：第 0 列是 from，最后一列是 to，中间按 RGB 线性插值
func Gradient(from, to color.RGBA, width int) []color.RGBA {
	if width <= 0 {
		return nil
	}
	c1 := rgb(from)
	c2 := rgb(to)

	cols := make([]color.RGBA, width)
	for x := range cols {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		r, g, b := c1.BlendRgb(c2, t).Clamped().RGB255()
		cols[x] = color.RGBA{r, g, b, 0xff}
	}
	return cols
}

func rgb(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
