package dial

import (
	"math"

	"github.com/ChaseCarlson/ClockWidget/internal/entity"
)

// 角度一律以度为单位，从 12 点方向顺时针计
const (
	degPerHour   = 30.0
	degPerMinute = 6.0
	degPerSecond = 6.0
)

// Point 浮点屏幕坐标 (画布内，左上角为原点)
type Point struct {
	X, Y float64
}

// Angles 三根指针的角度
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// HourAngle (h mod 12 + m/60) * 30°
func HourAngle(hour, minute int) float64 {
	return normalize((float64(hour%12) + float64(minute)/60) * degPerHour)
}

func MinuteAngle(minute int) float64 {
	return normalize(float64(minute) * degPerMinute)
}

func SecondAngle(second int) float64 {
	return normalize(float64(second) * degPerSecond)
}

// AnglesAt 计算某一时刻三根指针的角度
func AnglesAt(t entity.TimeSample) Angles {
	return Angles{
		Hour:   HourAngle(t.Hour, t.Minute),
		Minute: MinuteAngle(t.Minute),
		Second: SecondAngle(t.Second),
	}
}

// NumeralAngle 数字 i (1..12) 所在的角度
func NumeralAngle(i int) float64 {
	return normalize(float64(i) * degPerHour)
}

// Dial 表盘的圆心和半径，由客户区大小决定
type Dial struct {
	Center Point
	Radius float64
}

// New 圆心取客户区中点 (整数除法)，半径取半宽和半高中较小的那个
func New(width, height int) Dial {
	cx, cy := width/2, height/2
	return Dial{
		Center: Point{X: float64(cx), Y: float64(cy)},
		Radius: float64(min(cx, cy)),
	}
}

// PointAt 角度 deg、距圆心 ratio*半径 处的点。
// x = cx + r·sin θ, y = cy - r·cos θ
func (d Dial) PointAt(deg, ratio float64) Point {
	rad := deg * math.Pi / 180
	r := d.Radius * ratio
	return Point{
		X: d.Center.X + r*math.Sin(rad),
		Y: d.Center.Y - r*math.Cos(rad),
	}
}
