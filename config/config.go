package config

import (
	"image"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ChaseCarlson/ClockWidget/internal/dial"
	"github.com/ChaseCarlson/ClockWidget/internal/entity"
)

// DefaultFile 工作目录下的可选配置文件，不存在就全部用默认值
const DefaultFile = "clock.yaml"

// Window 窗口相关
type Window struct {
	X       int   `yaml:"x"`
	Y       int   `yaml:"y"`
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Alpha   uint8 `yaml:"alpha"`   // 整体透明度 0-255
	Topmost bool  `yaml:"topmost"` // 始终置顶
}

// Hand 一根指针
type Hand struct {
	Length float64 `yaml:"length"` // 占半径的比例
	Width  float64 `yaml:"width"`
	Color  string  `yaml:"color"` // "#rrggbb"
}

// Style 表盘外观
type Style struct {
	GradientFrom  string  `yaml:"gradient_from"`
	GradientTo    string  `yaml:"gradient_to"`
	NumeralRadius float64 `yaml:"numeral_radius"`
	NumeralColor  string  `yaml:"numeral_color"`
	NumeralScale  float64 `yaml:"numeral_scale"` // 数字字体放大倍数
	Hour          Hand    `yaml:"hour"`
	Minute        Hand    `yaml:"minute"`
	Second        Hand    `yaml:"second"`
}

// Config 结构体：对应 clock.yaml 的内容
type Config struct {
	Window      Window        `yaml:"window"`
	Style       Style         `yaml:"style"`
	Tick        time.Duration `yaml:"tick"`         // 重绘间隔
	IdleTPS     int           `yaml:"idle_tps"`     // 没人拖拽时的轮询频率
	ActiveTPS   int           `yaml:"active_tps"`   // 拖拽时的轮询频率
	ShowMonitor bool          `yaml:"show_monitor"` // 是否在表盘下方显示 CPU/内存
	LogLevel    string        `yaml:"log_level"`
}

// NewDefault 生成一份默认配置，数值和最初的桌面时钟一致
func NewDefault() *Config {
	return &Config{
		Window: Window{
			X: 100, Y: 100,
			Width: 400, Height: 400,
			Alpha:   150,
			Topmost: true,
		},
		Style: Style{
			GradientFrom:  "#404040",
			GradientTo:    "#808080",
			NumeralRadius: 0.87,
			NumeralColor:  "#ffffff",
			NumeralScale:  2,
			Hour:          Hand{Length: 0.5, Width: 8, Color: "#ff0000"},
			Minute:        Hand{Length: 0.75, Width: 6, Color: "#00ff00"},
			Second:        Hand{Length: 0.9, Width: 4, Color: "#0000ff"},
		},
		Tick:        time.Second,
		IdleTPS:     5,
		ActiveTPS:   60,
		ShowMonitor: false,
		LogLevel:    "warn",
	}
}

// Load 从硬盘读取配置。文件不存在不算错，直接返回默认配置；
// 文件里没写的字段保持默认值
func Load(filename string) (*Config, error) {
	cfg := NewDefault()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", filename)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	return cfg, nil
}

// Validate 检查取值范围和颜色格式
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %s", c.Tick)
	}
	if c.IdleTPS <= 0 || c.ActiveTPS <= 0 {
		return errors.Errorf("tps must be positive, got idle=%d active=%d", c.IdleTPS, c.ActiveTPS)
	}
	if c.Style.NumeralScale <= 0 {
		return errors.Errorf("numeral_scale must be positive, got %v", c.Style.NumeralScale)
	}

	ratios := []struct {
		name string
		v    float64
	}{
		{"numeral_radius", c.Style.NumeralRadius},
		{"hour.length", c.Style.Hour.Length},
		{"minute.length", c.Style.Minute.Length},
		{"second.length", c.Style.Second.Length},
	}
	for _, r := range ratios {
		if r.v <= 0 || r.v > 1 {
			return errors.Errorf("%s must be in (0,1], got %v", r.name, r.v)
		}
	}

	style, err := c.DialStyle()
	if err != nil {
		return err
	}
	if err := validateHands(style); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// validateHands 时针最粗、秒针最细，三根指针颜色互不相同
func validateHands(s dial.Style) error {
	hands := []struct {
		name string
		h    dial.Hand
	}{
		{"hour", s.Hour},
		{"minute", s.Minute},
		{"second", s.Second},
	}
	for _, h := range hands {
		if h.h.Width <= 0 {
			return errors.Errorf("%s.width must be positive, got %v", h.name, h.h.Width)
		}
	}
	if !(s.Hour.Width > s.Minute.Width && s.Minute.Width > s.Second.Width) {
		return errors.Errorf("hand widths must decrease hour > minute > second, got %v/%v/%v",
			s.Hour.Width, s.Minute.Width, s.Second.Width)
	}
	for i := range hands {
		for j := i + 1; j < len(hands); j++ {
			if hands[i].h.Color == hands[j].h.Color {
				return errors.Errorf("%s.color and %s.color must differ", hands[i].name, hands[j].name)
			}
		}
	}
	return nil
}

// WindowState 启动时要应用到窗口上的属性
func (c *Config) WindowState() entity.WindowState {
	return entity.WindowState{
		Position: image.Pt(c.Window.X, c.Window.Y),
		Size:     image.Pt(c.Window.Width, c.Window.Height),
		Alpha:    c.Window.Alpha,
		Topmost:  c.Window.Topmost,
	}
}

// DialStyle 把字符串颜色解析成绘制用的样式
func (c *Config) DialStyle() (dial.Style, error) {
	var s dial.Style
	colors := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"gradient_from", c.Style.GradientFrom, &s.GradientFrom},
		{"gradient_to", c.Style.GradientTo, &s.GradientTo},
		{"numeral_color", c.Style.NumeralColor, &s.NumeralColor},
		{"hour.color", c.Style.Hour.Color, &s.Hour.Color},
		{"minute.color", c.Style.Minute.Color, &s.Minute.Color},
		{"second.color", c.Style.Second.Color, &s.Second.Color},
	}
	for _, col := range colors {
		parsed, err := parseColor(col.hex)
		if err != nil {
			return dial.Style{}, errors.Wrap(err, col.name)
		}
		*col.dst = parsed
	}

	s.NumeralRadius = c.Style.NumeralRadius
	s.Hour.Length, s.Hour.Width = c.Style.Hour.Length, c.Style.Hour.Width
	s.Minute.Length, s.Minute.Width = c.Style.Minute.Length, c.Style.Minute.Width
	s.Second.Length, s.Second.Width = c.Style.Second.Length, c.Style.Second.Width
	return s, nil
}

// Level 日志级别，写错了就按 warn 处理
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

func parseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}
