package clock

import "time"

// Clock 时间来源。渲染只通过它读时间，方便测试时固定时刻
type Clock interface {
	Now() time.Time
}

// System 返回读取本地系统时间的 Clock
func System() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Fixed 返回永远停在 t 的 Clock
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
