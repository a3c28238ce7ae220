package entity

import (
	"image"
	"time"
)

// WindowState 窗口的静态属性：启动时创建，进程退出时销毁
type WindowState struct {
	Position image.Point // 左上角 (屏幕坐标)
	Size     image.Point // 宽高 (像素)，运行期间不变
	Alpha    uint8       // 整体透明度 0-255
	Topmost  bool        // 是否始终置顶
}

// DragSession 一次拖拽的快照：只在按下到松开之间存在
type DragSession struct {
	CursorStart image.Point // 按下时鼠标的屏幕位置
	WindowStart image.Point // 按下时窗口左上角
}

// TimeSample 一次绘制用到的本地时间，不缓存
type TimeSample struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

// SampleOf 从 time.Time 取出时分秒
func SampleOf(t time.Time) TimeSample {
	return TimeSample{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}
