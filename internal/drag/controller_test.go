package drag

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	pos   image.Point
	size  image.Point
	moves int
}

func (w *fakeWindow) Position() image.Point { return w.pos }

func (w *fakeWindow) SetPosition(p image.Point) {
	w.pos = p
	w.moves++
}

func newFake() *fakeWindow {
	return &fakeWindow{pos: image.Pt(100, 100), size: image.Pt(400, 400)}
}

func TestPressCapturesSession(t *testing.T) {
	win := newFake()
	c := NewController(win)
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Session())

	c.Press(image.Pt(150, 120))

	require.Equal(t, Dragging, c.State())
	require.NotNil(t, c.Session())
	assert.Equal(t, image.Pt(150, 120), c.Session().CursorStart)
	assert.Equal(t, image.Pt(100, 100), c.Session().WindowStart)
}

func TestMoveFollowsCursorDelta(t *testing.T) {
	tests := []struct {
		name   string
		start  image.Point
		cursor image.Point
		want   image.Point
	}{
		{"right and down", image.Pt(150, 120), image.Pt(180, 170), image.Pt(130, 150)},
		{"left and up", image.Pt(150, 120), image.Pt(40, 20), image.Pt(-10, 0)},
		{"no motion", image.Pt(150, 120), image.Pt(150, 120), image.Pt(100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			win := newFake()
			c := NewController(win)
			c.Press(tt.start)

			assert.True(t, c.Move(tt.cursor))
			assert.Equal(t, tt.want, win.pos)
			assert.Equal(t, image.Pt(400, 400), win.size)
		})
	}
}

func TestRepeatedMovesUseSameOrigin(t *testing.T) {
	win := newFake()
	c := NewController(win)
	c.Press(image.Pt(0, 0))

	c.Move(image.Pt(10, 10))
	c.Move(image.Pt(25, 5))

	// 以按下时的窗口位置为基准，而不是上一次移动后的位置
	assert.Equal(t, image.Pt(125, 105), win.pos)
}

func TestMoveWhileIdleIsNoop(t *testing.T) {
	win := newFake()
	c := NewController(win)

	assert.False(t, c.Move(image.Pt(500, 500)))
	assert.Equal(t, image.Pt(100, 100), win.pos)
	assert.Zero(t, win.moves)
}

func TestReleaseFreezesPosition(t *testing.T) {
	win := newFake()
	c := NewController(win)
	c.Press(image.Pt(10, 10))
	c.Move(image.Pt(60, 30))
	c.Release()

	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Session())

	c.Move(image.Pt(300, 300))
	assert.Equal(t, image.Pt(150, 120), win.pos)
}

func TestPressAgainStartsFreshSession(t *testing.T) {
	win := newFake()
	c := NewController(win)
	c.Press(image.Pt(10, 10))
	c.Move(image.Pt(20, 20))
	c.Release()

	c.Press(image.Pt(500, 500))
	assert.Equal(t, image.Pt(110, 110), c.Session().WindowStart)

	c.Move(image.Pt(505, 495))
	assert.Equal(t, image.Pt(115, 105), win.pos)
}
