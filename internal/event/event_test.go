package event

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDispatchesByKind(t *testing.T) {
	var got []Kind
	record := func(ev Event) error {
		got = append(got, ev.Kind)
		return nil
	}
	table := Table{
		PointerDown: record,
		PointerUp:   record,
	}

	require.NoError(t, table.Dispatch(Event{Kind: PointerDown}))
	require.NoError(t, table.Dispatch(Event{Kind: Tick}))
	require.NoError(t, table.Dispatch(Event{Kind: PointerUp}))

	assert.Equal(t, []Kind{PointerDown, PointerUp}, got)
}

func TestTableReturnsHandlerError(t *testing.T) {
	stop := errors.New("stop")
	table := Table{Close: func(Event) error { return stop }}

	assert.ErrorIs(t, table.Dispatch(Event{Kind: Close}), stop)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pointer-move", PointerMove.String())
	assert.Equal(t, "tick", Tick.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

type fakeInput struct {
	pressed bool
	cursor  image.Point
	closing bool
}

func (f *fakeInput) LeftPressed() bool   { return f.pressed }
func (f *fakeInput) Cursor() image.Point { return f.cursor }
func (f *fakeInput) ClosePressed() bool  { return f.closing }

func kinds(evs []Event) []Kind {
	out := make([]Kind, 0, len(evs))
	for _, ev := range evs {
		out = append(out, ev.Kind)
	}
	return out
}

func TestSourceFirstPollTicks(t *testing.T) {
	s := NewSource(time.Second)
	now := time.Date(2024, 5, 1, 12, 0, 0, 300*int(time.Millisecond), time.UTC)

	evs := s.Poll(&fakeInput{}, now)
	assert.Equal(t, []Kind{Tick}, kinds(evs))

	// 同一秒内不再触发
	evs = s.Poll(&fakeInput{}, now.Add(500*time.Millisecond))
	assert.Empty(t, evs)

	evs = s.Poll(&fakeInput{}, now.Add(800*time.Millisecond))
	assert.Equal(t, []Kind{Tick}, kinds(evs))
}

func TestSourceDragSequence(t *testing.T) {
	s := NewSource(time.Second)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := &fakeInput{cursor: image.Pt(10, 10)}
	s.Poll(in, now)

	in.pressed = true
	evs := s.Poll(in, now)
	require.Equal(t, []Kind{PointerDown}, kinds(evs))
	assert.Equal(t, image.Pt(10, 10), evs[0].Cursor)

	// 按住不动不产生移动事件
	assert.Empty(t, s.Poll(in, now))

	in.cursor = image.Pt(30, 15)
	evs = s.Poll(in, now)
	require.Equal(t, []Kind{PointerMove}, kinds(evs))
	assert.Equal(t, image.Pt(30, 15), evs[0].Cursor)

	in.pressed = false
	evs = s.Poll(in, now)
	assert.Equal(t, []Kind{PointerUp}, kinds(evs))

	// 松开后移动鼠标不产生事件
	in.cursor = image.Pt(90, 90)
	assert.Empty(t, s.Poll(in, now))
}

func TestSourceClose(t *testing.T) {
	s := NewSource(time.Second)
	now := time.Now()
	s.Poll(&fakeInput{}, now)

	evs := s.Poll(&fakeInput{closing: true}, now)
	assert.Equal(t, []Kind{Close}, kinds(evs))
}

func TestNewSourceDefaultsInterval(t *testing.T) {
	assert.Equal(t, time.Second, NewSource(0).interval)
}
