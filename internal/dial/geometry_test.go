package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChaseCarlson/ClockWidget/internal/entity"
)

const eps = 1e-9

func TestAnglesAtKnownTimes(t *testing.T) {
	tests := []struct {
		name   string
		sample entity.TimeSample
		want   Angles
	}{
		{"noon", entity.TimeSample{Hour: 12}, Angles{0, 0, 0}},
		{"midnight", entity.TimeSample{Hour: 0}, Angles{0, 0, 0}},
		{"three", entity.TimeSample{Hour: 3}, Angles{90, 0, 0}},
		{"half past six", entity.TimeSample{Hour: 6, Minute: 30}, Angles{195, 180, 0}},
		{"evening", entity.TimeSample{Hour: 21, Minute: 15, Second: 45}, Angles{277.5, 90, 270}},
		{"last second", entity.TimeSample{Hour: 23, Minute: 59, Second: 59}, Angles{359.5, 354, 354}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnglesAt(tt.sample)
			assert.InDelta(t, tt.want.Hour, got.Hour, eps)
			assert.InDelta(t, tt.want.Minute, got.Minute, eps)
			assert.InDelta(t, tt.want.Second, got.Second, eps)
		})
	}
}

func TestAnglesFormulaHoldsForEveryTime(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			for s := 0; s < 60; s += 7 {
				a := AnglesAt(entity.TimeSample{Hour: h, Minute: m, Second: s})
				assert.InDelta(t, float64(h%12)*30+float64(m)*0.5, a.Hour, eps)
				assert.InDelta(t, float64(m)*6, a.Minute, eps)
				assert.InDelta(t, float64(s)*6, a.Second, eps)
				assert.Less(t, a.Hour, 360.0)
			}
		}
	}
}

func TestNewDial(t *testing.T) {
	d := New(400, 400)
	assert.Equal(t, Point{200, 200}, d.Center)
	assert.Equal(t, 200.0, d.Radius)

	d = New(301, 200)
	assert.Equal(t, Point{150, 100}, d.Center)
	assert.Equal(t, 100.0, d.Radius)
}

func TestPointAtCardinalDirections(t *testing.T) {
	d := New(400, 400)

	tests := []struct {
		deg  float64
		want Point
	}{
		{0, Point{200, 100}},
		{90, Point{300, 200}},
		{180, Point{200, 300}},
		{270, Point{100, 200}},
	}
	for _, tt := range tests {
		got := d.PointAt(tt.deg, 0.5)
		assert.InDelta(t, tt.want.X, got.X, eps, "deg %v", tt.deg)
		assert.InDelta(t, tt.want.Y, got.Y, eps, "deg %v", tt.deg)
	}
}

func TestNumeralAngles(t *testing.T) {
	for i := 1; i <= 11; i++ {
		assert.InDelta(t, float64(i)*30, NumeralAngle(i), eps)
	}
	assert.InDelta(t, 0, NumeralAngle(12), eps)
}
