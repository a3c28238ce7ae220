package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedNeverMoves(t *testing.T) {
	at := time.Date(2024, 1, 2, 6, 30, 0, 0, time.Local)
	c := Fixed(at)

	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}

func TestSystemIsLocalNow(t *testing.T) {
	before := time.Now()
	got := System().Now()

	assert.False(t, got.Before(before))
	assert.Equal(t, time.Local, got.Location())
}
