package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMicroSentinelEncoding(t *testing.T) {
	assert.Equal(t, 0, NewMicro(1).Value())
	assert.Equal(t, -1, NewMicro(2).Value())
	assert.Equal(t, -2, NewMicro(3).Value())
	assert.Equal(t, -4, NewMicro(4).Value())
}

func TestSide(t *testing.T) {
	assert.Equal(t, 21, New(1).Side())
	assert.Equal(t, 177, New(40).Side())
	assert.Equal(t, 11, NewMicro(1).Side())
	assert.Equal(t, 17, NewMicro(4).Side())
}

func TestString(t *testing.T) {
	assert.Equal(t, "7", New(7).String())
	assert.Equal(t, "M3", NewMicro(3).String())
}

func TestNextRegular(t *testing.T) {
	v, ok := New(40).Next()
	assert.False(t, ok)
	assert.Equal(t, Version{}, v)

	v, ok = New(1).Next()
	assert.True(t, ok)
	assert.Equal(t, New(2), v)
}

func TestNextMicro(t *testing.T) {
	v, ok := NewMicro(4).Next()
	assert.False(t, ok)
	assert.Equal(t, Version{}, v)

	v, ok = NewMicro(2).Next()
	assert.True(t, ok)
	assert.Equal(t, NewMicro(3), v)
}

func TestOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { New(0) })
	assert.Panics(t, func() { New(41) })
	assert.Panics(t, func() { NewMicro(0) })
	assert.Panics(t, func() { NewMicro(5) })
}
