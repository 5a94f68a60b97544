package ecclevel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBitsReordering(t *testing.T) {
	assert.Equal(t, uint8(1), Low.FormatBits())
	assert.Equal(t, uint8(0), Medium.FormatBits())
	assert.Equal(t, uint8(3), Quartile.FormatBits())
	assert.Equal(t, uint8(2), High.FormatBits())
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("Q")
	assert.True(t, ok)
	assert.Equal(t, Quartile, l)

	_, ok = ParseLevel("X")
	assert.False(t, ok)
}

func TestStringRoundTrip(t *testing.T) {
	for _, l := range []Level{Low, Medium, Quartile, High} {
		parsed, ok := ParseLevel(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, parsed)
	}
}
