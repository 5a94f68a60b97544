package qrencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrencode/segment"
	"github.com/qrforge/qrencode/version"
)

func TestEncodeBasicRegular(t *testing.T) {
	sym, err := Encode("HELLO WORLD", Options{Level: Low})
	require.NoError(t, err)
	assert.False(t, sym.Micro())
	assert.Equal(t, "1", sym.Version().String())
	assert.Equal(t, 21, sym.Side())
}

func TestEncodeBoostErrorRaisesLevel(t *testing.T) {
	sym, err := Encode("1", Options{Level: Low, BoostError: true})
	require.NoError(t, err)
	// "1" needs 22 bits; v1-H holds 72, so boosting reaches High.
	assert.Equal(t, High, sym.ErrorLevel())
}

func TestEncodeMicro(t *testing.T) {
	sym, err := Encode("123", Options{Level: Low, Micro: true})
	require.NoError(t, err)
	assert.True(t, sym.Micro())
}

func TestEncodeEmptyContentRejected(t *testing.T) {
	_, err := Encode("", Options{Level: Low})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEncodeForcedVersionTooSmall(t *testing.T) {
	v := version.New(1)
	_, err := Encode("this text is far too long to fit inside a version 1 symbol at high error correction, guaranteed", Options{Level: High, Version: &v})
	assert.Error(t, err)
}

func TestEncodeForcedMask(t *testing.T) {
	forced := Mask(2)
	sym, err := Encode("HELLO", Options{Level: Medium, Mask: &forced})
	require.NoError(t, err)
	assert.Equal(t, Mask(2), sym.Mask())
}

func TestEncodeInvalidForcedMaskForMicro(t *testing.T) {
	forced := Mask(7)
	v := version.NewMicro(1)
	_, err := Encode("1", Options{Level: Low, Micro: true, Version: &v, Mask: &forced})
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestEncodeSegmentsMergesAdjacentSameMode(t *testing.T) {
	a, err := segment.MakeAlphanumeric([]rune("HELLO"))
	require.NoError(t, err)
	b, err := segment.MakeAlphanumeric([]rune("WORLD"))
	require.NoError(t, err)

	sym, err := EncodeSegments([]Segment{a, b}, Options{Level: Low})
	require.NoError(t, err)
	require.Len(t, sym.Segments(), 1)
	assert.Equal(t, 10, sym.Segments()[0].CharCount())
}

func TestEncodeGetModuleOutOfBounds(t *testing.T) {
	sym, err := Encode("HELLO", Options{Level: Low})
	require.NoError(t, err)
	assert.False(t, sym.GetModule(-1, -1))
	assert.False(t, sym.GetModule(sym.Side(), sym.Side()))
}
