package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/mask"
	"github.com/qrforge/qrencode/version"
)

func TestNewSideMatchesVersion(t *testing.T) {
	m := New(version.New(1))
	assert.Equal(t, 21, m.Side())

	mm := New(version.NewMicro(2))
	assert.Equal(t, 13, mm.Side())
}

func TestDrawFunctionPatternsMarksFinderDark(t *testing.T) {
	m := New(version.New(1))
	m.DrawFunctionPatterns()
	assert.True(t, m.Get(0, 0))
	assert.True(t, m.Get(3, 3))
	assert.False(t, m.Get(7, 7)) // separator
}

func TestMicroHasOnlyOneFinder(t *testing.T) {
	m := New(version.NewMicro(1))
	m.DrawFunctionPatterns()
	assert.True(t, m.Get(0, 0))
	// Bottom-right corner has no finder in Micro QR.
	side := m.Side()
	assert.False(t, m.Get(side-1, side-1))
}

func TestApplyMaskTwiceIsIdentity(t *testing.T) {
	m := New(version.New(1))
	m.DrawFunctionPatterns()
	m.PlaceCodewords(make([]byte, 19))

	before := append([]bool(nil), m.modules...)
	require.NoError(t, m.ApplyMask(mask.Pattern(0)))
	require.NoError(t, m.ApplyMask(mask.Pattern(0)))
	assert.Equal(t, before, m.modules)
}

func TestDrawFormatInfoRegular(t *testing.T) {
	m := New(version.New(1))
	m.DrawFunctionPatterns()
	require.NoError(t, m.DrawFormatInfo(ecclevel.Low, mask.Pattern(0)))
	assert.True(t, m.Get(m.Side()-8, 8)) // dark module
}

func TestDrawVersionInfoOnlyForV7Plus(t *testing.T) {
	m := New(version.New(6))
	m.DrawFunctionPatterns()
	m.DrawVersionInfo()

	m7 := New(version.New(7))
	m7.DrawFunctionPatterns()
	m7.DrawVersionInfo()
	// v6 has no version block; v7 reserves one at rows 0-5, columns
	// side-11..side-9. Presence is the meaningful signal here since exact
	// bit values are covered at the tables layer.
	assert.False(t, m.isFunction[m.Side()-11])
	assert.True(t, m7.isFunction[m7.Side()-11])
}

func TestPenaltyScoreRegularIsNonNegative(t *testing.T) {
	m := New(version.New(1))
	m.DrawFunctionPatterns()
	m.PlaceCodewords(make([]byte, 19))
	require.NoError(t, m.ApplyMask(mask.Pattern(0)))
	assert.GreaterOrEqual(t, m.PenaltyScore(), int32(0))
}

func TestPenaltyScoreMicro(t *testing.T) {
	m := New(version.NewMicro(1))
	m.DrawFunctionPatterns()
	m.PlaceCodewords(make([]byte, 3))
	require.NoError(t, m.ApplyMask(mask.Pattern(0)))
	assert.GreaterOrEqual(t, m.PenaltyScore(), int32(0))
}
