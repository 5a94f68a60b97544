package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrencode/version"
)

func TestMakeNumericThreeDigitGroup(t *testing.T) {
	seg, err := MakeNumeric([]rune("123"))
	require.NoError(t, err)
	assert.Equal(t, 10, seg.Len())
	assert.Equal(t, 3, seg.CharCount())
}

func TestMakeNumericTailWidths(t *testing.T) {
	seg, err := MakeNumeric([]rune("12"))
	require.NoError(t, err)
	assert.Equal(t, 7, seg.Len())

	seg, err = MakeNumeric([]rune("1"))
	require.NoError(t, err)
	assert.Equal(t, 4, seg.Len())
}

func TestMakeNumericEmpty(t *testing.T) {
	seg, err := MakeNumeric(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, seg.Len())
}

func TestMakeNumericRejectsNonDigit(t *testing.T) {
	_, err := MakeNumeric([]rune("12a"))
	assert.Error(t, err)
}

func TestMakeAlphanumericPairAndTail(t *testing.T) {
	seg, err := MakeAlphanumeric([]rune("AB"))
	require.NoError(t, err)
	assert.Equal(t, 11, seg.Len())

	seg, err = MakeAlphanumeric([]rune("A"))
	require.NoError(t, err)
	assert.Equal(t, 6, seg.Len())
}

func TestMakeBytesRaw(t *testing.T) {
	seg := MakeBytesRaw([]byte("hi"), "utf-8")
	assert.Equal(t, 16, seg.Len())
	assert.Equal(t, 2, seg.CharCount())
	assert.Equal(t, "utf-8", seg.Encoding())
}

func TestMergeSameModeAndEncoding(t *testing.T) {
	a := MakeBytesRaw([]byte("ab"), "utf-8")
	b := MakeBytesRaw([]byte("cd"), "utf-8")
	merged := Merge([]Segment{a, b})
	require.Len(t, merged, 1)
	assert.Equal(t, 4, merged[0].CharCount())
}

func TestMergeDifferentEncodingNotMerged(t *testing.T) {
	a := MakeBytesRaw([]byte("ab"), "utf-8")
	b := MakeBytesRaw([]byte("cd"), "shift-jis")
	merged := Merge([]Segment{a, b})
	assert.Len(t, merged, 2)
}

func TestBuildAutoNumeric(t *testing.T) {
	segs, err := Build("01234567", BuildOptions{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, ModeNumeric, segs[0].Mode())
}

func TestBuildAutoAlphanumeric(t *testing.T) {
	segs, err := Build("HELLO WORLD", BuildOptions{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, ModeAlphanumeric, segs[0].Mode())
}

func TestBuildAutoByteFallback(t *testing.T) {
	segs, err := Build("hello world!", BuildOptions{})
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, ModeByte, segs[0].Mode())
}

func TestBuildForcedNumericRejectsNonDigit(t *testing.T) {
	_, err := Build("12a", BuildOptions{ForceMode: true, Mode: ModeNumeric})
	assert.Error(t, err)
}

func TestBuildEmptyContent(t *testing.T) {
	segs, err := Build("", BuildOptions{})
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestTotalBitsRegular(t *testing.T) {
	segs, err := Build("HELLO WORLD", BuildOptions{})
	require.NoError(t, err)
	bits, err := TotalBits(segs, version.New(1))
	require.NoError(t, err)
	// 4-bit mode + 9-bit count (v1-9 alphanumeric) + payload + 4-bit terminator
	assert.Equal(t, 4+9+segs[0].Len()+4, bits)
}

func TestTotalBitsOverflowsCountField(t *testing.T) {
	// M1 numeric count field is 3 bits (max 7 digits); 8 digits overflows.
	seg, err := MakeNumeric([]rune("12345678"))
	require.NoError(t, err)
	_, err = TotalBits([]Segment{seg}, version.NewMicro(1))
	assert.Error(t, err)
}

func TestIndicatorBitsMicroM1HasNoWidth(t *testing.T) {
	_, width, err := ModeNumeric.IndicatorBits(version.NewMicro(1))
	require.NoError(t, err)
	assert.Equal(t, 0, width)

	_, _, err = ModeAlphanumeric.IndicatorBits(version.NewMicro(1))
	assert.Error(t, err)
}

func TestKanjiRangeCheck(t *testing.T) {
	// Shift-JIS encoding of "漢字" falls in the first kanji range.
	seg, err := MakeKanji("漢字")
	require.NoError(t, err)
	assert.Equal(t, ModeKanji, seg.Mode())
	assert.Equal(t, 2, seg.CharCount())
	assert.Equal(t, 26, seg.Len())
}

func TestHanziRangeCheck(t *testing.T) {
	seg, err := MakeHanzi("汉字")
	require.NoError(t, err)
	assert.Equal(t, ModeHanzi, seg.Mode())
	assert.Equal(t, 2, seg.CharCount())
}

func TestMakeBytesAutoPrefersISO8859_1(t *testing.T) {
	seg, err := MakeBytesAuto("Hello World", "")
	require.NoError(t, err)
	assert.Equal(t, "iso-8859-1", seg.Encoding())
}

func TestMakeBytesAutoFallsBackToUTF8(t *testing.T) {
	seg, err := MakeBytesAuto("emoji: \U0001F600", "")
	require.NoError(t, err)
	assert.Equal(t, "utf-8", seg.Encoding())
}

func TestMakeBytesAutoRequestedEncodingInvalid(t *testing.T) {
	_, err := MakeBytesAuto("hi", "not-a-real-encoding")
	assert.Error(t, err)
}
