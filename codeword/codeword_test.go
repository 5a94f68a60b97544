package codeword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/qrerr"
	"github.com/qrforge/qrencode/segment"
	"github.com/qrforge/qrencode/version"
)

func TestAssembleRegularProducesFullRawLength(t *testing.T) {
	segs, err := segment.Build("HELLO", segment.BuildOptions{})
	require.NoError(t, err)

	v := version.New(1)
	out, err := Assemble(segs, v, ecclevel.Medium)
	require.NoError(t, err)

	// v1-M: 1 block of 16 data + 10 ECC codewords, interleaved.
	assert.Equal(t, 26, len(out))
}

func TestAssembleOverflowsSmallVersion(t *testing.T) {
	seg := segment.MakeBytesRaw(make([]byte, 200), "utf-8")

	v := version.New(1)
	_, err := Assemble([]segment.Segment{seg}, v, ecclevel.High)
	assert.ErrorIs(t, err, qrerr.ErrDataOverflow)
}

func TestAssembleMicroM1Nibble(t *testing.T) {
	seg, err := segment.MakeNumeric([]rune("123"))
	require.NoError(t, err)

	v := version.NewMicro(1)
	out, err := Assemble([]segment.Segment{seg}, v, ecclevel.Low)
	require.NoError(t, err)
	// M1-L: 3 data + 2 ECC codewords, interleaved.
	assert.Equal(t, 5, len(out))
}
