package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/version"
)

func TestDataCapacityV1L(t *testing.T) {
	bits, err := DataCapacityBits(version.New(1), ecclevel.Low)
	require.NoError(t, err)
	assert.Equal(t, 19*8, bits)
}

func TestDataCapacityV40L(t *testing.T) {
	bits, err := DataCapacityBits(version.New(40), ecclevel.Low)
	require.NoError(t, err)
	// 7089 numeric digits is the documented v40-L ceiling (spec.md §8):
	// 4 mode + 14 count + 2363*10 payload bits = 23648 = 2956 codewords.
	assert.Equal(t, 2956*8, bits)
}

func TestDataCapacityMicroNibbleTruncation(t *testing.T) {
	// M1 and M3 lose the low 4 bits of their last byte-counted codeword.
	m1, err := DataCapacityBits(version.NewMicro(1), ecclevel.Low)
	require.NoError(t, err)
	assert.Equal(t, 20, m1)

	m3, err := DataCapacityBits(version.NewMicro(3), ecclevel.Low)
	require.NoError(t, err)
	assert.Equal(t, 84, m3)

	// M2 and M4 end on a byte boundary and keep the full codeword count.
	m2, err := DataCapacityBits(version.NewMicro(2), ecclevel.Low)
	require.NoError(t, err)
	assert.Equal(t, 5*8, m2)
}

func TestMicroLevelValid(t *testing.T) {
	assert.True(t, MicroLevelValid(1, ecclevel.Low))
	assert.False(t, MicroLevelValid(1, ecclevel.Medium))
	assert.True(t, MicroLevelValid(4, ecclevel.Quartile))
	assert.False(t, MicroLevelValid(3, ecclevel.Quartile))
	assert.False(t, MicroLevelValid(2, ecclevel.High))
}

func TestAlignmentPositionsV1Empty(t *testing.T) {
	assert.Empty(t, AlignmentPositions(version.New(1)))
}

func TestAlignmentPositionsV2(t *testing.T) {
	assert.Equal(t, []int{6, 18}, AlignmentPositions(version.New(2)))
}

func TestAlignmentPositionsMicroEmpty(t *testing.T) {
	assert.Empty(t, AlignmentPositions(version.NewMicro(4)))
}

func TestFormatInfoBitsFitsIn15Bits(t *testing.T) {
	bits := FormatInfoBits(ecclevel.Quartile, 5)
	assert.Less(t, bits, uint32(1<<15))
}

func TestMicroFormatInfoBits(t *testing.T) {
	bits, err := MicroFormatInfoBits(2, ecclevel.Medium, 1)
	require.NoError(t, err)
	assert.Less(t, bits, uint32(1<<15))

	_, err = MicroFormatInfoBits(3, ecclevel.Quartile, 0)
	assert.Error(t, err)
}

func TestVersionInfoBitsFitsIn18Bits(t *testing.T) {
	bits := VersionInfoBits(version.New(7))
	assert.Less(t, bits, uint32(1<<18))
}

func TestRemainderBitsTable(t *testing.T) {
	assert.Equal(t, 0, RemainderBits(version.New(1)))
	assert.Equal(t, 7, RemainderBits(version.New(2)))
	assert.Equal(t, 3, RemainderBits(version.New(14)))
	assert.Equal(t, 4, RemainderBits(version.New(21)))
	assert.Equal(t, 0, RemainderBits(version.NewMicro(4)))
}

func TestBlocksForTwoGroups(t *testing.T) {
	// Version 5-Q has two block-length groups in the real table.
	blocks, err := BlocksFor(version.New(5), ecclevel.Quartile)
	require.NoError(t, err)
	require.Len(t, blocks.Groups, 2)
	total := 0
	for _, g := range blocks.Groups {
		total += g.BlockCount
	}
	assert.Equal(t, 4, total)
}
