// Package codeword assembles a symbol's final codeword stream: segment
// headers and payloads packed into data codewords (spec.md §4.2-4.3), split
// into Reed-Solomon blocks, and interleaved with their error correction
// codewords. Trailing remainder bits are left to the matrix placement.
package codeword

import (
	"fmt"

	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/internal/bitbuf"
	"github.com/qrforge/qrencode/internal/rs"
	"github.com/qrforge/qrencode/internal/tables"
	"github.com/qrforge/qrencode/qrerr"
	"github.com/qrforge/qrencode/segment"
	"github.com/qrforge/qrencode/version"
)

// padBytes alternates between these two codewords (spec.md §4.3 step 4)
// once the terminator and bit-padding are in place.
var padBytes = [2]uint32{0xEC, 0x11}

// nibbleFinalMicro reports whether v's data region ends on a 4-bit
// boundary rather than a full byte -- true for M1 and M3, whose raw data
// capacities (20 and 84 bits respectively) are not multiples of 8. Their
// final codeword is a nibble: the high 4 bits of a byte, with the low 4
// bits absent from the stream entirely.
func nibbleFinalMicro(v version.Version) bool {
	return v.IsMicro() && (v.MicroNumber() == 1 || v.MicroNumber() == 3)
}

// Assemble packs segs into data codewords for v/level, computes the
// Reed-Solomon error words for each block, and interleaves data and error
// blocks column-wise. Remainder bits are not part of the result. Returns
// qrerr.ErrDataOverflow if the segments don't fit the symbol's data
// capacity.
func Assemble(segs []segment.Segment, v version.Version, level ecclevel.Level) ([]byte, error) {
	dataCapacityBits, err := tables.DataCapacityBits(v, level)
	if err != nil {
		return nil, err
	}

	var bb bitbuf.Buffer
	for _, seg := range segs {
		indVal, indWidth, err := seg.Mode().IndicatorBits(v)
		if err != nil {
			return nil, err
		}
		if indWidth > 0 {
			bb.AppendBits(indVal, indWidth)
		}

		if seg.Mode() != segment.ModeECI {
			ccWidth, err := seg.Mode().NumCharCountBits(v)
			if err != nil {
				return nil, err
			}
			if seg.CharCount() >= (1 << uint(ccWidth)) {
				return nil, fmt.Errorf("%w: %s segment of %d chars exceeds count field at %s", qrerr.ErrDataOverflow, seg.Mode(), seg.CharCount(), v)
			}
			bb.AppendBits(uint32(seg.CharCount()), ccWidth)
		}

		seg.AppendTo(&bb)
	}

	if bb.Len() > dataCapacityBits {
		return nil, fmt.Errorf("%w: %d bits needed, %d available at %s/%s", qrerr.ErrDataOverflow, bb.Len(), dataCapacityBits, v, level)
	}

	termWidth := segment.TerminatorBits(v)
	if remaining := dataCapacityBits - bb.Len(); termWidth > remaining {
		termWidth = remaining
	}
	bb.AppendBits(0, termWidth)

	for bb.Len() < dataCapacityBits && bb.Len()%8 != 0 {
		bb.AppendBit(false)
	}

	remaining := dataCapacityBits - bb.Len()
	for i := 0; remaining >= 8; i++ {
		bb.AppendBits(padBytes[i%2], 8)
		remaining -= 8
	}

	if nibbleFinalMicro(v) && remaining == 4 {
		bb.AppendBits(0, 4)
		remaining = 0
	}

	dataCodewords := bb.Bytes()

	blocks, err := tables.BlocksFor(v, level)
	if err != nil {
		return nil, err
	}

	interleaved, err := interleave(dataCodewords, blocks)
	if err != nil {
		return nil, err
	}

	// Remainder bits (spec.md §4.3 step 7) are the data modules left light
	// once the stream runs out, not extra codeword bytes, so nothing further
	// is appended to the byte stream here; see matrix.PlaceCodewords.
	return interleaved, nil
}

// interleave splits data into the RS blocks described by blocks, computes
// each block's error codewords, and reads them back out column-wise
// (shortest block's data first, then error codewords of every block in
// order), per spec.md §4.3 steps 5-6.
func interleave(data []byte, blocks tables.ECCBlocks) ([]byte, error) {
	type block struct {
		data []byte
		ecc  []byte
	}

	var all []block
	eccLen := 0
	pos := 0
	maxDataLen := 0
	for _, g := range blocks.Groups {
		if eccLen == 0 {
			eccLen = g.TotalCodewords - g.DataCodewords
		}
		for i := 0; i < g.BlockCount; i++ {
			if pos+g.DataCodewords > len(data) {
				return nil, fmt.Errorf("%w: codeword stream shorter than block layout expects", qrerr.ErrInvalidVersion)
			}
			d := data[pos : pos+g.DataCodewords]
			pos += g.DataCodewords

			divisor := rs.GeneratorPolynomial(eccLen)
			ecc := rs.ComputeRemainder(d, divisor)

			all = append(all, block{data: d, ecc: ecc})
			if len(d) > maxDataLen {
				maxDataLen = len(d)
			}
		}
	}

	result := make([]byte, 0, len(data)+eccLen*len(all))
	for i := 0; i < maxDataLen; i++ {
		for _, b := range all {
			if i < len(b.data) {
				result = append(result, b.data[i])
			}
		}
	}
	for i := 0; i < eccLen; i++ {
		for _, b := range all {
			result = append(result, b.ecc[i])
		}
	}
	return result, nil
}
