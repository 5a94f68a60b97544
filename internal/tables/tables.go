// Package tables holds the large read-only constant data the encoder
// pipeline consults: per-(version,level) error-correction block layout,
// alignment pattern positions, remainder bit counts, and the BCH
// format/version information codes. Nothing here is ever mutated; every
// exported value is safe to share across concurrent Encode calls.
package tables

import (
	"fmt"

	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/version"
)

// eccCodewordsPerBlock[level][regularVersion] is the number of error
// correction codewords in every block of that (version, level), ported
// verbatim from the teacher's own ECC_CODEWORDS_PER_BLOCK table (index 0
// unused/sentinel).
var eccCodewordsPerBlock = [4][41]int8{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks[level][regularVersion], likewise ported verbatim.
var numErrorCorrectionBlocks = [4][41]int8{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// remainderBits[regularVersion] -- the standard's table of leftover bits
// after the interleaved codeword stream is placed, per spec.md §4.3 step 7.
var remainderBits = [41]int{
	0, // unused index 0
	0, 7, 7, 7, 7, 7,
	0, 0, 0, 0, 0, 0, 0,
	3, 3, 3, 3, 3, 3, 3,
	4, 4, 4, 4, 4, 4, 4,
	3, 3, 3, 3, 3, 3, 3,
	0, 0, 0, 0, 0, 0,
}

// microBlock describes a Micro QR (version,level)'s single RS block.
type microBlock struct {
	totalCodewords int
	dataCodewords  int
}

// microTable[microNumber-1][level] -- blank zero value means the
// (version,level) combination is not a legal Micro QR symbol.
var microTable = [4][4]microBlock{
	// M1: no real level selection; the "detection" row is stored at Low.
	{{totalCodewords: 5, dataCodewords: 3}, {}, {}, {}},
	// M2: L, M
	{{totalCodewords: 10, dataCodewords: 5}, {totalCodewords: 10, dataCodewords: 4}, {}, {}},
	// M3: L, M
	{{totalCodewords: 17, dataCodewords: 11}, {totalCodewords: 17, dataCodewords: 9}, {}, {}},
	// M4: L, M, Q
	{{totalCodewords: 24, dataCodewords: 16}, {totalCodewords: 24, dataCodewords: 14}, {totalCodewords: 24, dataCodewords: 10}, {}},
}

// MicroLevelValid reports whether level is legal for the given micro
// version number (1..4). High is never valid for any micro version; M1
// only ever uses the Low slot (its "detection" row, see microTable).
func MicroLevelValid(microNumber int, level ecclevel.Level) bool {
	if microNumber < 1 || microNumber > 4 || level.Ordinal() > 3 {
		return false
	}
	return microTable[microNumber-1][level.Ordinal()].totalCodewords > 0
}

// ECCBlocks describes the Reed-Solomon block layout for a version/level:
// one or two groups of blocks, each group with its own block count and
// per-block total and data codeword lengths.
type ECCBlocks struct {
	Groups []ECCGroup
}

// ECCGroup is a run of blocks sharing the same total/data codeword counts.
type ECCGroup struct {
	BlockCount     int
	TotalCodewords int
	DataCodewords  int
}

// BlocksFor returns the ECC block layout for v at level. Error corresponds
// to spec.md §7's "internal invariants" class: a missing table row
// indicates a programming error in the tables, not a user input problem.
func BlocksFor(v version.Version, level ecclevel.Level) (ECCBlocks, error) {
	if v.IsMicro() {
		mb := microTable[v.MicroNumber()-1][level.Ordinal()]
		if mb.totalCodewords == 0 {
			return ECCBlocks{}, fmt.Errorf("tables: no micro ECC row for %s/%s", v, level)
		}
		return ECCBlocks{Groups: []ECCGroup{{BlockCount: 1, TotalCodewords: mb.totalCodewords, DataCodewords: mb.dataCodewords}}}, nil
	}

	ver := v.RegularNumber()
	eccLen := int(eccCodewordsPerBlock[level.Ordinal()][ver])
	numBlocks := int(numErrorCorrectionBlocks[level.Ordinal()][ver])
	if eccLen <= 0 || numBlocks <= 0 {
		return ECCBlocks{}, fmt.Errorf("tables: no ECC row for version %s/%s", v, level)
	}

	rawCodewords := rawDataModules(ver) / 8
	numShortBlocks := numBlocks - (rawCodewords % numBlocks)
	shortBlockLen := rawCodewords / numBlocks

	groups := []ECCGroup{}
	if numShortBlocks > 0 {
		groups = append(groups, ECCGroup{
			BlockCount:     numShortBlocks,
			TotalCodewords: shortBlockLen,
			DataCodewords:  shortBlockLen - eccLen,
		})
	}
	if longBlocks := numBlocks - numShortBlocks; longBlocks > 0 {
		groups = append(groups, ECCGroup{
			BlockCount:     longBlocks,
			TotalCodewords: shortBlockLen + 1,
			DataCodewords:  shortBlockLen + 1 - eccLen,
		})
	}
	return ECCBlocks{Groups: groups}, nil
}

// DataCapacityBits returns the number of data bits (after ECC/remainder are
// excluded) a symbol of this version/level can carry. M1 and M3's last data
// codeword is a 4-bit nibble rather than a full byte (their raw data
// capacities of 20 and 84 bits are not multiples of 8), so those two lose
// the low 4 bits of the final codeword's worth of space counted by
// BlocksFor's byte-granular DataCodewords.
func DataCapacityBits(v version.Version, level ecclevel.Level) (int, error) {
	blocks, err := BlocksFor(v, level)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, g := range blocks.Groups {
		total += g.BlockCount * g.DataCodewords
	}
	bits := total * 8
	if v.IsMicro() && (v.MicroNumber() == 1 || v.MicroNumber() == 3) {
		bits -= 4
	}
	return bits, nil
}

// rawDataModules returns the number of data-bearing modules (including
// remainder bits) in a regular symbol of the given version, ported
// verbatim from the teacher's getNumRawDataModules.
func rawDataModules(ver int) int {
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numAlign := ver/7 + 2
		result -= (25*numAlign-10)*numAlign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	return result
}

// RemainderBits returns the number of leftover bits appended after the
// interleaved codeword stream, per spec.md §4.3 step 7. Always 0 for
// Micro QR.
func RemainderBits(v version.Version) int {
	if v.IsMicro() {
		return 0
	}
	return remainderBits[v.RegularNumber()]
}

// AlignmentPositions returns the ascending list of alignment pattern
// center coordinates for a regular version (empty for v1 and for all Micro
// QR versions, which have none). Ported from the teacher's
// getAlignmentPatternPositions, which special-cases v32 because the
// generic spacing formula's rounding misses it by one step -- see
// spec.md §9 ambiguity (a).
func AlignmentPositions(v version.Version) []int {
	if v.IsMicro() {
		return nil
	}
	ver := v.RegularNumber()
	if ver == 1 {
		return nil
	}
	numAlign := ver/7 + 2
	var step int
	if ver == 32 {
		step = 26
	} else {
		step = (ver*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}
	size := v.Side()
	result := make([]int, numAlign)
	for i := 0; i < numAlign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numAlign-1] = 6

	out := make([]int, numAlign)
	for i, val := range result {
		out[numAlign-1-i] = val
	}
	return out
}

// FormatInfoBits computes the 15-bit BCH-coded format information word for
// a regular symbol, XORed with the standard's 0x5412 mask so it is never
// all zero.
func FormatInfoBits(level ecclevel.Level, mask uint8) uint32 {
	data := uint32(level.FormatBits())<<3 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ 0x5412
}

// microSymbolNumber enumerates the 8 legal (microVersion,level) pairs into
// the 3-bit "symbol number" field the standard's Micro format information
// packs alongside the mask, in the conventional order M1, M2-L, M2-M,
// M3-L, M3-M, M4-L, M4-M, M4-Q.
func microSymbolNumber(microNumber int, level ecclevel.Level) (uint32, error) {
	switch {
	case microNumber == 1 && level == ecclevel.Low:
		return 0, nil
	case microNumber == 2 && level == ecclevel.Low:
		return 1, nil
	case microNumber == 2 && level == ecclevel.Medium:
		return 2, nil
	case microNumber == 3 && level == ecclevel.Low:
		return 3, nil
	case microNumber == 3 && level == ecclevel.Medium:
		return 4, nil
	case microNumber == 4 && level == ecclevel.Low:
		return 5, nil
	case microNumber == 4 && level == ecclevel.Medium:
		return 6, nil
	case microNumber == 4 && level == ecclevel.Quartile:
		return 7, nil
	default:
		return 0, fmt.Errorf("tables: no micro symbol number for M%d/%s", microNumber, level)
	}
}

// MicroFormatInfoBits computes the 15-bit BCH-coded format information word
// for a Micro QR symbol, XORed with the standard's 0x4445 mask.
func MicroFormatInfoBits(microNumber int, level ecclevel.Level, mask uint8) (uint32, error) {
	symbolNumber, err := microSymbolNumber(microNumber, level)
	if err != nil {
		return 0, err
	}
	data := symbolNumber<<2 | uint32(mask)
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ 0x4445, nil
}

// VersionInfoBits computes the 18-bit BCH-coded version information word
// for regular versions 7..40 (unused below version 7).
func VersionInfoBits(v version.Version) uint32 {
	data := uint32(v.RegularNumber())
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return data<<12 | rem
}
