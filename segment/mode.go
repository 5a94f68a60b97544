package segment

import (
	"fmt"

	"github.com/qrforge/qrencode/qrerr"
	"github.com/qrforge/qrencode/version"
)

// Mode classifies how a segment's data bits are interpreted, matching
// spec.md §3's five modes plus the ECI pseudo-mode used only for headers.
type Mode uint8

const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeByte
	ModeKanji
	ModeHanzi
	ModeECI
)

// String names the mode for diagnostics and error messages.
func (m Mode) String() string {
	switch m {
	case ModeNumeric:
		return "numeric"
	case ModeAlphanumeric:
		return "alphanumeric"
	case ModeByte:
		return "byte"
	case ModeKanji:
		return "kanji"
	case ModeHanzi:
		return "hanzi"
	case ModeECI:
		return "eci"
	default:
		return "unknown"
	}
}

// IndicatorBits returns the mode indicator value and its bit width for v.
// Regular symbols always use a 4-bit indicator (spec.md §4.2 table); Micro
// QR widths grow with version (0/1/2/3 bits for M1..M4) and M1 carries no
// indicator at all since only numeric mode is legal there.
func (m Mode) IndicatorBits(v version.Version) (value uint32, width int, err error) {
	if !v.IsMicro() {
		ind, err := m.regularIndicator()
		if err != nil {
			return 0, 0, err
		}
		return ind, 4, nil
	}

	n := v.MicroNumber()
	width = [5]int{0, 1, 2, 3, 3}[n-1]
	order, ok := microModeOrder(m)
	if !ok {
		return 0, 0, fmt.Errorf("%w: mode %s has no micro indicator", qrerr.ErrInvalidMode, m)
	}
	if order >= (1 << width) {
		return 0, 0, fmt.Errorf("%w: mode %s not legal for M%d", qrerr.ErrInvalidMode, m, n)
	}
	return uint32(order), width, nil
}

func (m Mode) regularIndicator() (uint32, error) {
	switch m {
	case ModeNumeric:
		return 0x1, nil
	case ModeAlphanumeric:
		return 0x2, nil
	case ModeByte:
		return 0x4, nil
	case ModeKanji:
		return 0x8, nil
	case ModeHanzi:
		return 0xD, nil
	case ModeECI:
		return 0x7, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %d", qrerr.ErrInvalidMode, m)
	}
}

// microModeOrder returns the 0-based index of m in the fixed micro mode
// ordering numeric, alphanumeric, byte, kanji (hanzi is not part of the
// Micro QR standard and is rejected here).
func microModeOrder(m Mode) (int, bool) {
	switch m {
	case ModeNumeric:
		return 0, true
	case ModeAlphanumeric:
		return 1, true
	case ModeByte:
		return 2, true
	case ModeKanji:
		return 3, true
	default:
		return 0, false
	}
}

// charCountBits holds [1-9,10-26,27-40] widths for regular versions, or
// [M1,M2,M3,M4] widths for micro (0 meaning "not legal").
type charCountBits struct {
	regular [3]int
	micro   [4]int
}

var charCountTable = map[Mode]charCountBits{
	ModeNumeric:      {regular: [3]int{10, 12, 14}, micro: [4]int{3, 4, 5, 6}},
	ModeAlphanumeric: {regular: [3]int{9, 11, 13}, micro: [4]int{0, 3, 4, 5}},
	ModeByte:         {regular: [3]int{8, 16, 16}, micro: [4]int{0, 0, 4, 5}},
	ModeKanji:        {regular: [3]int{8, 10, 12}, micro: [4]int{0, 0, 3, 4}},
	ModeHanzi:        {regular: [3]int{8, 10, 12}, micro: [4]int{0, 0, 3, 4}},
	ModeECI:          {regular: [3]int{0, 0, 0}, micro: [4]int{0, 0, 0, 0}},
}

// NumCharCountBits returns the bit width of the character count field for a
// segment in this mode at version v. Returns an error if the mode has no
// legal character-count field at v (e.g. alphanumeric at M1).
func (m Mode) NumCharCountBits(v version.Version) (int, error) {
	entry, ok := charCountTable[m]
	if !ok {
		return 0, fmt.Errorf("%w: unknown mode %s", qrerr.ErrInvalidMode, m)
	}
	if !v.IsMicro() {
		ver := v.RegularNumber()
		switch {
		case ver <= 9:
			return entry.regular[0], nil
		case ver <= 26:
			return entry.regular[1], nil
		default:
			return entry.regular[2], nil
		}
	}
	width := entry.micro[v.MicroNumber()-1]
	if width == 0 && m != ModeECI {
		return 0, fmt.Errorf("%w: mode %s not legal for %s", qrerr.ErrInvalidMode, m, v)
	}
	return width, nil
}

// TerminatorBits returns the terminator length for v: 3/5/7/9 for M1..M4,
// 4 for regular symbols.
func TerminatorBits(v version.Version) int {
	if !v.IsMicro() {
		return 4
	}
	return [4]int{3, 5, 7, 9}[v.MicroNumber()-1]
}
