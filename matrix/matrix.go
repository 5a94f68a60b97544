// Package matrix owns the module grid: drawing finder/timing/alignment
// function patterns, placing the interleaved codeword stream in the
// standard's zig-zag order, applying a mask pattern, and drawing format and
// version information, per spec.md §4.4-4.5.
package matrix

import (
	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/internal/tables"
	"github.com/qrforge/qrencode/mask"
	"github.com/qrforge/qrencode/version"
)

// Matrix is a mutable square grid of modules (true = dark) for one symbol
// version, plus bookkeeping for which modules are function modules (not
// subject to masking or data placement).
type Matrix struct {
	v          version.Version
	side       int
	micro      bool
	modules    []bool
	isFunction []bool
}

// New allocates an all-light matrix sized for v, with no function patterns
// drawn yet.
func New(v version.Version) *Matrix {
	side := v.Side()
	return &Matrix{
		v:          v,
		side:       side,
		micro:      v.IsMicro(),
		modules:    make([]bool, side*side),
		isFunction: make([]bool, side*side),
	}
}

// Side returns the module side length.
func (m *Matrix) Side() int { return m.side }

// Get returns the color of the module at (row, col): true for dark.
// Out-of-bounds coordinates return false (light).
func (m *Matrix) Get(row, col int) bool {
	if row < 0 || row >= m.side || col < 0 || col >= m.side {
		return false
	}
	return m.modules[row*m.side+col]
}

func (m *Matrix) at(row, col int) bool {
	return m.modules[row*m.side+col]
}

func (m *Matrix) setAt(row, col int, dark bool) {
	m.modules[row*m.side+col] = dark
}

func (m *Matrix) setFunction(row, col int, dark bool) {
	if row < 0 || row >= m.side || col < 0 || col >= m.side {
		return
	}
	m.setAt(row, col, dark)
	m.isFunction[row*m.side+col] = true
}

// DrawFunctionPatterns draws the timing patterns, finder pattern(s), and
// alignment patterns (regular only), and marks the always-dark module and
// the format/version information areas as function modules (content drawn
// later by DrawFormatInfo/DrawVersionInfo). Regular symbols get three
// finders; Micro QR gets exactly one, at the top-left corner, per
// spec.md §4.4.
func (m *Matrix) DrawFunctionPatterns() {
	for i := 0; i < m.side; i++ {
		m.setFunction(6, i, i%2 == 0)
		m.setFunction(i, 6, i%2 == 0)
	}

	m.drawFinderPattern(3, 3)
	if !m.micro {
		m.drawFinderPattern(m.side-4, 3)
		m.drawFinderPattern(3, m.side-4)
	}

	positions := tables.AlignmentPositions(m.v)
	last := len(positions) - 1
	for i, r := range positions {
		for j, c := range positions {
			// Skip the three intersections that fall on a finder pattern.
			if (i == 0 && j == 0) || (i == 0 && j == last) || (i == last && j == 0) {
				continue
			}
			m.drawAlignmentPattern(r, c)
		}
	}

	if !m.micro {
		m.setFunction(m.side-8, 8, true)
	}

	// Reserve the format info area so it isn't treated as data; actual bits
	// are drawn later once the mask is chosen.
	m.reserveFormatInfo()
	if !m.micro && m.v.RegularNumber() >= 7 {
		m.reserveVersionInfo()
	}
}

// drawFinderPattern draws a 9x9 finder including its separator, centered
// at (crow, ccol). Modules outside the matrix are silently skipped.
func (m *Matrix) drawFinderPattern(crow, ccol int) {
	for dr := -4; dr <= 4; dr++ {
		for dc := -4; dc <= 4; dc++ {
			r, c := crow+dr, ccol+dc
			if r < 0 || r >= m.side || c < 0 || c >= m.side {
				continue
			}
			dist := maxInt(absInt(dr), absInt(dc))
			m.setFunction(r, c, dist != 2 && dist != 4)
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (crow, ccol).
func (m *Matrix) drawAlignmentPattern(crow, ccol int) {
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			m.setFunction(crow+dr, ccol+dc, maxInt(absInt(dr), absInt(dc)) != 1)
		}
	}
}

func (m *Matrix) reserveFormatInfo() {
	if m.micro {
		for i := 1; i <= 8; i++ {
			m.setFunction(8, i, false)
		}
		for i := 1; i <= 7; i++ {
			m.setFunction(i, 8, false)
		}
		return
	}
	for i := 0; i <= 8; i++ {
		if i != 6 {
			m.setFunction(8, i, false)
			m.setFunction(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		m.setFunction(8, m.side-1-i, false)
	}
	for i := 0; i < 7; i++ {
		m.setFunction(m.side-1-i, 8, false)
	}
}

func (m *Matrix) reserveVersionInfo() {
	for r := 0; r < 6; r++ {
		for c := 0; c < 3; c++ {
			m.setFunction(r, m.side-11+c, false)
			m.setFunction(m.side-11+c, r, false)
		}
	}
}

// PlaceCodewords draws the given interleaved codeword bytes into the data
// area in the standard's zig-zag column-pair scan, skipping function
// modules, per spec.md §4.4.
func (m *Matrix) PlaceCodewords(data []byte) {
	var i int
	totalBits := len(data) * 8
	right := m.side - 1
	for right >= 1 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < m.side; vert++ {
			for j := 0; j < 2; j++ {
				col := right - j
				upward := (right+1)&2 == 0
				var row int
				if upward {
					row = m.side - 1 - vert
				} else {
					row = vert
				}
				if !m.isFunction[row*m.side+col] && i < totalBits {
					bit := (data[i>>3]>>(7-uint(i&7)))&1 != 0
					m.setAt(row, col, bit)
					i++
				}
			}
		}
		right -= 2
	}
}

// ApplyMask XORs every non-function module with pattern's predicate.
// Calling it twice with the same pattern undoes the mask.
func (m *Matrix) ApplyMask(pattern mask.Pattern) error {
	pred, err := mask.Predicate(pattern, m.micro)
	if err != nil {
		return err
	}
	for row := 0; row < m.side; row++ {
		for col := 0; col < m.side; col++ {
			idx := row*m.side + col
			if !m.isFunction[idx] && pred(row, col) {
				m.modules[idx] = !m.modules[idx]
			}
		}
	}
	return nil
}

// DrawFormatInfo draws the format information bits for level and pattern.
// Regular symbols get two redundant copies; Micro QR gets one, placed
// along the row and column adjacent to its single finder.
func (m *Matrix) DrawFormatInfo(level ecclevel.Level, pattern mask.Pattern) error {
	if m.micro {
		bits, err := tables.MicroFormatInfoBits(m.v.MicroNumber(), level, uint8(pattern))
		if err != nil {
			return err
		}
		for i := 0; i < 8; i++ {
			m.setFunction(8, 1+i, getBit(bits, i))
		}
		for i := 0; i < 7; i++ {
			m.setFunction(1+i, 8, getBit(bits, 8+i))
		}
		return nil
	}

	bits := tables.FormatInfoBits(level, uint8(pattern))

	for i := 0; i < 6; i++ {
		m.setFunction(i, 8, getBit(bits, i))
	}
	m.setFunction(7, 8, getBit(bits, 6))
	m.setFunction(8, 8, getBit(bits, 7))
	m.setFunction(8, 7, getBit(bits, 8))
	for i := 9; i < 15; i++ {
		m.setFunction(8, 14-i, getBit(bits, i))
	}

	for i := 0; i < 8; i++ {
		m.setFunction(8, m.side-1-i, getBit(bits, i))
	}
	for i := 8; i < 15; i++ {
		m.setFunction(m.side-15+i, 8, getBit(bits, i))
	}
	m.setFunction(m.side-8, 8, true)

	return nil
}

// DrawVersionInfo draws the two copies of version information for regular
// symbols of version 7 or higher; a no-op otherwise.
func (m *Matrix) DrawVersionInfo() {
	if m.micro || m.v.RegularNumber() < 7 {
		return
	}
	bits := tables.VersionInfoBits(m.v)
	for i := 0; i < 18; i++ {
		bit := getBit(bits, i)
		a := m.side - 11 + i%3
		b := i / 3
		m.setFunction(b, a, bit)
		m.setFunction(a, b, bit)
	}
}

// PenaltyScore scores the current (masked) state of the matrix. For
// regular symbols lower is better; for Micro QR higher is better, per
// spec.md §4.5.
func (m *Matrix) PenaltyScore() int32 {
	get := func(row, col int) bool { return m.Get(row, col) }
	if m.micro {
		return mask.MicroPenalty(get, m.side)
	}
	return mask.RegularPenalty(get, m.side)
}

func getBit(val uint32, i int) bool {
	return (val>>uint(i))&1 != 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
