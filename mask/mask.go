// Package mask implements the eight regular (and four Micro QR) data mask
// patterns, their predicate formulas, and the penalty scoring used to pick
// the best one, per spec.md §4.5.
package mask

import (
	"fmt"

	"github.com/qrforge/qrencode/qrerr"
)

// Pattern is a mask index: 0..7 for regular symbols, 0..3 for Micro QR.
type Pattern uint8

// NumPatterns returns how many mask indices are legal for the given symbol
// kind: 8 for regular, 4 for Micro QR.
func NumPatterns(micro bool) int {
	if micro {
		return 4
	}
	return 8
}

// Valid reports whether p is in range for the given symbol kind.
func (p Pattern) Valid(micro bool) bool {
	return int(p) < NumPatterns(micro)
}

// Predicate returns the invert-this-module function for pattern p. Micro
// patterns 0..3 reuse regular formulas 1, 4, 6, 7 respectively, per
// spec.md §4.5.
func Predicate(p Pattern, micro bool) (func(row, col int) bool, error) {
	regular := p
	if micro {
		mapping := [4]Pattern{1, 4, 6, 7}
		if int(p) >= len(mapping) {
			return nil, fmt.Errorf("%w: micro mask %d out of range", qrerr.ErrInvalidMask, p)
		}
		regular = mapping[p]
	} else if int(p) >= 8 {
		return nil, fmt.Errorf("%w: mask %d out of range", qrerr.ErrInvalidMask, p)
	}

	switch regular {
	case 0:
		return func(r, c int) bool { return (r+c)%2 == 0 }, nil
	case 1:
		return func(r, c int) bool { return r%2 == 0 }, nil
	case 2:
		return func(r, c int) bool { return c%3 == 0 }, nil
	case 3:
		return func(r, c int) bool { return (r+c)%3 == 0 }, nil
	case 4:
		return func(r, c int) bool { return (r/2+c/3)%2 == 0 }, nil
	case 5:
		return func(r, c int) bool { return (r*c)%2+(r*c)%3 == 0 }, nil
	case 6:
		return func(r, c int) bool { return ((r*c)%2+(r*c)%3)%2 == 0 }, nil
	case 7:
		return func(r, c int) bool { return ((r+c)%2+(r*c)%3)%2 == 0 }, nil
	default:
		return nil, fmt.Errorf("%w: mask %d out of range", qrerr.ErrInvalidMask, regular)
	}
}

// ModuleGetter reads a module's color (true = dark) at (row, col); used so
// scoring doesn't need to depend on the matrix package's concrete type.
type ModuleGetter func(row, col int) bool

const (
	penaltyN1 int32 = 3
	penaltyN2 int32 = 3
	penaltyN3 int32 = 40
	penaltyN4 int32 = 10
)

// RegularPenalty computes the four-part penalty score (§4.5) for a
// side x side regular symbol. Lower is better.
func RegularPenalty(get ModuleGetter, side int) int32 {
	var result int32

	for y := 0; y < side; y++ {
		result += lineRunPenalty(func(i int) bool { return get(y, i) }, side)
	}
	for x := 0; x < side; x++ {
		result += lineRunPenalty(func(i int) bool { return get(i, x) }, side)
	}

	for y := 0; y < side-1; y++ {
		for x := 0; x < side-1; x++ {
			c := get(y, x)
			if c == get(y, x+1) && c == get(y+1, x) && c == get(y+1, x+1) {
				result += penaltyN2
			}
		}
	}

	var dark int32
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if get(y, x) {
				dark++
			}
		}
	}
	total := int32(side * side)
	// N4: k = floor(|percentDark-50| / 5).
	k := abs32(dark*20-total*10) / total
	result += k * penaltyN4

	return result
}

// lineRunPenalty scores one row or column (N1: runs of 5+, N3: finder-like
// patterns), driven through get(i) for i in [0,n).
func lineRunPenalty(get func(i int) bool, n int) int32 {
	var result int32
	var runColor bool
	var runLen int32
	fp := newFinderPenalty(int32(n))

	for i := 0; i < n; i++ {
		c := get(i)
		if c == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			fp.addHistory(runLen)
			if !runColor {
				result += fp.countPatterns() * penaltyN3
			}
			runColor = c
			runLen = 1
		}
	}
	result += fp.terminateAndCount(runColor, runLen) * penaltyN3
	return result
}

type finderPenalty struct {
	size    int32
	history [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{size: size}
}

func (p *finderPenalty) addHistory(runLen int32) {
	if p.history[0] == 0 {
		runLen += p.size
	}
	copy(p.history[1:], p.history[:len(p.history)-1])
	p.history[0] = runLen
}

func (p *finderPenalty) countPatterns() int32 {
	n := p.history[1]
	if n > p.size*3 {
		return 0
	}
	core := n > 0 && p.history[2] == n && p.history[3] == n*3 && p.history[4] == n && p.history[5] == n
	var count int32
	if core && p.history[0] >= n*4 && p.history[6] >= n {
		count++
	}
	if core && p.history[6] >= n*4 && p.history[0] >= n {
		count++
	}
	return count
}

func (p *finderPenalty) terminateAndCount(runColor bool, runLen int32) int32 {
	if runColor {
		p.addHistory(runLen)
		runLen = 0
	}
	runLen += p.size
	p.addHistory(runLen)
	return p.countPatterns()
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// MicroPenalty scores a Micro QR candidate per spec.md §4.5: counting dark
// modules along the symbol's last column (excluding the corner) and last
// row (excluding the corner), then combining the smaller count times 16
// plus the larger count. Higher is better -- callers pick the max, unlike
// RegularPenalty where lower wins.
func MicroPenalty(get ModuleGetter, side int) int32 {
	var s1, s2 int32
	for i := 1; i < side; i++ {
		if get(i, side-1) {
			s1++
		}
		if get(side-1, i) {
			s2++
		}
	}
	if s1 < s2 {
		return s1*16 + s2
	}
	return s2*16 + s1
}
