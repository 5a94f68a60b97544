// Package segment classifies textual/binary content into QR segments:
// numeric, alphanumeric, byte, kanji and hanzi runs, each carrying exactly
// the payload bits spec.md §3 requires (no mode/count headers -- those are
// added by the codeword assembler). Segments are immutable once built.
package segment

import (
	"fmt"

	"github.com/qrforge/qrencode/internal/bitbuf"
	"github.com/qrforge/qrencode/qrerr"
	"github.com/qrforge/qrencode/version"
)

// alphanumericCharset is the 45-character set legal in alphanumeric mode:
// 0-9, A-Z, space, $, %, *, +, -, ., /, :.
const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var alphanumericIndex = func() map[rune]int {
	m := make(map[rune]int, len(alphanumericCharset))
	for i, c := range alphanumericCharset {
		m[c] = i
	}
	return m
}()

// Segment is an immutable run of same-mode payload bits.
type Segment struct {
	mode      Mode
	charCount int
	bits      []bool
	encoding  string // only meaningful for byte/hanzi segments
}

// Mode returns the segment's mode.
func (s Segment) Mode() Mode { return s.mode }

// CharCount returns the mode-dependent character count (digits,
// alphanumeric characters, bytes, kanji/hanzi pairs).
func (s Segment) CharCount() int { return s.charCount }

// Len returns the number of payload bits (no mode/count headers).
func (s Segment) Len() int { return len(s.bits) }

// Encoding returns the byte/hanzi text encoding name that produced this
// segment's bytes, or "" for modes where it doesn't apply.
func (s Segment) Encoding() string { return s.encoding }

// AppendTo writes this segment's payload bits (not its headers) into bb.
func (s Segment) AppendTo(bb *bitbuf.Buffer) {
	for _, bit := range s.bits {
		bb.AppendBit(bit)
	}
}

// IsNumeric reports whether every rune in text is an ASCII digit.
func IsNumeric(text []rune) bool {
	for _, c := range text {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// IsAlphanumeric reports whether every rune in text is in the 45-character
// alphanumeric set.
func IsAlphanumeric(text []rune) bool {
	for _, c := range text {
		if _, ok := alphanumericIndex[c]; !ok {
			return false
		}
	}
	return true
}

// MakeNumeric encodes text (digits only) in numeric mode: runs of three
// digits as a 10-bit integer, with a 7-bit tail for a trailing pair or a
// 4-bit tail for a trailing single digit.
func MakeNumeric(text []rune) (Segment, error) {
	var bb bitbuf.Buffer
	var accum, count uint32
	for _, c := range text {
		if c < '0' || c > '9' {
			return Segment{}, fmt.Errorf("%w: %q is not a digit", qrerr.ErrInvalidMode, c)
		}
		accum = accum*10 + uint32(c-'0')
		count++
		if count == 3 {
			bb.AppendBits(accum, 10)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		bb.AppendBits(accum, int(count)*3+1)
	}
	return Segment{mode: ModeNumeric, charCount: len(text), bits: boolBits(&bb)}, nil
}

// MakeAlphanumeric encodes text in alphanumeric mode: pairs of characters
// as 45*a+b in 11 bits, with a 6-bit tail for a trailing single character.
func MakeAlphanumeric(text []rune) (Segment, error) {
	var bb bitbuf.Buffer
	var accum, count uint32
	for _, c := range text {
		idx, ok := alphanumericIndex[c]
		if !ok {
			return Segment{}, fmt.Errorf("%w: %q not in alphanumeric charset", qrerr.ErrInvalidMode, c)
		}
		accum = accum*45 + uint32(idx)
		count++
		if count == 2 {
			bb.AppendBits(accum, 11)
			accum, count = 0, 0
		}
	}
	if count > 0 {
		bb.AppendBits(accum, 6)
	}
	return Segment{mode: ModeAlphanumeric, charCount: len(text), bits: boolBits(&bb)}, nil
}

// MakeBytesRaw encodes already-transcoded bytes in byte mode, recording the
// encoding name that produced them.
func MakeBytesRaw(data []byte, encodingName string) Segment {
	var bb bitbuf.Buffer
	for _, b := range data {
		bb.AppendBits(uint32(b), 8)
	}
	return Segment{mode: ModeByte, charCount: len(data), bits: boolBits(&bb), encoding: encodingName}
}

// MakeECI encodes an ECI designator segment with no character count field.
func MakeECI(assignment uint32) (Segment, error) {
	var bb bitbuf.Buffer
	switch {
	case assignment < (1 << 7):
		bb.AppendBits(assignment, 8)
	case assignment < (1 << 14):
		bb.AppendBits(2, 2)
		bb.AppendBits(assignment, 14)
	case assignment < 1_000_000:
		bb.AppendBits(6, 3)
		bb.AppendBits(assignment, 21)
	default:
		return Segment{}, fmt.Errorf("%w: ECI assignment %d out of range", qrerr.ErrInvalidMode, assignment)
	}
	return Segment{mode: ModeECI, charCount: 0, bits: boolBits(&bb)}, nil
}

// New builds a segment directly from pre-encoded payload bits. Low-level;
// callers must ensure charCount agrees with mode and len(bits).
func New(mode Mode, charCount int, bits []bool, encodingName string) Segment {
	return Segment{mode: mode, charCount: charCount, bits: bits, encoding: encodingName}
}

func boolBits(bb *bitbuf.Buffer) []bool {
	out := make([]bool, bb.Len())
	for i := range out {
		out[i] = bb.Bit(i)
	}
	return out
}

// TotalBits returns the number of bits needed to encode segs (mode
// indicators, character-count fields, ECI headers and payload) at version
// v, plus the version-appropriate terminator length. Returns
// qrerr.ErrDataOverflow if any segment's character count doesn't fit its
// count field width.
func TotalBits(segs []Segment, v version.Version) (int, error) {
	total := TerminatorBits(v)
	for _, seg := range segs {
		_, indWidth, err := seg.mode.IndicatorBits(v)
		if err != nil {
			return 0, err
		}
		ccWidth, err := seg.mode.NumCharCountBits(v)
		if err != nil {
			return 0, err
		}
		if seg.mode != ModeECI && seg.charCount >= (1<<uint(ccWidth)) {
			return 0, fmt.Errorf("%w: %s segment of %d chars exceeds count field at %s", qrerr.ErrDataOverflow, seg.mode, seg.charCount, v)
		}
		total += indWidth + ccWidth + seg.Len()
	}
	return total, nil
}

// Merge concatenates adjacent segments that share mode and encoding,
// summing their character counts, per spec.md §4.1's merging rule.
func Merge(segs []Segment) []Segment {
	if len(segs) == 0 {
		return segs
	}
	out := make([]Segment, 0, len(segs))
	cur := segs[0]
	for _, next := range segs[1:] {
		if next.mode == cur.mode && next.encoding == cur.encoding && next.mode != ModeECI {
			cur.charCount += next.charCount
			cur.bits = append(cur.bits, next.bits...)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}
