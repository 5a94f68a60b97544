package segment

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"

	"github.com/qrforge/qrencode/internal/bitbuf"
	"github.com/qrforge/qrencode/qrerr"
)

// MakeKanji transcodes content to Shift-JIS and encodes it in kanji mode:
// each 2-byte Shift-JIS pair maps to a 13-bit value per spec.md §4.1.
func MakeKanji(content string) (Segment, error) {
	data, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return Segment{}, fmt.Errorf("%w: content is not representable in Shift-JIS", qrerr.ErrInvalidEncoding)
	}
	if len(data)%2 != 0 {
		return Segment{}, fmt.Errorf("%w: kanji content must be 2-byte aligned", qrerr.ErrInvalidMode)
	}

	var bb bitbuf.Buffer
	pairs := len(data) / 2
	for i := 0; i < pairs; i++ {
		hi, lo := data[2*i], data[2*i+1]
		c := uint32(hi)<<8 | uint32(lo)

		var d uint32
		switch {
		case c >= 0x8140 && c <= 0x9FFC:
			d = c - 0x8140
		case c >= 0xE040 && c <= 0xEBBF:
			d = c - 0xC140
		default:
			return Segment{}, fmt.Errorf("%w: byte pair %#04x out of kanji range", qrerr.ErrInvalidMode, c)
		}
		value := (d>>8)*0xC0 + (d & 0xFF)
		bb.AppendBits(value, 13)
	}

	return Segment{mode: ModeKanji, charCount: pairs, bits: boolBits(&bb)}, nil
}

// IsKanji reports whether content can be transcoded to Shift-JIS and every
// resulting byte pair passes the kanji range check, without building the
// segment.
func IsKanji(content string) bool {
	_, err := MakeKanji(content)
	return err == nil
}
