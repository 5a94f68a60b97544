package segment

import (
	"fmt"

	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/qrforge/qrencode/internal/bitbuf"
	"github.com/qrforge/qrencode/qrerr"
)

// MakeHanzi transcodes content to GB2312 (via x/text's GBK encoder, a
// superset compatible with the GB2312 repertoire QR Hanzi mode targets)
// and encodes it in hanzi mode, analogous to kanji mode per spec.md §4.1:
// each 2-byte pair maps to a 13-bit value, using the GB2312
// row-offset subtraction (0xA1A1 for the symbol rows, 0xA6A1 for the
// Hanzi rows) instead of kanji's Shift-JIS offsets.
func MakeHanzi(content string) (Segment, error) {
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return Segment{}, fmt.Errorf("%w: content is not representable in GB2312", qrerr.ErrInvalidEncoding)
	}
	if len(data)%2 != 0 {
		return Segment{}, fmt.Errorf("%w: hanzi content must be 2-byte aligned", qrerr.ErrInvalidMode)
	}

	var bb bitbuf.Buffer
	pairs := len(data) / 2
	for i := 0; i < pairs; i++ {
		hi, lo := data[2*i], data[2*i+1]
		c := uint32(hi)<<8 | uint32(lo)

		var offset uint32
		switch {
		case hi >= 0xA1 && hi <= 0xA9:
			offset = 0xA1A1
		case hi >= 0xB0 && hi <= 0xF7:
			offset = 0xA6A1
		default:
			return Segment{}, fmt.Errorf("%w: byte pair %#04x out of hanzi range", qrerr.ErrInvalidMode, c)
		}
		d := c - offset
		value := (d>>8)*0x60 + (d & 0xFF)
		bb.AppendBits(value, 13)
	}

	return Segment{mode: ModeHanzi, charCount: pairs, bits: boolBits(&bb), encoding: "gb2312"}, nil
}

// IsHanzi reports whether content can be transcoded to GB2312 and every
// resulting byte pair passes the hanzi range check.
func IsHanzi(content string) bool {
	_, err := MakeHanzi(content)
	return err == nil
}
