package segment

import (
	"fmt"

	"github.com/qrforge/qrencode/qrerr"
)

// BuildOptions controls how Build classifies content into segments.
type BuildOptions struct {
	// Mode forces a single mode for all content. Zero value (ModeNumeric)
	// is never ambiguous with "unset" because ForceMode signals intent.
	Mode      Mode
	ForceMode bool
	// Encoding requests a specific byte/hanzi text encoding; empty means
	// auto-select via the fallback chain.
	Encoding string
}

// Build classifies content into a single segment (auto-detecting the mode
// unless ForceMode is set) per spec.md §4.1: numeric, then alphanumeric,
// then kanji (only tried implicitly when content round-trips through
// Shift-JIS cleanly), else byte.
//
// Empty content yields a zero-length segment list rather than an error;
// callers validate "empty content" as an input-shape error at a higher
// level (spec.md §7) since an empty symbol is a meaningful low-level
// request (e.g. building up segments manually).
func Build(content string, opts BuildOptions) ([]Segment, error) {
	if content == "" {
		return nil, nil
	}

	if opts.ForceMode {
		seg, err := buildForced(content, opts.Mode, opts.Encoding)
		if err != nil {
			return nil, err
		}
		return []Segment{seg}, nil
	}

	runes := []rune(content)
	switch {
	case IsNumeric(runes):
		seg, err := MakeNumeric(runes)
		return []Segment{seg}, err
	case IsAlphanumeric(runes):
		seg, err := MakeAlphanumeric(runes)
		return []Segment{seg}, err
	case IsKanji(content):
		seg, err := MakeKanji(content)
		return []Segment{seg}, err
	default:
		seg, err := MakeBytesAuto(content, opts.Encoding)
		return []Segment{seg}, err
	}
}

func buildForced(content string, mode Mode, encodingName string) (Segment, error) {
	runes := []rune(content)
	switch mode {
	case ModeNumeric:
		if !IsNumeric(runes) {
			return Segment{}, fmt.Errorf("%w: content is not all-numeric", qrerr.ErrInvalidMode)
		}
		return MakeNumeric(runes)
	case ModeAlphanumeric:
		if !IsAlphanumeric(runes) {
			return Segment{}, fmt.Errorf("%w: content is not valid alphanumeric", qrerr.ErrInvalidMode)
		}
		return MakeAlphanumeric(runes)
	case ModeByte:
		return MakeBytesAuto(content, encodingName)
	case ModeKanji:
		return MakeKanji(content)
	case ModeHanzi:
		return MakeHanzi(content)
	default:
		return Segment{}, fmt.Errorf("%w: cannot force mode %s", qrerr.ErrInvalidMode, mode)
	}
}
