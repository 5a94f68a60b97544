package segment

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"

	"github.com/qrforge/qrencode/qrerr"
)

// byteFallbackChain is the order spec.md §4.1 prescribes for byte-mode
// transcoding: ISO-8859-1, then Shift-JIS. MakeBytesAuto falls back to
// UTF-8 (which never fails) once both entries have failed. Grounded on golang.org/x/text, the charset library the pack's
// own QR-adjacent repos (ericlevine-zxinggo, inkstray-rsc-qr,
// link-rift-link-rift, 13rac1-qr-benchmarks) already import for this exact
// purpose.
var byteFallbackChain = []struct {
	name string
	enc  encoding.Encoding
}{
	{"iso-8859-1", charmap.ISO8859_1},
	{"shift-jis", japanese.ShiftJIS},
}

// MakeBytesAuto transcodes content (a Go UTF-8 string) into byte-mode
// segment data, trying requestedEncoding first if non-empty, then
// ISO-8859-1, then Shift-JIS, then UTF-8 (always succeeds). The winning
// encoding's canonical name is recorded on the returned segment. An
// unknown requestedEncoding name is an error (qrerr.ErrInvalidEncoding).
func MakeBytesAuto(content string, requestedEncoding string) (Segment, error) {
	if requestedEncoding != "" {
		enc, err := ianaindex.IANA.Encoding(requestedEncoding)
		if err != nil || enc == nil {
			return Segment{}, fmt.Errorf("%w: unsupported encoding %q", qrerr.ErrInvalidEncoding, requestedEncoding)
		}
		data, err := enc.NewEncoder().Bytes([]byte(content))
		if err == nil {
			name, err := ianaindex.IANA.Name(enc)
			if err != nil {
				name = requestedEncoding
			}
			return MakeBytesRaw(data, name), nil
		}
		// Not representable in the requested encoding: fall through to
		// the fixed chain below.
	}

	for _, candidate := range byteFallbackChain {
		data, err := candidate.enc.NewEncoder().Bytes([]byte(content))
		if err == nil {
			return MakeBytesRaw(data, candidate.name), nil
		}
	}

	// UTF-8 always succeeds: it is the input's native representation.
	return MakeBytesRaw([]byte(content), "utf-8"), nil
}
