// Package qrerr defines the sentinel error values shared across the
// encoder pipeline (spec.md §6 "Error codes"). Every stage returns one of
// these, wrapped with context via fmt.Errorf("%w: ...", ...), rather than
// panicking on caller-reachable failures -- see spec.md §7.
package qrerr

import "errors"

var (
	// ErrDataOverflow is returned when no permitted version fits the
	// requested content at the requested (or boosted) error level.
	ErrDataOverflow = errors.New("DataOverflow")
	// ErrInvalidVersion covers a version request that is out of range, not
	// permitted for the micro/regular choice, or (internally) a missing
	// table row -- the latter indicating a programming error in the tables
	// rather than a crash.
	ErrInvalidVersion = errors.New("InvalidVersion")
	// ErrInvalidMode is returned when content cannot be encoded in a
	// requested or auto-detected mode.
	ErrInvalidMode = errors.New("InvalidMode")
	// ErrInvalidErrorLevel is returned when the requested error level is
	// not permitted for the chosen micro/regular version.
	ErrInvalidErrorLevel = errors.New("InvalidErrorLevel")
	// ErrInvalidMask is returned when a forced mask index is out of range
	// for the symbol kind, or (internally) a missing format-info entry.
	ErrInvalidMask = errors.New("InvalidMask")
	// ErrInvalidInput covers shape problems with the top-level call, such
	// as empty content.
	ErrInvalidInput = errors.New("InvalidInput")
	// ErrInvalidContent is returned when content contradicts a forced mode
	// or otherwise cannot be represented at all.
	ErrInvalidContent = errors.New("InvalidContent")
	// ErrInvalidEncoding is returned when a requested byte/hanzi text
	// encoding is unsupported, or content cannot be re-encoded in any
	// supported byte encoding.
	ErrInvalidEncoding = errors.New("InvalidEncoding")
)
