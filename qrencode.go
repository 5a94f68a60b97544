// Package qrencode is a QR Code Model 2 and Micro QR symbol encoder,
// covering regular versions 1-40 and Micro QR M1-M4, all four error
// correction levels, and the numeric, alphanumeric, byte, kanji and hanzi
// segment modes.
//
// Ways to create a symbol:
//
//   - High level: call Encode with raw text and Options.
//   - Mid level: build a []segment.Segment yourself and call EncodeSegments.
//
// (Both require an error correction level via Options.Level.)
package qrencode

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qrforge/qrencode/codeword"
	"github.com/qrforge/qrencode/ecclevel"
	"github.com/qrforge/qrencode/internal/tables"
	"github.com/qrforge/qrencode/mask"
	"github.com/qrforge/qrencode/matrix"
	"github.com/qrforge/qrencode/qrerr"
	"github.com/qrforge/qrencode/segment"
	"github.com/qrforge/qrencode/version"
)

// Re-exported aliases, matching the teacher's own root-package aliasing
// idiom so callers never need to import the internal packages directly.
type (
	Mask    = mask.Pattern
	Level   = ecclevel.Level
	Version = version.Version
	Segment = segment.Segment
	Mode    = segment.Mode
)

// Re-exported sentinel errors (spec.md §6).
var (
	ErrDataOverflow      = qrerr.ErrDataOverflow
	ErrInvalidVersion    = qrerr.ErrInvalidVersion
	ErrInvalidMode       = qrerr.ErrInvalidMode
	ErrInvalidErrorLevel = qrerr.ErrInvalidErrorLevel
	ErrInvalidMask       = qrerr.ErrInvalidMask
	ErrInvalidInput      = qrerr.ErrInvalidInput
	ErrInvalidContent    = qrerr.ErrInvalidContent
	ErrInvalidEncoding   = qrerr.ErrInvalidEncoding
)

// Mode constants re-exported for callers building segments manually.
const (
	ModeNumeric      = segment.ModeNumeric
	ModeAlphanumeric = segment.ModeAlphanumeric
	ModeByte         = segment.ModeByte
	ModeKanji        = segment.ModeKanji
	ModeHanzi        = segment.ModeHanzi
)

// Level constants re-exported for convenience.
const (
	Low      = ecclevel.Low
	Medium   = ecclevel.Medium
	Quartile = ecclevel.Quartile
	High     = ecclevel.High
)

// Options controls how Encode builds a symbol.
type Options struct {
	// Level is the requested error correction level.
	Level Level

	// Micro requests a Micro QR symbol (M1-M4) instead of a regular one.
	Micro bool

	// Version forces a specific symbol version; nil auto-selects the
	// smallest version (within the Micro/regular family chosen above)
	// that fits the content.
	Version *Version

	// Mask forces a specific mask pattern; nil auto-selects the
	// lowest-penalty (regular) or highest-scoring (Micro) pattern.
	Mask *Mask

	// ForceMode and Mode force a single segment mode for all content,
	// instead of auto-detecting numeric/alphanumeric/byte/kanji.
	ForceMode bool
	Mode      Mode

	// Encoding requests a specific byte/hanzi text encoding; empty
	// auto-selects via the fallback chain (see segment.MakeBytesAuto).
	Encoding string

	// ECI, if non-zero, prepends an ECI designator segment with this
	// assignment number before the content's own segments (regular
	// symbols only; Micro QR has no ECI mode).
	ECI uint32

	// BoostError raises Level to the highest level that still fits the
	// chosen version, matching the teacher's boostecl behavior.
	BoostError bool

	// Logger receives diagnostic events during encoding (version search,
	// ECC boosting, mask selection). Purely observational: a nil Logger
	// disables logging and never changes the encoded result.
	Logger *zerolog.Logger
}

// Symbol is an encoded QR or Micro QR symbol: an immutable square grid of
// dark and light modules, plus the parameters used to produce it.
type Symbol struct {
	version  Version
	level    Level
	mask     Mask
	segments []Segment
	side     int
	modules  []bool
}

// Version returns the symbol's version.
func (s *Symbol) Version() Version { return s.version }

// ErrorLevel returns the symbol's error correction level.
func (s *Symbol) ErrorLevel() Level { return s.level }

// Mask returns the mask pattern used.
func (s *Symbol) Mask() Mask { return s.mask }

// Micro reports whether this is a Micro QR symbol.
func (s *Symbol) Micro() bool { return s.version.IsMicro() }

// Side returns the module side length.
func (s *Symbol) Side() int { return s.side }

// GetModule returns the color of the module at (row, col), false (light)
// if out of bounds.
func (s *Symbol) GetModule(row, col int) bool {
	if row < 0 || row >= s.side || col < 0 || col >= s.side {
		return false
	}
	return s.modules[row*s.side+col]
}

// Segments returns the segments encoded into this symbol.
func (s *Symbol) Segments() []Segment { return s.segments }

// Encode builds a symbol from text, auto-detecting segment modes (unless
// Options.ForceMode is set) and auto-selecting the smallest fitting
// version and best mask (unless forced via Options).
func Encode(content string, opts Options) (*Symbol, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}
	if !opts.Level.Valid() {
		return nil, fmt.Errorf("%w: unknown level %d", ErrInvalidErrorLevel, opts.Level)
	}

	segs, err := segment.Build(content, segment.BuildOptions{
		Mode:      opts.Mode,
		ForceMode: opts.ForceMode,
		Encoding:  opts.Encoding,
	})
	if err != nil {
		return nil, err
	}

	if opts.ECI != 0 {
		if opts.Micro {
			return nil, fmt.Errorf("%w: ECI is not defined for Micro QR", ErrInvalidMode)
		}
		eci, err := segment.MakeECI(opts.ECI)
		if err != nil {
			return nil, err
		}
		segs = append([]Segment{eci}, segs...)
	}

	return EncodeSegments(segs, opts)
}

// EncodeSegments builds a symbol from a caller-assembled segment list, for
// callers who need manual control over mode switching. Adjacent segments
// sharing a mode and encoding are merged first (spec.md §4.1), so callers
// never pay for duplicate headers when they split content into segments
// more finely than necessary.
func EncodeSegments(segs []Segment, opts Options) (*Symbol, error) {
	segs = segment.Merge(segs)

	logger := opts.Logger
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}

	ver, level, err := chooseVersion(segs, opts, logger)
	if err != nil {
		return nil, err
	}

	data, err := codeword.Assemble(segs, ver, level)
	if err != nil {
		return nil, err
	}

	sym, err := buildMatrix(ver, level, data, opts.Mask, logger)
	if err != nil {
		return nil, err
	}
	sym.segments = segs
	return sym, nil
}

// chooseVersion finds the smallest version (in the requested Micro/regular
// family) whose data capacity fits segs, then optionally boosts the error
// level as high as that same version still allows, mirroring the teacher's
// EncodeSegmentsAdvanced search loop.
func chooseVersion(segs []Segment, opts Options, logger *zerolog.Logger) (Version, Level, error) {
	level := opts.Level

	if opts.Version != nil {
		v := *opts.Version
		if v.IsMicro() && !tables.MicroLevelValid(v.MicroNumber(), level) {
			return Version{}, 0, fmt.Errorf("%w: level %s not valid for %s", ErrInvalidErrorLevel, level, v)
		}
		if _, err := segment.TotalBits(segs, v); err != nil {
			return Version{}, 0, err
		}
		return v, maybeBoost(segs, v, level, opts.BoostError, logger), nil
	}

	var v Version
	if opts.Micro {
		v = version.MinMicro
	} else {
		v = version.Min
	}

	for {
		fits, err := fitsVersion(segs, v, level)
		if err != nil {
			return Version{}, 0, err
		}
		if fits {
			logger.Debug().Stringer("version", v).Msg("selected version")
			return v, maybeBoost(segs, v, level, opts.BoostError, logger), nil
		}
		next, ok := v.Next()
		if !ok {
			return Version{}, 0, fmt.Errorf("%w: content does not fit any %s version at level %s",
				ErrDataOverflow, familyName(opts.Micro), level)
		}
		v = next
	}
}

func familyName(micro bool) string {
	if micro {
		return "micro"
	}
	return "regular"
}

// fitsVersion reports whether segs fit v's data capacity at level, treating
// a mode/version incompatibility (e.g. alphanumeric at M1) as "doesn't
// fit" rather than an error, so the search loop can keep climbing versions.
func fitsVersion(segs []Segment, v Version, level Level) (bool, error) {
	if v.IsMicro() && !tables.MicroLevelValid(v.MicroNumber(), level) {
		return false, nil
	}
	used, err := segment.TotalBits(segs, v)
	if err != nil {
		return false, nil
	}
	capacity, err := tables.DataCapacityBits(v, level)
	if err != nil {
		return false, err
	}
	return used <= capacity, nil
}

// maybeBoost raises level as far as Quartile/High while v still fits,
// matching the teacher's boostecl behavior. Never lowers level, and never
// changes version.
func maybeBoost(segs []Segment, v Version, level Level, boost bool, logger *zerolog.Logger) Level {
	if !boost {
		return level
	}
	candidates := []Level{ecclevel.Medium, ecclevel.Quartile, ecclevel.High}
	if v.IsMicro() {
		candidates = []Level{ecclevel.Medium, ecclevel.Quartile}
	}
	for _, candidate := range candidates {
		if candidate <= level {
			continue
		}
		if ok, _ := fitsVersion(segs, v, candidate); ok {
			level = candidate
		}
	}
	logger.Debug().Stringer("level", level).Msg("boosted error level")
	return level
}

// buildMatrix draws function patterns, places codewords, chooses (or
// applies a forced) mask, and draws format/version information.
func buildMatrix(v Version, level Level, data []byte, forcedMask *Mask, logger *zerolog.Logger) (*Symbol, error) {
	m := matrix.New(v)
	m.DrawFunctionPatterns()
	m.PlaceCodewords(data)

	chosen, err := selectMask(m, v, level, forcedMask, logger)
	if err != nil {
		return nil, err
	}

	if err := m.ApplyMask(chosen); err != nil {
		return nil, err
	}
	if err := m.DrawFormatInfo(level, chosen); err != nil {
		return nil, err
	}
	m.DrawVersionInfo()

	side := m.Side()
	modules := make([]bool, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			modules[r*side+c] = m.Get(r, c)
		}
	}

	return &Symbol{version: v, level: level, mask: chosen, side: side, modules: modules}, nil
}

// selectMask either validates a forced mask or brute-forces every legal
// pattern, applying/undoing/re-applying it to score the result, and keeps
// the best. Regular symbols minimize RegularPenalty; Micro QR symbols
// maximize MicroPenalty per spec.md §4.5.
func selectMask(m *matrix.Matrix, v Version, level Level, forced *Mask, logger *zerolog.Logger) (Mask, error) {
	if forced != nil {
		if !forced.Valid(v.IsMicro()) {
			return 0, fmt.Errorf("%w: mask %d not valid for %s", ErrInvalidMask, *forced, v)
		}
		return *forced, nil
	}

	numPatterns := mask.NumPatterns(v.IsMicro())
	best := Mask(0)
	var bestScore int32
	haveBest := false

	for i := 0; i < numPatterns; i++ {
		candidate := Mask(i)
		if err := m.ApplyMask(candidate); err != nil {
			return 0, err
		}
		if err := m.DrawFormatInfo(level, candidate); err != nil {
			return 0, err
		}
		score := m.PenaltyScore()
		m.ApplyMask(candidate) // undo

		better := !haveBest
		if haveBest {
			if v.IsMicro() {
				better = score > bestScore
			} else {
				better = score < bestScore
			}
		}
		if better {
			best, bestScore, haveBest = candidate, score, true
		}
	}
	logger.Debug().Uint8("mask", uint8(best)).Int32("score", bestScore).Msg("selected mask")
	return best, nil
}
