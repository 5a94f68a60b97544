package qrencode

import "github.com/qrforge/qrencode/ecclevel"

// ParseLevelFlag maps a single-letter level name ("L","M","Q","H",
// case-insensitive) to a Level, for CLI-style flag parsing.
func ParseLevelFlag(s string) (Level, bool) {
	return ecclevel.ParseLevel(s)
}

// ParseModeFlag maps a lowercase mode name to a Mode, for CLI-style forced
// mode flags.
func ParseModeFlag(s string) (Mode, bool) {
	switch s {
	case "numeric":
		return ModeNumeric, true
	case "alphanumeric":
		return ModeAlphanumeric, true
	case "byte":
		return ModeByte, true
	case "kanji":
		return ModeKanji, true
	case "hanzi":
		return ModeHanzi, true
	default:
		return 0, false
	}
}
