package theme

// glyphs maps icon identifiers to single-cell terminal stand-ins.
var glyphs = map[string]string{
	"user-home-symbolic":          "⌂",
	"bell-outline-symbolic":       "♪",
	"mail-unread-symbolic":        "✉",
	"loupe-large-symbolic":        "⌕",
	"star-outline-thick-symbolic": "☆",
	"bookmark-outline-symbolic":   "⚑",
	"hashtag-symbolic":            "#",
	"explore2-symbolic":           "◎",
	"network-server-symbolic":     "▤",
	"globe-symbolic":              "◍",
	"list-compact-symbolic":       "≡",
}

const fallbackGlyph = "•"

// Glyph returns the terminal glyph for an icon identifier.
func Glyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return fallbackGlyph
}
