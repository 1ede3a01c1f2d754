package text

import "golang.org/x/text/encoding/charmap"

// FontOption configures MonospaceFont creation.
type FontOption func(*fontConfig)

// fontConfig holds configuration for MonospaceFont.
type fontConfig struct {
	encoding *charmap.Charmap
	fallback rune
}

// defaultFontConfig returns the default font configuration.
func defaultFontConfig() fontConfig {
	return fontConfig{
		encoding: nil, // code point indexes the atlas directly
		fallback: '?',
	}
}

// WithEncoding maps runes through a single-byte code page before looking
// up their atlas cell. Use it for atlases laid out by code page, such as
// charmap.CodePage437. Without it the rune's code point is the cell index.
func WithEncoding(cm *charmap.Charmap) FontOption {
	return func(c *fontConfig) {
		c.encoding = cm
	}
}

// WithFallback sets the rune drawn for characters the encoding cannot
// represent. The default is '?'. It has no effect without WithEncoding.
func WithFallback(r rune) FontOption {
	return func(c *fontConfig) {
		c.fallback = r
	}
}
