package atlas

import (
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/glass/bitmap"
)

// Option configures atlas construction.
type Option func(*config)

// config holds configuration for atlas construction.
type config struct {
	cellWidth  int // 0 derives the width from the face
	cellHeight int // 0 derives the height from the face
	rows       int
	foreground uint32
	background uint32
	encoding   *charmap.Charmap
}

// defaultConfig returns the default atlas configuration.
func defaultConfig() config {
	return config{
		rows:       16, // 256 cells
		foreground: bitmap.PackRGBA(0xff, 0xff, 0xff, 0xff),
		background: bitmap.OpaqueBlack,
	}
}

// WithCellSize fixes the glyph cell size instead of deriving it from the
// face metrics. Glyphs larger than the cell are cropped.
func WithCellSize(width, height int) Option {
	return func(c *config) {
		c.cellWidth = width
		c.cellHeight = height
	}
}

// WithRows sets the number of 16-cell rows in the atlas. The default of
// 16 rows covers codes 0-255.
func WithRows(n int) Option {
	return func(c *config) {
		c.rows = n
	}
}

// WithColors sets the glyph and background texels. The defaults are
// opaque white on opaque black.
func WithColors(foreground, background uint32) Option {
	return func(c *config) {
		c.foreground = foreground
		c.background = background
	}
}

// WithEncoding lays the atlas out by a single-byte code page: cell c holds
// the glyph for the rune the code page decodes byte c to. Only the first
// 256 cells are filled. Pair it with text.WithEncoding using the same
// code page.
func WithEncoding(cm *charmap.Charmap) Option {
	return func(c *config) {
		c.encoding = cm
	}
}
