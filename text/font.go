package text

import (
	"unicode/utf8"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/geom"
)

// AtlasColumns is the number of glyph cells per atlas row.
const AtlasColumns = 16

// MonospaceFont draws fixed-size glyphs from an atlas texture.
//
// The atlas is a grid AtlasColumns cells wide; the glyph for code c lives
// in column c%16, row c/16. The font does not own its atlas: it holds a
// glass.Weak reference and resolves it on every write, so the atlas owner
// may release it at any time.
type MonospaceFont[P any] struct {
	atlas      glass.Weak[glass.Texture[P]]
	charWidth  int
	charHeight int
	config     fontConfig
}

// NewMonospaceFont binds a font to atlas with the given cell size.
//
// It fails with ErrAtlasReleased if atlas no longer resolves, with
// ErrInvalidCellSize for non-positive cell dimensions, and with a
// *FontAtlasMisfitError if sixteen cells do not fit the atlas width.
func NewMonospaceFont[P any](atlas glass.Weak[glass.Texture[P]], charWidth, charHeight int, opts ...FontOption) (*MonospaceFont[P], error) {
	tex, ok := atlas.Get()
	if !ok {
		return nil, ErrAtlasReleased
	}
	if charWidth <= 0 || charHeight <= 0 {
		return nil, ErrInvalidCellSize
	}

	required := charWidth * AtlasColumns
	if required > tex.Width() {
		return nil, &FontAtlasMisfitError{
			Required:  required,
			Available: tex.Width(),
		}
	}

	config := defaultFontConfig()
	for _, opt := range opts {
		opt(&config)
	}

	glass.Logger().Debug("text: monospace font bound",
		"atlas", atlas.Handle().String(),
		"char_width", charWidth, "char_height", charHeight)

	return &MonospaceFont[P]{
		atlas:      atlas,
		charWidth:  charWidth,
		charHeight: charHeight,
		config:     config,
	}, nil
}

// CharWidth returns the width of a glyph cell.
func (f *MonospaceFont[P]) CharWidth() int {
	return f.charWidth
}

// CharHeight returns the height of a glyph cell.
func (f *MonospaceFont[P]) CharHeight() int {
	return f.charHeight
}

// Code returns the atlas index for r.
func (f *MonospaceFont[P]) Code(r rune) int {
	if r < 0 {
		r = utf8.RuneError
	}
	cm := f.config.encoding
	if cm == nil {
		return int(r)
	}
	if b, ok := cm.EncodeRune(r); ok {
		return int(b)
	}
	if b, ok := cm.EncodeRune(f.config.fallback); ok {
		return int(b)
	}
	return 0
}

// CellRect returns the atlas rectangle holding the glyph for r.
// Glyphs whose cell lies beyond the atlas simply draw nothing.
func (f *MonospaceFont[P]) CellRect(r rune) geom.Rect[int] {
	code := f.Code(r)
	col := code % AtlasColumns
	row := code / AtlasColumns
	return geom.NewRect(col*f.charWidth, row*f.charHeight, f.charWidth, f.charHeight)
}

// WriteChar stamps the glyph for r into dst with its top-left corner at
// (x, y). Parts of the cell outside dst are clipped.
func (f *MonospaceFont[P]) WriteChar(r rune, dst *glass.Texture[P], x, y int) error {
	atlas, ok := f.atlas.Get()
	if !ok {
		return ErrAtlasReleased
	}

	target := geom.NewRect(x, y, f.charWidth, f.charHeight)
	atlas.BlitTo(dst, f.CellRect(r), target)
	return nil
}

// WriteString writes s left to right starting at (x, y), one cell per
// rune. It stops at the first failure; glyphs already written stay in
// dst.
func (f *MonospaceFont[P]) WriteString(s string, dst *glass.Texture[P], x, y int) error {
	i := 0
	for _, r := range s {
		if err := f.WriteChar(r, dst, x+i*f.charWidth, y); err != nil {
			return err
		}
		i++
	}
	return nil
}

// MeasureString returns the size in pixels that WriteString covers for s.
func (f *MonospaceFont[P]) MeasureString(s string) (width, height int) {
	return utf8.RuneCountInString(s) * f.charWidth, f.charHeight
}
