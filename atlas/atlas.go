// Package atlas builds glyph-atlas textures for text.MonospaceFont.
//
// An atlas is a grid sixteen cells wide. Cell c (column c%16, row c/16)
// holds the glyph for character code c. Atlases can be rendered from any
// golang.org/x/image/font.Face, from TrueType/OpenType data, or taken
// from an already decoded image.
package atlas

import (
	"image"
	"image/color"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/bitmap"
)

// Columns is the number of cells per atlas row.
const Columns = 16

// CellSize derives a glyph cell size from face metrics: the advance of
// 'M' by the line height.
func CellSize(face font.Face) (width, height int) {
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv, _ = face.GlyphAdvance('?')
	}
	m := face.Metrics()
	return adv.Ceil(), max(m.Height.Ceil(), (m.Ascent + m.Descent).Ceil())
}

// FromFace renders a glyph atlas from face.
//
// Every printable, non-space character whose code falls within the atlas
// is drawn at the top-left of its cell with the baseline one ascent below
// the cell top. Glyphs are cropped to their cell.
func FromFace(face font.Face, opts ...Option) (*glass.RGBATexture, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cw, ch := cfg.cellWidth, cfg.cellHeight
	if cw == 0 && ch == 0 {
		cw, ch = CellSize(face)
	}
	if cw <= 0 || ch <= 0 || cfg.rows <= 0 {
		return nil, ErrInvalidCellSize
	}

	img := image.NewNRGBA(image.Rect(0, 0, Columns*cw, cfg.rows*ch))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(texelColor(cfg.background)), image.Point{}, xdraw.Src)

	fg := image.NewUniform(texelColor(cfg.foreground))
	ascent := face.Metrics().Ascent.Ceil()
	drawn := 0
	for code := 0; code < Columns*cfg.rows; code++ {
		r, ok := cellRune(code, cfg)
		if !ok || !unicode.IsGraphic(r) || unicode.IsSpace(r) {
			continue
		}
		cx := (code % Columns) * cw
		cy := (code / Columns) * ch
		cell := img.SubImage(image.Rect(cx, cy, cx+cw, cy+ch)).(*image.NRGBA)
		d := font.Drawer{
			Dst:  cell,
			Src:  fg,
			Face: face,
			Dot:  fixed.P(cx, cy+ascent),
		}
		d.DrawString(string(r))
		drawn++
	}

	glass.Logger().Debug("atlas: built from face",
		"cell_width", cw, "cell_height", ch, "rows", cfg.rows, "glyphs", drawn)

	return glass.NewTexture[uint32](bitmap.RGBA8FromImage(img)), nil
}

// Builtin renders an atlas from the 7x13 fixed font in
// golang.org/x/image/font/basicfont. Its cells are 7×13 texels.
func Builtin(opts ...Option) *glass.RGBATexture {
	tex, err := FromFace(basicfont.Face7x13, opts...)
	if err != nil {
		// Only reachable through an explicit invalid WithCellSize/WithRows.
		panic(err)
	}
	return tex
}

// BuiltinCellSize is the cell size of Builtin atlases.
func BuiltinCellSize() (width, height int) {
	return CellSize(basicfont.Face7x13)
}

// FromImage converts a decoded atlas image (e.g. a PNG sprite sheet) into
// a texture.
func FromImage(img image.Image) *glass.RGBATexture {
	return glass.NewTexture[uint32](bitmap.RGBA8FromImage(img))
}

// cellRune returns the rune drawn into cell code.
func cellRune(code int, cfg config) (rune, bool) {
	if cfg.encoding == nil {
		return rune(code), true
	}
	if code > 0xff {
		return 0, false
	}
	return cfg.encoding.DecodeByte(byte(code)), true
}

func texelColor(p uint32) color.NRGBA {
	r, g, b, a := bitmap.UnpackRGBA(p)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
