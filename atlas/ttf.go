package atlas

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/glass"
)

// CheckMonospace reports whether every printable ASCII glyph in a
// TrueType/OpenType font has the same advance width. It returns a
// *NotMonospaceError naming the first glyph that differs.
func CheckMonospace(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("atlas: failed to parse font: %w", err)
	}

	var want float32
	for r := rune(0x21); r <= 0x7e; r++ {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			continue
		}
		adv := face.HorizontalAdvance(gid)
		if want == 0 {
			want = adv
			continue
		}
		if adv != want {
			return &NotMonospaceError{Rune: r, Advance: adv, Want: want}
		}
	}
	return nil
}

// FromTTF renders an atlas from TrueType/OpenType data at size pixels per
// em. The font must be monospace (see CheckMonospace).
func FromTTF(data []byte, size float64, opts ...Option) (*glass.RGBATexture, error) {
	if err := CheckMonospace(data); err != nil {
		return nil, err
	}
	face, err := newTTFFace(data, size)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = face.Close()
	}()

	return FromFace(face, opts...)
}

// FromTTFFile is FromTTF for a font file on disk.
func FromTTFFile(path string, size float64, opts ...Option) (*glass.RGBATexture, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to read font file: %w", err)
	}
	return FromTTF(data, size, opts...)
}

// TTFCellSize returns the cell size FromTTF derives for data at size.
func TTFCellSize(data []byte, size float64) (width, height int, err error) {
	face, err := newTTFFace(data, size)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		_ = face.Close()
	}()
	width, height = CellSize(face)
	return width, height, nil
}

func newTTFFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("atlas: failed to create face: %w", err)
	}
	return face, nil
}
