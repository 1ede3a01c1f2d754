package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("atlas: empty font data")

	// ErrInvalidCellSize is returned when the glyph cell or row count is
	// not positive.
	ErrInvalidCellSize = errors.New("atlas: invalid cell size")
)

// NotMonospaceError is returned when a font's glyphs do not all share one
// advance width.
type NotMonospaceError struct {
	Rune    rune
	Advance float32
	Want    float32
}

func (e *NotMonospaceError) Error() string {
	return fmt.Sprintf("atlas: font is not monospace: %q advances %g units, want %g", e.Rune, e.Advance, e.Want)
}
