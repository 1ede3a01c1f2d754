package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrAtlasReleased is returned when a font's glyph atlas no longer
	// exists. The font cannot recover; bind a new font to a live atlas.
	ErrAtlasReleased = errors.New("text: glyph atlas has been released")

	// ErrInvalidCellSize is returned when a glyph cell dimension is not
	// positive.
	ErrInvalidCellSize = errors.New("text: glyph cell size must be positive")
)

// FontAtlasMisfitError is returned when a font's glyph grid is wider than
// its atlas texture.
type FontAtlasMisfitError struct {
	// Required is the width in texels the glyph grid needs.
	Required int

	// Available is the actual width of the atlas.
	Available int
}

func (e *FontAtlasMisfitError) Error() string {
	return fmt.Sprintf("text: font requires %d texels horizontally, but atlas is only %d texels wide",
		e.Required, e.Available)
}
