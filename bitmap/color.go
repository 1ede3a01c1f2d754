package bitmap

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor parses a CSS color string ("white", "#ff8800",
// "rgb(10 20 30 / 50%)", ...) into a packed RGBA8 texel.
func ParseColor(s string) (uint32, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("bitmap: invalid color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return PackRGBA(r, g, b, a), nil
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level color constants.
func MustParseColor(s string) uint32 {
	p, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return p
}
