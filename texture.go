package glass

import (
	"github.com/gogpu/glass/bitmap"
)

// Texture owns a bitmap and its declared dimensions.
//
// Width and Height always equal the dimensions the bitmap was allocated
// with. A Texture is not safe for concurrent mutation.
type Texture[P any] struct {
	width  int
	height int
	bitmap bitmap.Bitmap[P]
}

// RGBATexture is a texture backed by a packed RGBA8 bitmap.
type RGBATexture = Texture[uint32]

// NewTexture wraps b in a texture. The texture takes ownership of b;
// callers must not keep writing to b through other paths.
func NewTexture[P any](b bitmap.Bitmap[P]) *Texture[P] {
	Logger().Debug("glass: texture created", "width", b.Width(), "height", b.Height())
	return &Texture[P]{
		width:  b.Width(),
		height: b.Height(),
		bitmap: b,
	}
}

// NewRGBATexture creates a blank, opaque black RGBA texture.
func NewRGBATexture(width, height int) *RGBATexture {
	return NewTexture[uint32](bitmap.NewRGBA8(width, height))
}

// NewIndexedTexture creates a texture of palette indices, all zero.
func NewIndexedTexture(width, height int) *Texture[uint8] {
	return NewTexture[uint8](bitmap.NewIndexed8(width, height))
}

// Width returns the width of the texture in pixels.
func (t *Texture[P]) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture[P]) Height() int {
	return t.height
}

// Bitmap returns the bitmap owned by the texture.
func (t *Texture[P]) Bitmap() bitmap.Bitmap[P] {
	return t.bitmap
}

// At returns the pixel at (x, y); ok is false outside the texture.
func (t *Texture[P]) At(x, y int) (p P, ok bool) {
	return t.bitmap.Read(x, y)
}

// Set writes a pixel at (x, y). Out-of-range writes are dropped.
func (t *Texture[P]) Set(x, y int, p P) {
	t.bitmap.Write(x, y, p)
}

// Resize returns a new blank texture of the requested size, backed by the
// same kind of bitmap. The contents of t are not carried over; blit t into
// the result before discarding it if they are needed.
func (t *Texture[P]) Resize(width, height int) *Texture[P] {
	Logger().Debug("glass: texture resized",
		"from_width", t.width, "from_height", t.height,
		"width", width, "height", height)
	return NewTexture(t.bitmap.Alloc(width, height))
}
