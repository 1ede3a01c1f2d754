package glass

import (
	"github.com/gogpu/glass/bitmap"
	"github.com/gogpu/glass/geom"
)

// Blit copies the region srcRect of src into the region dstRect of dst and
// returns the number of pixels written.
//
// Both rectangles are in their own bitmap's pixel coordinates and may lie
// partly or entirely outside it, including at negative origins. Each one
// is clipped against its own bitmap independently: the origin is floored
// at zero and the extent shrinks by the spill on both sides. The copied
// area is the smaller of the two clipped extents on each axis, walked in
// lock-step from the two clipped origins.
//
// Writes are plain overwrites. A request that falls outside either bitmap
// copies nothing. Overlapping blits within a single bitmap are not
// supported; pixels are copied one at a time in row-major order with no
// intermediate buffer.
func Blit[P any](dst, src bitmap.Bitmap[P], srcRect, dstRect geom.Rect[int]) int {
	cs := srcRect.Clip(src.Width(), src.Height())
	ct := dstRect.Clip(dst.Width(), dst.Height())

	cols := min(cs.Width, ct.Width)
	rows := min(cs.Height, ct.Height)

	n := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p, ok := src.Read(cs.X+x, cs.Y+y)
			if !ok {
				continue
			}
			dst.Write(ct.X+x, ct.Y+y, p)
			n++
		}
	}
	return n
}

// BlitTo copies srcRect of t into dstRect of dst. See Blit for the
// clipping rules.
func (t *Texture[P]) BlitTo(dst *Texture[P], srcRect, dstRect geom.Rect[int]) int {
	return Blit(dst.bitmap, t.bitmap, srcRect, dstRect)
}

// Draw copies the whole of src into t with its top-left corner at (x, y).
func (t *Texture[P]) Draw(src *Texture[P], x, y int) int {
	r := geom.NewRect(0, 0, src.width, src.height)
	return src.BlitTo(t, r, r.Translate(x, y))
}
