// Package bitmap provides pixel-addressable 2D buffers for glass.
//
// A Bitmap is parameterized by its pixel value type. All implementations
// share the same contract:
//
//   - Storage is row-major with Pitch elements per row (Pitch equals Width
//     at construction).
//   - Read outside [0,Width)×[0,Height) reports absence instead of failing.
//   - Write outside the same area is a silent no-op. Storage never grows.
//   - Alloc produces a new blank bitmap of the same kind, which is how a
//     texture can be resized without knowing its pixel format.
//
// Two formats are provided: RGBA8 (one packed uint32 per pixel, initially
// opaque black) and Indexed8 (one palette index per pixel, initially 0).
package bitmap

// Bitmap is a width×height grid of pixels of type P.
type Bitmap[P any] interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// Pitch returns the number of elements per row in backing storage.
	Pitch() int

	// Read returns the pixel at (x, y). ok is false when the coordinates
	// are outside the bitmap.
	Read(x, y int) (p P, ok bool)

	// Write stores p at (x, y). Out-of-range writes are dropped.
	Write(x, y int, p P)

	// Alloc returns a new blank bitmap of the same kind with the given
	// dimensions. Negative dimensions are treated as zero.
	Alloc(width, height int) Bitmap[P]
}

// index returns the storage offset of (x, y) for a bitmap with the given
// dimensions, or -1 when the coordinates are out of range.
func index(x, y, width, height, pitch int) int {
	if x < 0 || x >= width || y < 0 || y >= height {
		return -1
	}
	return y*pitch + x
}

// dims normalizes requested dimensions.
func dims(width, height int) (int, int) {
	return max(width, 0), max(height, 0)
}
