package bitmap

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// OpaqueBlack is the initial value of every RGBA8 pixel.
const OpaqueBlack uint32 = 0xFF000000

// PackRGBA packs four 8-bit channels into a single texel.
// From most to least significant byte the layout is alpha, blue, green,
// red, so the little-endian byte order of a texel is R, G, B, A.
func PackRGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA splits a packed texel into its channels.
func UnpackRGBA(p uint32) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// RGBA8 is a bitmap storing one packed 32-bit color per pixel.
type RGBA8 struct {
	width  int
	height int
	pitch  int
	pix    []uint32
}

var _ Bitmap[uint32] = (*RGBA8)(nil)

// NewRGBA8 creates a bitmap filled with OpaqueBlack.
func NewRGBA8(width, height int) *RGBA8 {
	width, height = dims(width, height)
	b := &RGBA8{
		width:  width,
		height: height,
		pitch:  width,
		pix:    make([]uint32, width*height),
	}
	b.Fill(OpaqueBlack)
	return b
}

// Width returns the width of the bitmap.
func (b *RGBA8) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *RGBA8) Height() int {
	return b.height
}

// Pitch returns the number of texels per row.
func (b *RGBA8) Pitch() int {
	return b.pitch
}

// Pix returns the backing texel storage.
func (b *RGBA8) Pix() []uint32 {
	return b.pix
}

// Read returns the texel at (x, y).
func (b *RGBA8) Read(x, y int) (uint32, bool) {
	i := index(x, y, b.width, b.height, b.pitch)
	if i < 0 || i >= len(b.pix) {
		return 0, false
	}
	return b.pix[i], true
}

// Write stores a texel at (x, y).
func (b *RGBA8) Write(x, y int, p uint32) {
	i := index(x, y, b.width, b.height, b.pitch)
	if i < 0 || i >= len(b.pix) {
		return
	}
	b.pix[i] = p
}

// Alloc returns a new opaque black RGBA8 bitmap.
func (b *RGBA8) Alloc(width, height int) Bitmap[uint32] {
	return NewRGBA8(width, height)
}

// Fill sets every texel to p.
func (b *RGBA8) Fill(p uint32) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// ToImage converts the bitmap to a non-premultiplied image for
// presentation or encoding.
func (b *RGBA8) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.width; x++ {
			r, g, bl, a := UnpackRGBA(b.pix[y*b.pitch+x])
			o := x * 4
			row[o+0] = r
			row[o+1] = g
			row[o+2] = bl
			row[o+3] = a
		}
	}
	return img
}

// RGBA8FromImage converts any image into an RGBA8 bitmap. The image's
// bounds are translated so that its minimum point becomes (0, 0).
func RGBA8FromImage(img image.Image) *RGBA8 {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	b := NewRGBA8(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < b.width; x++ {
			o := x * 4
			b.pix[y*b.pitch+x] = PackRGBA(row[o+0], row[o+1], row[o+2], row[o+3])
		}
	}
	return b
}

// ColorToRGBA packs a color.Color into a texel.
func ColorToRGBA(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return PackRGBA(n.R, n.G, n.B, n.A)
}
