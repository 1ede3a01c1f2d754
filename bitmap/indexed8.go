package bitmap

import (
	"image"
	"image/color"
)

// Indexed8 is a bitmap storing one 8-bit palette index per pixel.
// It carries no palette of its own; one is supplied on conversion.
type Indexed8 struct {
	width  int
	height int
	pitch  int
	pix    []uint8
}

var _ Bitmap[uint8] = (*Indexed8)(nil)

// NewIndexed8 creates a bitmap with every index set to 0.
func NewIndexed8(width, height int) *Indexed8 {
	width, height = dims(width, height)
	return &Indexed8{
		width:  width,
		height: height,
		pitch:  width,
		pix:    make([]uint8, width*height),
	}
}

func (b *Indexed8) Width() int  { return b.width }
func (b *Indexed8) Height() int { return b.height }
func (b *Indexed8) Pitch() int  { return b.pitch }

// Pix returns the backing index storage.
func (b *Indexed8) Pix() []uint8 { return b.pix }

func (b *Indexed8) Read(x, y int) (uint8, bool) {
	i := index(x, y, b.width, b.height, b.pitch)
	if i < 0 || i >= len(b.pix) {
		return 0, false
	}
	return b.pix[i], true
}

func (b *Indexed8) Write(x, y int, p uint8) {
	i := index(x, y, b.width, b.height, b.pitch)
	if i < 0 || i >= len(b.pix) {
		return
	}
	b.pix[i] = p
}

func (b *Indexed8) Alloc(width, height int) Bitmap[uint8] {
	return NewIndexed8(width, height)
}

// ToImage copies the indices into an image.Paletted using palette.
// Every stored index must be valid for palette.
func (b *Indexed8) ToImage(palette color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.width, b.height), palette)
	for y := 0; y < b.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+b.width], b.pix[y*b.pitch:])
	}
	return img
}
