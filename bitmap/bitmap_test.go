package bitmap

import (
	"image"
	"image/color"
	"testing"
)

func TestNewRGBA8(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"regular", 16, 8, 16, 8},
		{"1x1", 1, 1, 1, 1},
		{"zero", 0, 0, 0, 0},
		{"negative", -4, 3, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewRGBA8(tt.width, tt.height)
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
			if b.Pitch() != tt.wantW {
				t.Errorf("Pitch() = %d, want %d", b.Pitch(), tt.wantW)
			}
			if len(b.Pix()) != tt.wantW*tt.wantH {
				t.Errorf("len(Pix()) = %d, want %d", len(b.Pix()), tt.wantW*tt.wantH)
			}
			for i, p := range b.Pix() {
				if p != OpaqueBlack {
					t.Fatalf("Pix()[%d] = %#08x, want opaque black", i, p)
				}
			}
		})
	}
}

func TestRGBA8ReadWrite(t *testing.T) {
	b := NewRGBA8(4, 3)
	b.Write(1, 2, 0x11223344)
	b.Write(3, 0, 0xdeadbeef)

	if p, ok := b.Read(1, 2); !ok || p != 0x11223344 {
		t.Errorf("Read(1, 2) = %#x, %v", p, ok)
	}
	if p, ok := b.Read(3, 0); !ok || p != 0xdeadbeef {
		t.Errorf("Read(3, 0) = %#x, %v", p, ok)
	}
	// Row-major layout.
	if got := b.Pix()[2*4+1]; got != 0x11223344 {
		t.Errorf("Pix()[9] = %#x, want row-major placement", got)
	}
	if p, _ := b.Read(0, 1); p != OpaqueBlack {
		t.Errorf("untouched pixel = %#x", p)
	}
}

func TestRGBA8OutOfRange(t *testing.T) {
	sizes := [][2]int{{0, 0}, {1, 1}, {4, 3}, {3, 4}}
	for _, sz := range sizes {
		b := NewRGBA8(sz[0], sz[1])
		w, h := sz[0], sz[1]
		coords := [][2]int{
			{-1, 0}, {0, -1}, {w, 0}, {0, h}, {w, h}, {w + 5, 0}, {-3, -3},
			{w, h - 1}, // would alias the next row with a pitch-only check
		}
		for _, c := range coords {
			if _, ok := b.Read(c[0], c[1]); ok {
				t.Errorf("%dx%d: Read(%d, %d) ok, want absent", w, h, c[0], c[1])
			}
			b.Write(c[0], c[1], 0x12345678)
		}
		for i, p := range b.Pix() {
			if p != OpaqueBlack {
				t.Errorf("%dx%d: out-of-range write landed at %d", w, h, i)
			}
		}
		if len(b.Pix()) != w*h {
			t.Errorf("%dx%d: storage grew to %d", w, h, len(b.Pix()))
		}
	}
}

func TestRGBA8Alloc(t *testing.T) {
	b := NewRGBA8(2, 2)
	b.Fill(0xffffffff)
	n := b.Alloc(5, 6)
	if n.Width() != 5 || n.Height() != 6 {
		t.Fatalf("Alloc size = %dx%d", n.Width(), n.Height())
	}
	if _, ok := n.(*RGBA8); !ok {
		t.Fatalf("Alloc returned %T, want *RGBA8", n)
	}
	if p, _ := n.Read(4, 5); p != OpaqueBlack {
		t.Errorf("Alloc pixel = %#x, want opaque black", p)
	}
}

func TestPackRGBA(t *testing.T) {
	p := PackRGBA(0x11, 0x22, 0x33, 0x44)
	if p != 0x44332211 {
		t.Errorf("PackRGBA() = %#08x, want 0x44332211", p)
	}
	r, g, b, a := UnpackRGBA(p)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("UnpackRGBA() = %x %x %x %x", r, g, b, a)
	}
	if PackRGBA(0, 0, 0, 255) != OpaqueBlack {
		t.Error("opaque black packing mismatch")
	}
}

func TestRGBA8ToImage(t *testing.T) {
	b := NewRGBA8(3, 2)
	b.Write(2, 1, PackRGBA(10, 20, 30, 40))
	img := b.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	got := img.NRGBAAt(2, 1)
	if got != (color.NRGBA{10, 20, 30, 40}) {
		t.Errorf("NRGBAAt(2, 1) = %v", got)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("NRGBAAt(0, 0) = %v, want opaque black", got)
	}
}

func TestRGBA8FromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(6, 6, color.RGBA{255, 0, 0, 255})

	b := RGBA8FromImage(src)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if p, _ := b.Read(1, 1); p != PackRGBA(255, 0, 0, 255) {
		t.Errorf("Read(1, 1) = %#08x, want opaque red", p)
	}
	if p, _ := b.Read(0, 0); p != 0 {
		t.Errorf("Read(0, 0) = %#08x, want transparent", p)
	}

	round := RGBA8FromImage(b.ToImage())
	for i := range b.Pix() {
		if round.Pix()[i] != b.Pix()[i] {
			t.Fatalf("round trip differs at %d", i)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	if got := ColorToRGBA(color.White); got != 0xffffffff {
		t.Errorf("ColorToRGBA(White) = %#08x", got)
	}
	if got := ColorToRGBA(color.Black); got != OpaqueBlack {
		t.Errorf("ColorToRGBA(Black) = %#08x", got)
	}
}

func TestIndexed8(t *testing.T) {
	b := NewIndexed8(3, 2)
	if b.Pitch() != 3 {
		t.Errorf("Pitch() = %d", b.Pitch())
	}
	b.Write(2, 1, 7)
	b.Write(3, 1, 9)
	if p, ok := b.Read(2, 1); !ok || p != 7 {
		t.Errorf("Read(2, 1) = %d, %v", p, ok)
	}
	if _, ok := b.Read(3, 1); ok {
		t.Error("Read(3, 1) should be absent")
	}
	if p, _ := b.Read(0, 0); p != 0 {
		t.Errorf("initial index = %d, want 0", p)
	}
	if n := b.Alloc(-1, 4); n.Width() != 0 || n.Height() != 4 {
		t.Errorf("Alloc(-1, 4) = %dx%d", n.Width(), n.Height())
	}

	pal := color.Palette{color.Black, color.White, color.Gray{0x80}, color.Gray{1}, color.Gray{2}, color.Gray{3}, color.Gray{4}, color.Gray{5}}
	img := b.ToImage(pal)
	if img.ColorIndexAt(2, 1) != 7 || img.ColorIndexAt(0, 0) != 0 {
		t.Errorf("ToImage indices = %d, %d", img.ColorIndexAt(2, 1), img.ColorIndexAt(0, 0))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"white", 0xffffffff, false},
		{"#ff0000", PackRGBA(255, 0, 0, 255), false},
		{"#00ff0080", PackRGBA(0, 255, 0, 128), false},
		{"black", OpaqueBlack, false},
		{"not-a-color", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%q) = %#08x, want %#08x", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor did not panic on bad input")
		}
	}()
	MustParseColor("nope")
}
