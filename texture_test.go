package glass

import (
	"testing"

	"github.com/gogpu/glass/bitmap"
)

func TestNewRGBATexture(t *testing.T) {
	tex := NewRGBATexture(12, 7)
	if tex.Width() != 12 || tex.Height() != 7 {
		t.Fatalf("size = %dx%d, want 12x7", tex.Width(), tex.Height())
	}
	b := tex.Bitmap()
	if b.Width() != tex.Width() || b.Height() != tex.Height() {
		t.Errorf("bitmap size %dx%d does not match texture", b.Width(), b.Height())
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 12; x++ {
			if p, ok := tex.At(x, y); !ok || p != bitmap.OpaqueBlack {
				t.Fatalf("At(%d, %d) = %#x, %v; want opaque black", x, y, p, ok)
			}
		}
	}
}

func TestTextureSetAt(t *testing.T) {
	tex := NewRGBATexture(3, 3)
	tex.Set(2, 2, 0xffffffff)
	tex.Set(3, 3, 0xffffffff) // dropped

	if p, _ := tex.At(2, 2); p != 0xffffffff {
		t.Errorf("At(2, 2) = %#x", p)
	}
	if _, ok := tex.At(3, 3); ok {
		t.Error("At(3, 3) should be absent")
	}
}

// TestTextureResize verifies that resizing always yields a blank texture
// no matter what the original held.
func TestTextureResize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"grow", 20, 15},
		{"shrink", 2, 3},
		{"same", 8, 8},
		{"empty", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := NewRGBATexture(8, 8)
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					old.Set(x, y, bitmap.PackRGBA(uint8(x), uint8(y), 200, 255))
				}
			}

			tex := old.Resize(tt.width, tt.height)
			if tex == old {
				t.Fatal("Resize returned the original texture")
			}
			if tex.Width() != tt.width || tex.Height() != tt.height {
				t.Fatalf("size = %dx%d, want %dx%d", tex.Width(), tex.Height(), tt.width, tt.height)
			}
			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					if p, _ := tex.At(x, y); p != bitmap.OpaqueBlack {
						t.Fatalf("At(%d, %d) = %#x, want opaque black", x, y, p)
					}
				}
			}
			// The original is untouched.
			if p, _ := old.At(7, 7); p != bitmap.PackRGBA(7, 7, 200, 255) {
				t.Errorf("original changed: %#x", p)
			}
		})
	}
}

func TestTextureResizeKeepsFormat(t *testing.T) {
	tex := NewIndexedTexture(4, 4)
	tex.Set(1, 1, 9)
	r := tex.Resize(6, 2)
	if _, ok := r.Bitmap().(*bitmap.Indexed8); !ok {
		t.Fatalf("Resize changed bitmap kind to %T", r.Bitmap())
	}
	if p, _ := r.At(1, 1); p != 0 {
		t.Errorf("At(1, 1) = %d, want 0", p)
	}
}

func TestTextureResizeNegative(t *testing.T) {
	tex := NewRGBATexture(4, 4).Resize(-3, 5)
	if tex.Width() != 0 || tex.Height() != 5 {
		t.Errorf("size = %dx%d, want 0x5", tex.Width(), tex.Height())
	}
	if tex.Width() != tex.Bitmap().Width() {
		t.Error("texture width disagrees with bitmap")
	}
}
