// Package geom provides the axis-aligned rectangle used by glass for
// clipping texture regions.
//
// Rectangles are generic over any integer or floating point type. Width
// and height are not required to be non-negative; every helper in this
// package resolves degenerate extents instead of rejecting them.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a Rect can be expressed in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Rect is an axis-aligned rectangle with origin (X, Y).
// The far corner (X2, Y2) is exclusive.
type Rect[T Number] struct {
	X, Y          T
	Width, Height T
}

// NewRect creates a rectangle from an origin and extents.
func NewRect[T Number](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

// X2 returns the exclusive right edge.
func (r Rect[T]) X2() T {
	return r.X + r.Width
}

// Y2 returns the exclusive bottom edge.
func (r Rect[T]) Y2() T {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no area.
func (r Rect[T]) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns Width*Height, or zero for an empty rectangle.
func (r Rect[T]) Area() T {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Translate returns r moved by (dx, dy).
func (r Rect[T]) Translate(dx, dy T) Rect[T] {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect[T]) Contains(x, y T) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// Clamp constrains both the origin and the far corner of r to lie within
// bounds. The extents of the result shrink accordingly and are never
// negative. The far corner of r may lie beyond the range of T; the far
// corner of bounds must not.
func (r Rect[T]) Clamp(bounds Rect[T]) Rect[T] {
	x := clamp(r.X, bounds.X, bounds.X2())
	y := clamp(r.Y, bounds.Y, bounds.Y2())
	x2 := addClamp(r.X, r.Width, bounds.X, bounds.X2())
	y2 := addClamp(r.Y, r.Height, bounds.Y, bounds.Y2())
	return Rect[T]{
		X:      x,
		Y:      y,
		Width:  over(x2, x),
		Height: over(y2, y),
	}
}

// DistanceToBorder returns the signed amount by which r protrudes outside
// bounds on each axis. Protrusion past the low edge is negative, past the
// high edge positive; a rectangle sticking out on both sides reports the
// sum. A fully contained rectangle reports (0, 0).
//
// Negative results wrap for unsigned T.
func (r Rect[T]) DistanceToBorder(bounds Rect[T]) (dx, dy T) {
	dx = over(r.X2(), bounds.X2()) - over(bounds.X, r.X)
	dy = over(r.Y2(), bounds.Y2()) - over(bounds.Y, r.Y)
	return dx, dy
}

// Spill records how far a rectangle extends past each edge of a
// bitmap-sized area. All fields are non-negative.
type Spill[T Number] struct {
	Left, Top, Right, Bottom T
}

// Spill measures how far r extends past x<0, y<0, x2>width and
// y2>height. A protrusion too large to be represented in T wraps.
func (r Rect[T]) Spill(width, height T) Spill[T] {
	var s Spill[T]
	s.Left, s.Right = spillAxis(r.X, r.Width, width)
	s.Top, s.Bottom = spillAxis(r.Y, r.Height, height)
	return s
}

// Clip trims r to the area [0,width)×[0,height). The origin is floored at
// zero and each extent is reduced by the spill on both of its sides. A
// rectangle that does not intersect the area comes back with a zero
// extent. Extents reaching past the range of T are trimmed correctly.
func (r Rect[T]) Clip(width, height T) Rect[T] {
	x, w := clipAxis(r.X, r.Width, width)
	y, h := clipAxis(r.Y, r.Height, height)
	return Rect[T]{X: x, Y: y, Width: w, Height: h}
}

// String returns a human-readable form of r.
func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(x=%v, y=%v, w=%v, h=%v)", r.X, r.Y, r.Width, r.Height)
}

// Convert changes the numeric type of a rectangle. Conversion follows Go's
// numeric conversion rules for each field.
func Convert[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{
		X:      U(r.X),
		Y:      U(r.Y),
		Width:  U(r.Width),
		Height: U(r.Height),
	}
}

// over returns a-b when a exceeds b and zero otherwise.
// It never underflows for unsigned T.
func over[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return 0
}

func clamp[T Number](v, lo, hi T) T {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

// addClamp returns clamp(a+b, lo, hi), treating a sum that overflows T as
// lying past the matching bound.
func addClamp[T Number](a, b, lo, hi T) T {
	var zero T
	s := a + b
	switch {
	case b > zero && s < a:
		return max(hi, lo)
	case b < zero && s > a:
		return lo
	}
	return clamp(s, lo, hi)
}

// clipAxis trims the span [x, x+w) to [0, size) without forming x+w.
func clipAxis[T Number](x, w, size T) (T, T) {
	var zero T
	x0 := max(x, zero)
	if w <= zero {
		return x0, zero
	}
	rem := w
	if x < zero {
		// x and w have opposite signs, so the sum cannot overflow.
		rem = w + x
		if rem <= zero {
			return x0, zero
		}
	}
	return x0, min(rem, over(size, x0))
}

// spillAxis returns how far [x, x+w) extends below 0 and past size.
func spillAxis[T Number](x, w, size T) (lo, hi T) {
	var zero T
	lo = over(zero, x)
	switch {
	case x < zero:
		if w > zero {
			hi = over(x+w, size)
		}
	case x <= size:
		hi = over(w, size-x)
	default:
		hi = over(x-size+w, zero)
	}
	return lo, hi
}
