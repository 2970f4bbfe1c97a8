package fixmath

import (
	"image"

	xfixed "golang.org/x/image/math/fixed"
)

// Conversions between Q16.16 values and the 26.6 fixed-point types used
// by golang.org/x/image (font metrics, rasterizer coordinates). Q16.16
// carries ten extra fractional bits, so converting down rounds half up
// and converting back up is exact.

// ToInt26_6 converts f to 26.6 fixed point, rounding half up. The bias is
// added in 64 bits so values near MaxValue do not wrap.
func ToInt26_6(f Fixed) xfixed.Int26_6 {
	return xfixed.Int26_6((int64(f) + 1<<9) >> 10)
}

// FromInt26_6 converts a 26.6 value to Q16.16, saturating on overflow.
func FromInt26_6(v xfixed.Int26_6) Fixed {
	return saturate(int64(v) << 10)
}

// ToPoint26_6 converts a tuple to a 26.6 point.
func ToPoint26_6(t Tuple2i) xfixed.Point26_6 {
	return xfixed.Point26_6{X: ToInt26_6(t.X), Y: ToInt26_6(t.Y)}
}

// FromPoint26_6 converts a 26.6 point to a tuple.
func FromPoint26_6(p xfixed.Point26_6) Tuple2i {
	return Tuple2i{X: FromInt26_6(p.X), Y: FromInt26_6(p.Y)}
}

// RectToImage converts r to the half-open image.Rectangle convention.
func RectToImage(r Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return NewRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}
