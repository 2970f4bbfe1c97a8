package fixmath

// Transform composition type flags. The flags are a conservative upper
// bound on what has been applied to the matrix: they may over-report (a
// rotation by zero still sets TypeRotate) but never under-report. They are
// only ever OR'd together and reset by Clear or Set, so composition fast
// paths can trust an absent flag.
const (
	TypeIdentity  = 0
	TypeTranslate = 1
	TypeScale     = 2
	TypeRotate    = 4
)

// Transform is a mutable 2x3 fixed-point affine matrix:
//
//	| m00 m01 m02 |
//	| m10 m11 m12 |
//
// mapping (x, y) to (m00*x + m01*y + m02, m10*x + m11*y + m12).
//
// A Transform is meant to be owned by a single sprite and mutated during
// that sprite's update phase; it has no internal locking.
type Transform struct {
	m00, m01, m02 Fixed
	m10, m11, m12 Fixed
	typ           int
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	t := &Transform{}
	t.Clear()
	return t
}

// Clear resets the transform to identity.
func (t *Transform) Clear() {
	t.m00, t.m01, t.m02 = One, 0, 0
	t.m10, t.m11, t.m12 = 0, One, 0
	t.typ = TypeIdentity
}

// Set copies u into t, including its type flags.
func (t *Transform) Set(u *Transform) {
	*t = *u
}

// Type returns the composition type flags accumulated so far.
func (t *Transform) Type() int {
	return t.typ
}

// TranslateX returns the x translation component.
func (t *Transform) TranslateX() Fixed { return t.m02 }

// TranslateY returns the y translation component.
func (t *Transform) TranslateY() Fixed { return t.m12 }

// ScaleX returns the m00 entry.
func (t *Transform) ScaleX() Fixed { return t.m00 }

// ScaleY returns the m11 entry.
func (t *Transform) ScaleY() Fixed { return t.m11 }

// ShearX returns the m01 entry.
func (t *Transform) ShearX() Fixed { return t.m01 }

// ShearY returns the m10 entry.
func (t *Transform) ShearY() Fixed { return t.m10 }

// Concatenate multiplies t by u on the right: t = t * u. Points are
// transformed as if u applied first, then the previous t.
func (t *Transform) Concatenate(u *Transform) {
	mult(t, u, t)
}

// Preconcatenate multiplies t by u on the left: t = u * t.
func (t *Transform) Preconcatenate(u *Transform) {
	mult(u, t, t)
}

// mult stores a*b into result. The type-tag special cases skip the full
// 2x2 multiply; they are pure shortcuts and produce results identical to
// the general 64-bit path.
func mult(a, b, result *Transform) {
	switch {
	case b.typ == TypeIdentity:
		result.Set(a)
		return
	case a.typ == TypeIdentity:
		result.Set(b)
		return
	case b.typ == TypeTranslate:
		m02 := saturate(int64(a.m02) + (int64(a.m00)*int64(b.m02)+int64(a.m01)*int64(b.m12))>>FractionBits)
		m12 := saturate(int64(a.m12) + (int64(a.m10)*int64(b.m02)+int64(a.m11)*int64(b.m12))>>FractionBits)
		typ := a.typ | TypeTranslate
		result.Set(a)
		result.m02, result.m12 = m02, m12
		result.typ = typ
		return
	case b.typ&TypeRotate == 0:
		// b is diagonal (scale and/or translate): column scaling plus a
		// translated offset.
		m00 := Mul(a.m00, b.m00)
		m01 := Mul(a.m01, b.m11)
		m10 := Mul(a.m10, b.m00)
		m11 := Mul(a.m11, b.m11)
		m02 := saturate(int64(a.m02) + (int64(a.m00)*int64(b.m02)+int64(a.m01)*int64(b.m12))>>FractionBits)
		m12 := saturate(int64(a.m12) + (int64(a.m10)*int64(b.m02)+int64(a.m11)*int64(b.m12))>>FractionBits)
		typ := a.typ | b.typ
		result.m00, result.m01, result.m02 = m00, m01, m02
		result.m10, result.m11, result.m12 = m10, m11, m12
		result.typ = typ
		return
	}

	// General path: full multiply with 64-bit accumulation.
	m00 := saturate((int64(a.m00)*int64(b.m00) + int64(a.m01)*int64(b.m10)) >> FractionBits)
	m01 := saturate((int64(a.m00)*int64(b.m01) + int64(a.m01)*int64(b.m11)) >> FractionBits)
	m02 := saturate(int64(a.m02) + (int64(a.m00)*int64(b.m02)+int64(a.m01)*int64(b.m12))>>FractionBits)
	m10 := saturate((int64(a.m10)*int64(b.m00) + int64(a.m11)*int64(b.m10)) >> FractionBits)
	m11 := saturate((int64(a.m10)*int64(b.m01) + int64(a.m11)*int64(b.m11)) >> FractionBits)
	m12 := saturate(int64(a.m12) + (int64(a.m10)*int64(b.m02)+int64(a.m11)*int64(b.m12))>>FractionBits)
	typ := a.typ | b.typ
	result.m00, result.m01, result.m02 = m00, m01, m02
	result.m10, result.m11, result.m12 = m10, m11, m12
	result.typ = typ
}

// Translate applies a translation by (fx, fy) in the transform's local
// coordinate space.
func (t *Transform) Translate(fx, fy Fixed) {
	if t.typ&(TypeScale|TypeRotate) == 0 {
		// Identity or translate-only: plain assignment, no multiply.
		t.m02 += fx
		t.m12 += fy
	} else {
		t.m02 = saturate(int64(t.m02) + (int64(t.m00)*int64(fx)+int64(t.m01)*int64(fy))>>FractionBits)
		t.m12 = saturate(int64(t.m12) + (int64(t.m10)*int64(fx)+int64(t.m11)*int64(fy))>>FractionBits)
	}
	t.typ |= TypeTranslate
}

// Scale applies a scale by (sx, sy).
func (t *Transform) Scale(sx, sy Fixed) {
	if t.typ&(TypeScale|TypeRotate) == 0 {
		t.m00 = sx
		t.m11 = sy
	} else {
		t.m00 = Mul(t.m00, sx)
		t.m01 = Mul(t.m01, sy)
		t.m10 = Mul(t.m10, sx)
		t.m11 = Mul(t.m11, sy)
	}
	t.typ |= TypeScale
}

// Rotate applies a rotation by a fixed-point angle in radians.
func (t *Transform) Rotate(angle Fixed) {
	cos, sin := Cos(angle), Sin(angle)
	m00 := saturate((int64(t.m00)*int64(cos) + int64(t.m01)*int64(sin)) >> FractionBits)
	m01 := saturate((int64(t.m01)*int64(cos) - int64(t.m00)*int64(sin)) >> FractionBits)
	m10 := saturate((int64(t.m10)*int64(cos) + int64(t.m11)*int64(sin)) >> FractionBits)
	m11 := saturate((int64(t.m11)*int64(cos) - int64(t.m10)*int64(sin)) >> FractionBits)
	t.m00, t.m01, t.m10, t.m11 = m00, m01, m10, m11
	t.typ |= TypeRotate
}

// Shear applies a shear by (sx, sy).
func (t *Transform) Shear(sx, sy Fixed) {
	m00 := saturate(int64(t.m00) + (int64(t.m01)*int64(sy))>>FractionBits)
	m01 := saturate(int64(t.m01) + (int64(t.m00)*int64(sx))>>FractionBits)
	m10 := saturate(int64(t.m10) + (int64(t.m11)*int64(sy))>>FractionBits)
	m11 := saturate(int64(t.m11) + (int64(t.m10)*int64(sx))>>FractionBits)
	t.m00, t.m01, t.m10, t.m11 = m00, m01, m10, m11
	t.typ |= TypeScale | TypeRotate
}

// TransformX returns the x coordinate of the transformed point (fx, fy).
func (t *Transform) TransformX(fx, fy Fixed) Fixed {
	return saturate(int64(t.m02) + (int64(t.m00)*int64(fx)+int64(t.m01)*int64(fy))>>FractionBits)
}

// TransformY returns the y coordinate of the transformed point (fx, fy).
func (t *Transform) TransformY(fx, fy Fixed) Fixed {
	return saturate(int64(t.m12) + (int64(t.m10)*int64(fx)+int64(t.m11)*int64(fy))>>FractionBits)
}

// Transform maps p through the matrix in place.
func (t *Transform) Transform(p *Tuple2i) {
	x, y := p.X, p.Y
	p.X = t.TransformX(x, y)
	p.Y = t.TransformY(x, y)
}

// Determinant returns m00*m11 - m01*m10. A zero determinant means the
// transform collapses the plane and has no inverse.
func (t *Transform) Determinant() Fixed {
	return saturate((int64(t.m00)*int64(t.m11) - int64(t.m01)*int64(t.m10)) >> FractionBits)
}

// InverseTransformX maps a device-space point back to local x. Returns the
// MaxInt32 sentinel when the transform is not invertible.
func (t *Transform) InverseTransformX(fx, fy Fixed) Fixed {
	if t.typ&TypeRotate != 0 {
		det := t.Determinant()
		if det == 0 {
			return sentinel
		}
		num := int64(fx-t.m02)*int64(t.m11) - int64(fy-t.m12)*int64(t.m01)
		return saturate(num / int64(det))
	}
	if t.typ&TypeScale != 0 {
		if t.m00 == 0 {
			return sentinel
		}
		return Div(fx-t.m02, t.m00)
	}
	return fx - t.m02
}

// InverseTransformY maps a device-space point back to local y. Returns the
// MaxInt32 sentinel when the transform is not invertible.
func (t *Transform) InverseTransformY(fx, fy Fixed) Fixed {
	if t.typ&TypeRotate != 0 {
		det := t.Determinant()
		if det == 0 {
			return sentinel
		}
		num := int64(fy-t.m12)*int64(t.m00) - int64(fx-t.m02)*int64(t.m10)
		return saturate(num / int64(det))
	}
	if t.typ&TypeScale != 0 {
		if t.m11 == 0 {
			return sentinel
		}
		return Div(fy-t.m12, t.m11)
	}
	return fy - t.m12
}

// InverseTransform maps p back through the matrix in place, reporting
// success. On failure p is left unchanged.
func (t *Transform) InverseTransform(p *Tuple2i) bool {
	x := t.InverseTransformX(p.X, p.Y)
	y := t.InverseTransformY(p.X, p.Y)
	if x == sentinel || y == sentinel {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// Bounds returns the integer axis-aligned bounding box of the transformed
// w-by-h box anchored at the origin. Rotation and shear turn the box into
// a parallelogram, so all four corners are transformed and the min/max
// taken.
func (t *Transform) Bounds(w, h Fixed) Rect {
	x0, y0 := t.TransformX(0, 0), t.TransformY(0, 0)
	x1, y1 := t.TransformX(w, 0), t.TransformY(w, 0)
	x2, y2 := t.TransformX(0, h), t.TransformY(0, h)
	x3, y3 := t.TransformX(w, h), t.TransformY(w, h)

	minX := min(x0, x1, x2, x3)
	minY := min(y0, y1, y2, y3)
	maxX := max(x0, x1, x2, x3)
	maxY := max(y0, y1, y2, y3)

	x := ToIntFloor(minX)
	y := ToIntFloor(minY)
	return NewRect(x, y, ToIntCeil(maxX)-x, ToIntCeil(maxY)-y)
}
