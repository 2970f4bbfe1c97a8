package fixmath

// Interpolate linearly interpolates from a to b by p. The parameter is not
// clamped: values outside [0, One] extrapolate along the same line.
func Interpolate(a, b, p Fixed) Fixed {
	return saturate(int64(a) + ((int64(b)-int64(a))*int64(p))>>FractionBits)
}

// CosineInterpolate eases from a to b along a half cosine: the motion
// starts and ends with zero velocity.
func CosineInterpolate(a, b, p Fixed) Fixed {
	f := (One - Cos(Mul(p, Pi))) >> 1
	return Interpolate(a, b, f)
}

// QuickCurveInterpolate eases from a to b along the smoothstep blend
// 3p^2 - 2p^3, a cheaper approximation of CosineInterpolate.
func QuickCurveInterpolate(a, b, p Fixed) Fixed {
	f := Mul(Mul(p, p), 3*One-2*p)
	return Interpolate(a, b, f)
}

// CubicInterpolate evaluates a Catmull-Rom style cubic through four evenly
// spaced samples, returning the value at parameter p between y1 and y2.
// The cubic coefficients come from finite differences of the samples.
func CubicInterpolate(y0, y1, y2, y3, p Fixed) Fixed {
	c3 := int64(y3) - int64(y2) - int64(y0) + int64(y1)
	c2 := int64(y0) - int64(y1) - c3
	c1 := int64(y2) - int64(y0)
	c0 := int64(y1)

	fp := int64(p)
	p2 := (fp * fp) >> FractionBits
	p3 := (p2 * fp) >> FractionBits
	return saturate(((c3*p3)>>FractionBits)+((c2*p2)>>FractionBits)+((c1*fp)>>FractionBits)+c0)
}
