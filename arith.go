package fixmath

import (
	"errors"
	"math"
)

// errSqrtDomain is the panic value for square roots of negative inputs.
// Fixed point has no NaN to return, and silently clamping would hide
// caller bugs, so the failure is immediate.
var errSqrtDomain = errors.New("fixmath: square root of negative value")

// Mul multiplies two fixed-point values. The product is accumulated in 64
// bits and shifted down, so intermediate overflow cannot occur; the final
// narrowing truncates like the underlying integer type.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FractionBits)
}

// Mul64 multiplies two pre-widened 64-bit fixed-point values.
func Mul64(a, b int64) int64 {
	return (a * b) >> FractionBits
}

// Div divides two fixed-point values, saturating at the representable
// range. Division by zero propagates the runtime's integer-divide panic;
// this is intentional and not recovered.
func Div(a, b Fixed) Fixed {
	return saturate((int64(a) << FractionBits) / int64(b))
}

// Div64 divides two pre-widened 64-bit fixed-point values.
func Div64(a, b int64) int64 {
	return (a << FractionBits) / b
}

// MulDiv computes a*b/c entirely in 64 bits, avoiding the intermediate
// fixed-point overflow that Div(Mul(a, b), c) would risk.
func MulDiv(a, b, c Fixed) Fixed {
	return saturate(int64(a) * int64(b) / int64(c))
}

// Sqrt returns the square root of a fixed-point value using Newton's
// method. Small inputs in (0, 1) are inverted first (sqrt(x) =
// 1/sqrt(1/x)) to preserve precision. Panics for negative input.
func Sqrt(fx Fixed) Fixed {
	if fx < 0 {
		panic(errSqrtDomain)
	}
	if fx == 0 || fx == One {
		return fx
	}

	// Invert values below one so the iteration runs in the well
	// conditioned region. Inputs of a few raw units stay as-is: their
	// reciprocal would not fit.
	invert := false
	if fx < One && fx > 6 {
		fx = Div(One, fx)
		invert = true
	}

	// The iteration count tracks the bit length of the input: one
	// Newton step per two-bit shift needed to clear it.
	iterations := 16
	if fx > One {
		iterations = 0
		for s := fx; s > 0; s >>= 2 {
			iterations++
		}
	}

	l := (fx >> 1) + 1
	for i := 0; i < iterations; i++ {
		l = (l + Div(fx, l)) >> 1
	}
	if invert {
		return Div(One, l)
	}
	return l
}

// Sqrt64 is Sqrt for pre-widened 64-bit fixed-point values. The algorithm
// is identical so 32- and 64-bit callers agree wherever both apply.
func Sqrt64(fx int64) int64 {
	if fx < 0 {
		panic(errSqrtDomain)
	}
	if fx == 0 || fx == int64(One) {
		return fx
	}

	invert := false
	if fx < int64(One) && fx > 6 {
		fx = Div64(int64(One), fx)
		invert = true
	}

	iterations := 16
	if fx > int64(One) {
		iterations = 0
		for s := fx; s > 0; s >>= 2 {
			iterations++
		}
	}

	l := (fx >> 1) + 1
	for i := 0; i < iterations; i++ {
		l = (l + Div64(fx, l)) >> 1
	}
	if invert {
		return Div64(int64(One), l)
	}
	return l
}

// Dist returns the Euclidean distance between two fixed-point points,
// saturating at MaxValue. The squared terms are accumulated in 64 bits.
func Dist(x1, y1, x2, y2 Fixed) Fixed {
	dx := int64(x2) - int64(x1)
	dy := int64(y2) - int64(y1)
	// A delta wider than int32 would overflow dx*dx in 64 bits; the
	// distance is past the representable range regardless.
	if dx < math.MinInt32 || dx > math.MaxInt32 || dy < math.MinInt32 || dy > math.MaxInt32 {
		return MaxValue
	}
	return saturate(Sqrt64(Mul64(dx, dx) + Mul64(dy, dy)))
}
