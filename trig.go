package fixmath

import (
	"errors"
	"math"
)

// errAsinDomain is the panic value for inverse-sine inputs outside the
// unit range.
var errAsinDomain = errors.New("fixmath: asin/acos input outside [-One, One]")

const (
	// twoPiError is the amount by which TwoPi exceeds the true value of
	// 2*pi*65536, expressed with 16 extra fractional bits:
	// round((TwoPi - 2*pi*65536) * 65536). Range reduction by whole
	// multiples of TwoPi over-subtracts this much per turn, so the
	// remainder is corrected by turns*twoPiError>>16. Only
	// large-magnitude inputs accumulate enough turns for the correction
	// to register.
	twoPiError = 10991

	// internalBits is the working precision of the sine polynomial.
	// Evaluating at 24 fractional bits keeps the truncation error of the
	// series terms below the final Q16.16 grain.
	internalBits = 24

	// snapEpsilon is the window, in raw fixed units, within which reduced
	// angles snap to the exact quarter-turn results. Without it, sprites
	// sitting at 0/90/180/270 degrees jitter by a unit from frame to
	// frame.
	snapEpsilon = 32
)

// sentinel is returned by Tan, Cot and the inverse transforms where the
// mathematical result does not exist. It is a documented sentinel, not an
// error: callers probing degenerate configurations every frame should not
// pay for panic/recover.
const sentinel = Fixed(math.MaxInt32)

// Sin returns the sine of a fixed-point angle in radians.
func Sin(fx Fixed) Fixed {
	if fx == 0 {
		return 0
	}

	// Reduce to [-2pi, 2pi]. TwoPi is rounded up from the true value, so
	// removing whole turns needs the twoPiError counter-correction or
	// large angles drift visibly.
	x := int64(fx)
	if fx < -TwoPi || fx > TwoPi {
		turns := x / int64(TwoPi)
		x -= turns * int64(TwoPi)
		x += (turns * twoPiError) >> FractionBits
	}

	// Reflect into [-pi/2, pi/2].
	if x > int64(Pi) {
		x -= int64(TwoPi)
	} else if x < -int64(Pi) {
		x += int64(TwoPi)
	}
	if x > int64(HalfPi) {
		x = int64(Pi) - x
	} else if x < -int64(HalfPi) {
		x = -int64(Pi) - x
	}

	// Snap the quarter-turn results exactly.
	switch {
	case x > -snapEpsilon && x < snapEpsilon:
		return 0
	case x > int64(HalfPi)-snapEpsilon:
		return One
	case x < -int64(HalfPi)+snapEpsilon:
		return -One
	}

	// Order-4 Maclaurin series at extended internal precision:
	// sin x = x - x^3/3! + x^5/5! - x^7/7!.
	const shift = internalBits - FractionBits
	xi := x << shift
	x2 := (xi * xi) >> internalBits
	p := xi
	r := xi
	p = (p * x2) >> internalBits
	r -= p / 6
	p = (p * x2) >> internalBits
	r += p / 120
	p = (p * x2) >> internalBits
	r -= p / 5040
	return Fixed((r + 1<<(shift-1)) >> shift)
}

// Cos returns the cosine of a fixed-point angle in radians. Negative
// angles use the sin(pi/2 + x) identity so the argument shift cannot
// overflow near MinValue.
func Cos(fx Fixed) Fixed {
	if fx < 0 {
		return Sin(HalfPi + fx)
	}
	return Sin(HalfPi - fx)
}

// Tan returns the tangent of a fixed-point angle, or the MaxInt32 sentinel
// where the cosine is zero.
func Tan(fx Fixed) Fixed {
	c := Cos(fx)
	if c == 0 {
		return sentinel
	}
	return Div(Sin(fx), c)
}

// Cot returns the cotangent of a fixed-point angle, or the MaxInt32
// sentinel where the sine is zero.
func Cot(fx Fixed) Fixed {
	s := Sin(fx)
	if s == 0 {
		return sentinel
	}
	return Div(Cos(fx), s)
}

// Asin returns the arc sine of a fixed-point value in [-One, One].
// Panics for inputs outside that range.
func Asin(fx Fixed) Fixed {
	switch {
	case fx > One || fx < -One:
		panic(errAsinDomain)
	case fx == One:
		return HalfPi
	case fx == -One:
		return -HalfPi
	case fx == 0:
		return 0
	}
	return Atan(Div(fx, Sqrt(One-Mul(fx, fx))))
}

// Acos returns the arc cosine of a fixed-point value in [-One, One].
// Panics for inputs outside that range.
func Acos(fx Fixed) Fixed {
	return HalfPi - Asin(fx)
}

// Atan returns the arc tangent of a fixed-point value. Arguments above one
// in magnitude are inverted so the rational approximation only ever runs
// on [0, One].
func Atan(fx Fixed) Fixed {
	negative := fx < 0
	if negative {
		fx = -fx
		if fx < 0 {
			// -MinValue overflows; its reciprocal is zero anyway.
			fx = MaxValue
		}
	}
	invert := fx > One
	if invert {
		fx = Div(One, fx)
	}

	r := atanUnit(fx)
	if invert {
		r = HalfPi - r
	}
	if negative {
		r = -r
	}
	return r
}

// atanUnit evaluates a degree-4/4 rational (Pade) approximation of atan on
// [0, One]:
//
//	atan(x) ~ x*(945 + 735*x^2 + 64*x^4) / (945 + 1050*x^2 + 225*x^4)
//
// All intermediates stay below 2^31 for x in the unit range.
func atanUnit(fx Fixed) Fixed {
	x2 := Mul(fx, fx)
	x4 := Mul(x2, x2)
	num := Mul(fx, 945*One+Mul(735*One, x2)+Mul(64*One, x4))
	den := 945*One + Mul(1050*One, x2) + Mul(225*One, x4)
	return Div(num, den)
}

// Atan2 returns the angle of the vector (fx, fy) in (-Pi, Pi], with the
// usual quadrant conventions: Atan2(0, positive) == 0 and
// Atan2(0, negative) == Pi.
func Atan2(fy, fx Fixed) Fixed {
	// Axis-aligned degenerate cases first.
	if fy == 0 {
		if fx < 0 {
			return Pi
		}
		return 0
	}
	if fx == 0 {
		if fy > 0 {
			return HalfPi
		}
		return -HalfPi
	}

	// First-octant angle of |fy|/|fx|. Dividing the smaller magnitude by
	// the larger keeps the quotient in the unit range, so the division
	// cannot overflow no matter how lopsided the vector is.
	ax, ay := Abs(fx), Abs(fy)
	var z Fixed
	if ay > ax {
		z = HalfPi - atanUnit(Div(ax, ay))
	} else {
		z = atanUnit(Div(ay, ax))
	}

	switch {
	case fx > 0 && fy > 0:
		return z
	case fx > 0:
		return -z
	case fy > 0:
		return Pi - z
	default:
		return z - Pi
	}
}
