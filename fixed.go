package fixmath

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Fixed is a Q16.16 fixed-point number: a 32-bit signed integer interpreted
// as value/65536. The representable integer range is [MinIntValue,
// MaxIntValue]. Fixed has value semantics and no object identity; treat it
// like any other numeric primitive.
type Fixed int32

// Fixed-point layout constants.
const (
	// FractionBits is the number of fractional bits in a Fixed value.
	FractionBits = 16

	// One is 1.0 in fixed-point representation.
	One Fixed = 1 << FractionBits

	// OneHalf is 0.5 in fixed-point representation.
	OneHalf Fixed = One >> 1

	// FractionMask extracts the fractional part of a Fixed value.
	FractionMask Fixed = One - 1
)

// Pre-rounded mathematical constants. These are round(x * 65536) and must
// not be recomputed at runtime; the exact rounded values are part of the
// deterministic contract.
const (
	// Pi is the closest Fixed value to pi.
	Pi Fixed = 205887
	// TwoPi is the closest Fixed value to 2*pi.
	TwoPi Fixed = 411775
	// HalfPi is the closest Fixed value to pi/2.
	HalfPi Fixed = 102944
	// E is the closest Fixed value to Euler's number.
	E Fixed = 178145
)

// Range limits.
const (
	// MaxValue is the largest representable Fixed value (about 32768.0).
	MaxValue Fixed = math.MaxInt32
	// MinValue is the smallest representable Fixed value (about -32768.0).
	MinValue Fixed = math.MinInt32

	// MaxIntValue is the largest integer representable as a Fixed value.
	MaxIntValue = math.MaxInt32 >> FractionBits
	// MinIntValue is the smallest integer representable as a Fixed value.
	MinIntValue = math.MinInt32 >> FractionBits

	// MaxFloatValue is the float boundary of the representable range.
	// Converting any float at or above this value yields exactly MaxValue.
	MaxFloatValue = 32768.0
	// MinFloatValue is the negative float boundary of the representable
	// range. Converting any float at or below it yields exactly MinValue.
	MinFloatValue = -32768.0
)

// saturate narrows a widened intermediate back to Fixed, clamping at the
// representable range instead of wrapping.
func saturate(v int64) Fixed {
	if v > int64(MaxValue) {
		return MaxValue
	}
	if v < int64(MinValue) {
		return MinValue
	}
	return Fixed(v)
}

// ToFixed converts an integer to fixed point, saturating at
// MaxValue/MinValue for integers outside [MinIntValue, MaxIntValue].
func ToFixed(n int) Fixed {
	if n >= MaxIntValue {
		if n == MaxIntValue {
			return Fixed(n) << FractionBits
		}
		return MaxValue
	}
	if n <= MinIntValue {
		return MinValue
	}
	return Fixed(n) << FractionBits
}

// ToFixed64 converts a float64 to fixed point, rounding to nearest with
// ties away from zero. Out-of-range inputs saturate at MaxValue/MinValue;
// this is intentional lossy behavior, not an error.
func ToFixed64(f float64) Fixed {
	if f >= MaxFloatValue {
		return MaxValue
	}
	if f <= MinFloatValue {
		return MinValue
	}
	return saturate(int64(math.Round(f * float64(One))))
}

// ToFixed32 is the float32 form of ToFixed64. The rounding happens in
// float32 so callers working in single precision never round-trip through
// float64.
func ToFixed32(f float32) Fixed {
	if f >= MaxFloatValue {
		return MaxValue
	}
	if f <= MinFloatValue {
		return MinValue
	}
	return saturate(int64(math32.Round(f * float32(One))))
}

// ToFloat64 converts a fixed-point value to float64.
func ToFloat64(f Fixed) float64 {
	return float64(f) / float64(One)
}

// ToFloat32 converts a fixed-point value to float32.
func ToFloat32(f Fixed) float32 {
	return float32(f) / float32(One)
}

// ToIntFloor returns the largest integer not greater than f. This is an
// arithmetic right shift: it rounds toward negative infinity, not zero.
func ToIntFloor(f Fixed) int {
	return int(f >> FractionBits)
}

// ToIntCeil returns the smallest integer not less than f.
// ToIntCeil(MinValue) overflows the negation and is unspecified.
func ToIntCeil(f Fixed) int {
	return -ToIntFloor(-f)
}

// ToIntRound returns the nearest integer to f, rounding half up.
// Values within OneHalf of MaxValue overflow the bias addition.
func ToIntRound(f Fixed) int {
	return ToIntFloor(f + OneHalf)
}

// ToInt truncates f toward zero: floor for non-negative values, ceil for
// negative ones. This matches the behavior of a plain integer cast.
func ToInt(f Fixed) int {
	if f < 0 {
		return ToIntCeil(f)
	}
	return ToIntFloor(f)
}

// Clamp returns n limited to [lo, hi]: lo if n <= lo, hi if n >= hi,
// otherwise n itself.
func Clamp[T cmp.Ordered](n, lo, hi T) T {
	if n <= lo {
		return lo
	}
	if n >= hi {
		return hi
	}
	return n
}

// Sign returns -1, 0 or +1 according to the sign of f.
func Sign(f Fixed) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// Abs returns the absolute value of f.
//
// Known quirk: Abs(MinValue) has no positive counterpart and returns
// MinValue unchanged (still negative). Callers relying on Abs near the
// range limit must widen first.
func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// IntDivFloor divides two integers rounding toward negative infinity,
// unlike Go's native division which truncates toward zero.
func IntDivFloor(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// IntDivCeil divides two integers rounding toward positive infinity.
func IntDivCeil(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}

// IntDivRound divides two integers rounding to nearest, half toward
// positive infinity.
func IntDivRound(a, b int) int {
	if b < 0 {
		a, b = -a, -b
	}
	return IntDivFloor(a+b/2, b)
}
