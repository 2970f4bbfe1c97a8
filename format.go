package fixmath

import "strconv"

// ToString formats a fixed-point value with the default precision: at
// least one and at most seven fraction digits, no grouping.
func ToString(f Fixed) string {
	return Format(f, 1, 7, false)
}

// Format renders a fixed-point value in base 10 with between minFracDigits
// and maxFracDigits fraction digits. The value is rounded half-up at
// maxFracDigits and trailing zeros are trimmed down to minFracDigits.
// When grouping is set the integer part gets thousands separators.
//
// The fraction digits are produced by repeated multiplication by ten on a
// 64-bit fractional accumulator; no floating point is involved, so the
// output is exact and platform independent.
func Format(f Fixed, minFracDigits, maxFracDigits int, grouping bool) string {
	negative := f < 0
	a := int64(f)
	if negative {
		a = -a
	}
	return formatNumber(uint64(a>>FractionBits), uint64(a)&uint64(FractionMask),
		negative, minFracDigits, maxFracDigits, grouping)
}

// FormatInt renders a plain integer through the same formatter, so callers
// mixing fixed and integer output get identical grouping and digit rules.
func FormatInt(n int, minFracDigits, maxFracDigits int, grouping bool) string {
	negative := n < 0
	a := int64(n)
	if negative {
		a = -a
	}
	return formatNumber(uint64(a), 0, negative, minFracDigits, maxFracDigits, grouping)
}

// formatNumber assembles the decimal representation from a non-negative
// integer part and a 16-bit fraction numerator (value = intPart +
// frac/65536).
func formatNumber(intPart, frac uint64, negative bool, minFracDigits, maxFracDigits int, grouping bool) string {
	if minFracDigits < 0 {
		minFracDigits = 0
	}
	if maxFracDigits < minFracDigits {
		maxFracDigits = minFracDigits
	}

	digits := make([]byte, 0, maxFracDigits)
	for i := 0; i < maxFracDigits; i++ {
		frac *= 10
		digits = append(digits, byte('0'+(frac>>FractionBits)))
		frac &= uint64(FractionMask)
	}

	// Half-up rounding on the first dropped digit. The carry may run all
	// the way into the integer part (0.9999 -> "1.0").
	frac *= 10
	if frac>>FractionBits >= 5 {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
			} else {
				digits[i]++
				break
			}
		}
		if i < 0 {
			intPart++
		}
	}

	// Trim trailing zeros down to the minimum digit count.
	for len(digits) > minFracDigits && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}

	intDigits := strconv.FormatUint(intPart, 10)

	var out []byte
	if negative {
		// Suppress the sign when rounding produced an exact zero.
		zero := intPart == 0
		for _, d := range digits {
			if d != '0' {
				zero = false
				break
			}
		}
		if !zero {
			out = append(out, '-')
		}
	}
	if grouping {
		lead := len(intDigits) % 3
		if lead == 0 {
			lead = 3
		}
		out = append(out, intDigits[:lead]...)
		for i := lead; i < len(intDigits); i += 3 {
			out = append(out, ',')
			out = append(out, intDigits[i:i+3]...)
		}
	} else {
		out = append(out, intDigits...)
	}
	if len(digits) > 0 {
		out = append(out, '.')
		out = append(out, digits...)
	}
	return string(out)
}

// ParseFixed converts a decimal string to fixed point. The accepted form is
// an optional sign, integer digits, and an optional fraction; exponents are
// not supported. Out-of-range values saturate like the numeric conversions.
func ParseFixed(s string) (Fixed, error) {
	f, n, err := parseFixedPrefix([]byte(s))
	if err != nil {
		return 0, err
	}
	if n != len(s) {
		return 0, &ParseError{Pos: n, Msg: "trailing characters after number"}
	}
	return f, nil
}

// parseFixedPrefix reads a fixed-point number from the start of b and
// returns the value with the number of bytes consumed. It is shared with
// the SVG path scanner, which parses coordinates in place.
func parseFixedPrefix(b []byte) (Fixed, int, error) {
	i := 0
	negative := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		negative = b[i] == '-'
		i++
	}

	var intPart int64
	intDigits := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		if intPart < int64(MaxIntValue)+1 {
			intPart = intPart*10 + int64(b[i]-'0')
		}
		intDigits++
		i++
	}

	// Fraction as numerator/denominator, capped at ten digits which is
	// more precision than sixteen fraction bits can hold.
	var num, den int64 = 0, 1
	fracDigits := 0
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			if fracDigits < 10 {
				num = num*10 + int64(b[i]-'0')
				den *= 10
			}
			fracDigits++
			i++
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0, 0, &ParseError{Pos: i, Msg: "number has no digits"}
	}

	v := intPart<<FractionBits + (num<<FractionBits+den/2)/den
	if negative {
		v = -v
	}
	return saturate(v), i, nil
}
