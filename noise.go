package fixmath

import "math/rand/v2"

// Rand returns a uniformly distributed integer in [min, max], inclusive at
// both ends.
func Rand(min, max int) int {
	n := min + int(rand.Float64()*float64(max-min+1))
	if n > max {
		// Guards the boundary case of a uniform source returning
		// exactly 1.0.
		n = max
	}
	return n
}

// RandFixed returns a uniformly distributed fixed-point value in
// [min, max], inclusive at both ends.
func RandFixed(min, max Fixed) Fixed {
	span := int64(max) - int64(min) + 1
	n := int64(min) + int64(rand.Float64()*float64(span))
	if n > int64(max) {
		n = int64(max)
	}
	return Fixed(n)
}

// Noise returns a pseudo-random fixed-point value in about [-One, One]
// derived from n by bit scrambling. The same input always yields the same
// output; this is a hash, not a cryptographic generator.
func Noise(n int32) Fixed {
	n = (n << 13) ^ n
	// Integer wraparound is part of the scramble.
	m := n*(n*n*15731+789221) + 1376312589
	return One - Fixed((m&0x7fffffff)>>14)
}

// Noise2 is two-dimensional value noise, seeding Noise with a linear
// combination of the coordinates.
func Noise2(x, y int32) Fixed {
	return Noise(x + y*57)
}

// SmoothNoise returns value noise at n blended with its two lattice
// neighbors (weights 1/2, 1/4, 1/4).
func SmoothNoise(n int32) Fixed {
	return Noise(n)/2 + Noise(n-1)/4 + Noise(n+1)/4
}

// SmoothNoise2 returns 2D value noise at (x, y) blended with its corner,
// side and center lattice neighbors (weights 1/16, 1/8, 1/4).
func SmoothNoise2(x, y int32) Fixed {
	corners := (Noise2(x-1, y-1) + Noise2(x+1, y-1) + Noise2(x-1, y+1) + Noise2(x+1, y+1)) / 16
	sides := (Noise2(x-1, y) + Noise2(x+1, y) + Noise2(x, y-1) + Noise2(x, y+1)) / 8
	return corners + sides + Noise2(x, y)/4
}

// InterpolatedNoise returns cosine-interpolated 1D value noise at a
// fixed-point coordinate.
func InterpolatedNoise(fx Fixed) Fixed {
	x := int32(ToIntFloor(fx))
	frac := fx & FractionMask
	return CosineInterpolate(SmoothNoise(x), SmoothNoise(x+1), frac)
}

// InterpolatedNoise2 returns cosine-interpolated 2D value noise at a
// fixed-point coordinate pair.
func InterpolatedNoise2(fx, fy Fixed) Fixed {
	x := int32(ToIntFloor(fx))
	y := int32(ToIntFloor(fy))
	fracX := fx & FractionMask
	fracY := fy & FractionMask

	v1 := CosineInterpolate(SmoothNoise2(x, y), SmoothNoise2(x+1, y), fracX)
	v2 := CosineInterpolate(SmoothNoise2(x, y+1), SmoothNoise2(x+1, y+1), fracX)
	return CosineInterpolate(v1, v2, fracY)
}

// PerlinNoise sums numOctaves octaves of interpolated noise, doubling the
// frequency and scaling the amplitude by persistence at each octave.
func PerlinNoise(fx, persistence Fixed, numOctaves int) Fixed {
	var total int64
	amplitude := One
	for i := 0; i < numOctaves; i++ {
		freq := int64(1) << i
		sample := saturate(int64(fx) * freq)
		total += int64(Mul(InterpolatedNoise(sample), amplitude))
		amplitude = Mul(amplitude, persistence)
	}
	return saturate(total)
}

// PerlinNoise2 is the two-dimensional form of PerlinNoise.
func PerlinNoise2(fx, fy, persistence Fixed, numOctaves int) Fixed {
	var total int64
	amplitude := One
	for i := 0; i < numOctaves; i++ {
		freq := int64(1) << i
		sx := saturate(int64(fx) * freq)
		sy := saturate(int64(fy) * freq)
		total += int64(Mul(InterpolatedNoise2(sx, sy), amplitude))
		amplitude = Mul(amplitude, persistence)
	}
	return saturate(total)
}
