package fixmath

import "testing"

func TestRandInclusiveRange(t *testing.T) {
	if got := Rand(5, 5); got != 5 {
		t.Errorf("Rand(5, 5) = %d, want 5", got)
	}
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		n := Rand(0, 3)
		if n < 0 || n > 3 {
			t.Fatalf("Rand(0, 3) = %d, out of range", n)
		}
		seen[n] = true
	}
	// Both endpoints must be reachable.
	if !seen[0] || !seen[3] {
		t.Errorf("Rand(0, 3) never hit an endpoint: seen %v", seen)
	}
}

func TestRandNegativeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := Rand(-10, -5)
		if n < -10 || n > -5 {
			t.Fatalf("Rand(-10, -5) = %d, out of range", n)
		}
	}
}

func TestRandFixed(t *testing.T) {
	if got := RandFixed(OneHalf, OneHalf); got != OneHalf {
		t.Errorf("RandFixed(OneHalf, OneHalf) = %d, want OneHalf", got)
	}
	for i := 0; i < 1000; i++ {
		n := RandFixed(-One, One)
		if n < -One || n > One {
			t.Fatalf("RandFixed(-One, One) = %d, out of range", n)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 42, 1 << 20, -12345} {
		a, b := Noise(n), Noise(n)
		if a != b {
			t.Errorf("Noise(%d) not deterministic: %d vs %d", n, a, b)
		}
	}
	if Noise(1) == Noise(2) && Noise(2) == Noise(3) {
		t.Error("Noise looks constant across inputs")
	}
}

func TestNoiseBounds(t *testing.T) {
	for n := int32(-500); n <= 500; n++ {
		v := Noise(n)
		if v < -One || v > One {
			t.Fatalf("Noise(%d) = %d, outside [-One, One]", n, v)
		}
	}
}

func TestSmoothNoiseBounds(t *testing.T) {
	for n := int32(-200); n <= 200; n++ {
		if v := SmoothNoise(n); v < -One || v > One {
			t.Fatalf("SmoothNoise(%d) = %d, outside [-One, One]", n, v)
		}
	}
	for x := int32(-20); x <= 20; x++ {
		for y := int32(-20); y <= 20; y++ {
			if v := SmoothNoise2(x, y); v < -One || v > One {
				t.Fatalf("SmoothNoise2(%d, %d) = %d, outside [-One, One]", x, y, v)
			}
		}
	}
}

func TestInterpolatedNoise(t *testing.T) {
	// At integer coordinates the interpolation collapses to the lattice
	// value.
	for _, n := range []int32{-3, 0, 7} {
		got := InterpolatedNoise(ToFixed(int(n)))
		want := SmoothNoise(n)
		if got != want {
			t.Errorf("InterpolatedNoise(%d) = %d, want lattice value %d", n, got, want)
		}
	}
	// Deterministic between lattice points too.
	fx := 3*One + One/3
	if InterpolatedNoise(fx) != InterpolatedNoise(fx) {
		t.Error("InterpolatedNoise not deterministic")
	}
}

func TestInterpolatedNoise2(t *testing.T) {
	got := InterpolatedNoise2(2*One, -One)
	want := SmoothNoise2(2, -1)
	if got != want {
		t.Errorf("InterpolatedNoise2 at lattice = %d, want %d", got, want)
	}
}

func TestPerlinNoiseDeterministic(t *testing.T) {
	p := ToFixed64(0.5)
	for _, fx := range []Fixed{0, OneHalf, 5 * One, -3 * One} {
		a := PerlinNoise(fx, p, 4)
		b := PerlinNoise(fx, p, 4)
		if a != b {
			t.Errorf("PerlinNoise(%d) not deterministic", fx)
		}
	}
	a := PerlinNoise2(OneHalf, OneHalf, p, 3)
	b := PerlinNoise2(OneHalf, OneHalf, p, 3)
	if a != b {
		t.Error("PerlinNoise2 not deterministic")
	}
}

func TestPerlinNoiseSingleOctave(t *testing.T) {
	// One octave at full amplitude is plain interpolated noise.
	for _, fx := range []Fixed{0, OneHalf, 2 * One} {
		got := PerlinNoise(fx, OneHalf, 1)
		want := InterpolatedNoise(fx)
		if got != want {
			t.Errorf("PerlinNoise(%d, _, 1) = %d, want %d", fx, got, want)
		}
	}
}
