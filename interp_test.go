package fixmath

import "testing"

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, p Fixed
		want    Fixed
	}{
		{"start", 0, 10 * One, 0, 0},
		{"end", 0, 10 * One, One, 10 * One},
		{"midpoint", 0, 10 * One, OneHalf, 5 * One},
		{"negative range", 10 * One, -10 * One, OneHalf, 0},
		{"extrapolates past end", 0, 10 * One, 2 * One, 20 * One},
		{"extrapolates before start", 0, 10 * One, -One, -10 * One},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.a, tt.b, tt.p); got != tt.want {
				t.Errorf("Interpolate(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.p, got, tt.want)
			}
		})
	}
}

func TestCosineInterpolate(t *testing.T) {
	// Exact endpoints and midpoint thanks to the quarter-turn snapping
	// in Cos.
	if got := CosineInterpolate(0, 10*One, 0); got != 0 {
		t.Errorf("CosineInterpolate at p=0 = %d, want 0", got)
	}
	if got := CosineInterpolate(0, 10*One, One); got != 10*One {
		t.Errorf("CosineInterpolate at p=One = %d, want 10*One", got)
	}
	if got := CosineInterpolate(0, 10*One, OneHalf); got != 5*One {
		t.Errorf("CosineInterpolate at p=OneHalf = %d, want 5*One", got)
	}
	// Ease-in: the first quarter covers less ground than linear.
	if got := QuickCurveInterpolate(0, 10*One, One/4); got >= 10*One/4 {
		t.Errorf("QuickCurveInterpolate quarter = %d, want below linear %d", got, 10*One/4)
	}
	if got := CosineInterpolate(0, 10*One, One/4); got >= 10*One/4 {
		t.Errorf("CosineInterpolate quarter = %d, want below linear %d", got, 10*One/4)
	}
}

func TestQuickCurveInterpolate(t *testing.T) {
	if got := QuickCurveInterpolate(2*One, 8*One, 0); got != 2*One {
		t.Errorf("QuickCurveInterpolate at p=0 = %d, want 2*One", got)
	}
	if got := QuickCurveInterpolate(2*One, 8*One, One); got != 8*One {
		t.Errorf("QuickCurveInterpolate at p=One = %d, want 8*One", got)
	}
	if got := QuickCurveInterpolate(2*One, 8*One, OneHalf); got != 5*One {
		t.Errorf("QuickCurveInterpolate at p=OneHalf = %d, want 5*One", got)
	}
	// Smoothstep stays close to cosine easing everywhere.
	for p := Fixed(0); p <= One; p += One / 16 {
		q := QuickCurveInterpolate(0, One, p)
		c := CosineInterpolate(0, One, p)
		fixedNear(t, "smoothstep vs cosine", q, c, One/16)
	}
}

func TestCubicInterpolate(t *testing.T) {
	y0, y1, y2, y3 := 0*One, One, 2*One, 3*One

	if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
		t.Errorf("CubicInterpolate at p=0 = %d, want y1", got)
	}
	if got := CubicInterpolate(y0, y1, y2, y3, One); got != y2 {
		t.Errorf("CubicInterpolate at p=One = %d, want y2", got)
	}
	// Evenly spaced samples interpolate their midpoint exactly.
	fixedNear(t, "CubicInterpolate midpoint", CubicInterpolate(y0, y1, y2, y3, OneHalf), One+OneHalf, 2)

	// A flat-flat-rise-rise plateau stays monotonic between y1 and y2.
	prev := CubicInterpolate(0, 0, One, One, 0)
	for p := One / 8; p <= One; p += One / 8 {
		got := CubicInterpolate(0, 0, One, One, p)
		if got < prev {
			t.Errorf("CubicInterpolate not monotonic at p=%d: %d < %d", p, got, prev)
		}
		prev = got
	}
}
