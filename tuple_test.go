package fixmath

import "testing"

func TestTuple2iSetAddSub(t *testing.T) {
	p := NewTuple2i(One, 2*One)
	p.Add(NewTuple2i(3*One, -One))
	if p.X != 4*One || p.Y != One {
		t.Errorf("after Add: %+v", p)
	}
	p.Sub(NewTuple2i(One, One))
	if p.X != 3*One || p.Y != 0 {
		t.Errorf("after Sub: %+v", p)
	}
	p.Set(7, 8)
	if p.X != 7 || p.Y != 8 {
		t.Errorf("after Set: %+v", p)
	}
}

func TestTuple2iLength(t *testing.T) {
	p := NewTuple2i(3*One, 4*One)
	fixedNear(t, "Length", p.Length(), 5*One, 2)

	zero := NewTuple2i(0, 0)
	if got := zero.Length(); got != 0 {
		t.Errorf("zero Length() = %d, want 0", got)
	}
}

func TestTuple2iDot(t *testing.T) {
	a := NewTuple2i(One, 2*One)
	b := NewTuple2i(3*One, 4*One)
	if got := a.Dot(b); got != 11*One {
		t.Errorf("Dot = %d, want %d", got, 11*One)
	}

	// Perpendicular vectors have zero dot product.
	c := NewTuple2i(One, 0)
	d := NewTuple2i(0, -5*One)
	if got := c.Dot(d); got != 0 {
		t.Errorf("perpendicular Dot = %d, want 0", got)
	}
}

func TestTuple2iInterpolate(t *testing.T) {
	p := NewTuple2i(0, 0)
	target := NewTuple2i(10*One, -20*One)

	q := p
	q.Interpolate(target, 0)
	if q != p {
		t.Errorf("Interpolate(_, 0) moved the tuple: %+v", q)
	}

	q = p
	q.Interpolate(target, One)
	if q != target {
		t.Errorf("Interpolate(_, One) = %+v, want target", q)
	}

	q = p
	q.Interpolate(target, OneHalf)
	if q.X != 5*One || q.Y != -10*One {
		t.Errorf("Interpolate(_, OneHalf) = %+v", q)
	}
}
