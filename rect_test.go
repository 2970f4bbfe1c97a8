package fixmath

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 25, true},
		{"top left corner", 10, 20, true},
		{"bottom right inside", 39, 59, true},
		{"right edge outside", 40, 30, false},
		{"bottom edge outside", 20, 60, false},
		{"left of rect", 9, 30, false},
		{"above rect", 20, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	inner := NewRect(2, 2, 5, 5)
	same := NewRect(0, 0, 10, 10)
	spill := NewRect(5, 5, 10, 10)

	if !r.ContainsRect(&inner) {
		t.Error("ContainsRect(inner) = false, want true")
	}
	if !r.ContainsRect(&same) {
		t.Error("ContainsRect(same) = false, want true")
	}
	if r.ContainsRect(&spill) {
		t.Error("ContainsRect(spill) = true, want false")
	}
}

func TestRectEqualsAndArea(t *testing.T) {
	a := NewRect(1, 2, 3, 4)
	b := NewRect(1, 2, 3, 4)
	c := NewRect(1, 2, 3, 5)
	if !a.Equals(&b) {
		t.Error("Equals(identical) = false")
	}
	if a.Equals(&c) {
		t.Error("Equals(different) = true")
	}
	if got := a.Area(); got != 12 {
		t.Errorf("Area() = %d, want 12", got)
	}
}

func TestRectIntersects(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		s    Rect
		want bool
	}{
		{"overlapping", NewRect(5, 5, 10, 10), true},
		{"touching last pixel", NewRect(9, 9, 5, 5), true},
		{"adjacent no overlap", NewRect(10, 0, 5, 10), false},
		{"disjoint", NewRect(20, 20, 5, 5), false},
		{"containing", NewRect(-5, -5, 20, 20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(&tt.s); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	s := NewRect(5, 5, 10, 10)
	r.Intersection(&s)
	if want := NewRect(5, 5, 5, 5); r != want {
		t.Errorf("Intersection = %+v, want %+v", r, want)
	}

	// Non-overlapping intersection leaves non-positive dimensions.
	r = NewRect(0, 0, 5, 5)
	s = NewRect(10, 10, 5, 5)
	r.Intersection(&s)
	if r.Width > 0 && r.Height > 0 {
		t.Errorf("disjoint Intersection produced %+v, want empty", r)
	}
}

func TestRectUnion(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	s := NewRect(5, 5, 10, 10)
	r.Union(&s)
	if want := NewRect(0, 0, 15, 15); r != want {
		t.Errorf("Union = %+v, want %+v", r, want)
	}

	r = NewRect(-5, -5, 5, 5)
	s = NewRect(10, 10, 2, 2)
	r.Union(&s)
	if want := NewRect(-5, -5, 17, 17); r != want {
		t.Errorf("Union = %+v, want %+v", r, want)
	}
}

func TestRectIntersectionCode(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		s    Rect
		want int
	}{
		{"inside", NewRect(2, 2, 5, 5), 0},
		{"spills top", NewRect(2, -2, 5, 5), Top},
		{"spills left", NewRect(-2, 2, 5, 5), Left},
		{"spills right", NewRect(7, 2, 5, 5), Right},
		{"spills bottom", NewRect(2, 7, 5, 5), Bottom},
		{"spills all", NewRect(-5, -5, 20, 20), Top | Right | Bottom | Left},
		{"spills top left", NewRect(-1, -1, 5, 5), Top | Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IntersectionCode(&tt.s); got != tt.want {
				t.Errorf("IntersectionCode(%+v) = %d, want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestRectBoundary(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	if got := r.Boundary(Top); got != 3 {
		t.Errorf("Boundary(Top) = %d, want 3", got)
	}
	if got := r.Boundary(Left); got != 2 {
		t.Errorf("Boundary(Left) = %d, want 2", got)
	}
	if got := r.Boundary(Right); got != 11 {
		t.Errorf("Boundary(Right) = %d, want 11", got)
	}
	if got := r.Boundary(Bottom); got != 22 {
		t.Errorf("Boundary(Bottom) = %d, want 22", got)
	}
}

func TestRectSetBoundary(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	r.SetBoundary(Right, 15)
	if r.Width != 14 || r.X != 2 {
		t.Errorf("SetBoundary(Right, 15) produced %+v", r)
	}

	r = NewRect(2, 3, 10, 20)
	r.SetBoundary(Top, 1)
	if r.Y != 1 || r.Height != 22 {
		t.Errorf("SetBoundary(Top, 1) produced %+v", r)
	}
	// The bottom edge must not have moved.
	if got := r.Boundary(Bottom); got != 22 {
		t.Errorf("Boundary(Bottom) after SetBoundary(Top) = %d, want 22", got)
	}

	r = NewRect(2, 3, 10, 20)
	r.SetBoundary(Left, 0)
	if r.X != 0 || r.Width != 12 {
		t.Errorf("SetBoundary(Left, 0) produced %+v", r)
	}

	r = NewRect(2, 3, 10, 20)
	r.SetBoundary(Bottom, 30)
	if r.Height != 28 || r.Y != 3 {
		t.Errorf("SetBoundary(Bottom, 30) produced %+v", r)
	}
}

func TestRectSetOutsideBoundary(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	r.SetOutsideBoundary(Top, 0)
	if r.Y != 1 {
		t.Errorf("SetOutsideBoundary(Top, 0) moved Y to %d, want 1", r.Y)
	}

	r = NewRect(2, 3, 10, 20)
	r.SetOutsideBoundary(Right, 20)
	if got := r.Boundary(Right); got != 19 {
		t.Errorf("SetOutsideBoundary(Right, 20) left edge at %d, want 19", got)
	}
}

func TestOppositeSide(t *testing.T) {
	tests := []struct {
		side, want int
	}{
		{Top, Bottom},
		{Bottom, Top},
		{Left, Right},
		{Right, Left},
		{Top | Left, Bottom | Right},
		{Top | Right | Bottom | Left, Top | Right | Bottom | Left},
		{0, 0},
	}
	for _, tt := range tests {
		if got := OppositeSide(tt.side); got != tt.want {
			t.Errorf("OppositeSide(%d) = %d, want %d", tt.side, got, tt.want)
		}
	}
}

func TestSetBounds(t *testing.T) {
	var r Rect
	r.SetBounds(1, 2, 3, 4)
	if r != NewRect(1, 2, 3, 4) {
		t.Errorf("SetBounds produced %+v", r)
	}
}
