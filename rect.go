package fixmath

// Rectangle side codes. They are independent bits so a set of sides can be
// carried in one mask, as the dirty-rectangle clipper does.
const (
	Top    = 1
	Right  = 2
	Bottom = 4
	Left   = 8
)

// Rect is a mutable axis-aligned rectangle in plain integer units; the
// caller decides whether those are pixels or something else. Width and
// height may be zero or negative to represent an empty rectangle, and
// callers must check for that before using one.
//
// All boundary math is inclusive-pixel: x+width-1 is the rightmost covered
// column, not x+width.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a rectangle with the given bounds.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// SetBounds replaces all four fields at once.
func (r *Rect) SetBounds(x, y, width, height int) {
	r.X, r.Y, r.Width, r.Height = x, y, width, height
}

// Area returns width*height. Empty rectangles can report non-positive or
// nonsense areas; check Width/Height first.
func (r *Rect) Area() int {
	return r.Width * r.Height
}

// Contains reports whether the point (x, y) is inside the rectangle.
func (r *Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// ContainsRect reports whether s lies entirely inside r.
func (r *Rect) ContainsRect(s *Rect) bool {
	return s.X >= r.X && s.Y >= r.Y &&
		s.X+s.Width <= r.X+r.Width && s.Y+s.Height <= r.Y+r.Height
}

// Equals reports whether the two rectangles have identical bounds.
func (r *Rect) Equals(s *Rect) bool {
	return *r == *s
}

// Intersects reports whether r and s cover at least one common pixel.
func (r *Rect) Intersects(s *Rect) bool {
	return s.X+s.Width-1 >= r.X && s.X <= r.X+r.Width-1 &&
		s.Y+s.Height-1 >= r.Y && s.Y <= r.Y+r.Height-1
}

// Intersection replaces r with the intersection of r and s. If the two do
// not overlap, the resulting width or height is <= 0.
func (r *Rect) Intersection(s *Rect) {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.Width-1, s.X+s.Width-1)
	y2 := min(r.Y+r.Height-1, s.Y+s.Height-1)
	r.SetBounds(x1, y1, x2-x1+1, y2-y1+1)
}

// Union replaces r with the smallest rectangle covering both r and s.
func (r *Rect) Union(s *Rect) {
	x1 := min(r.X, s.X)
	y1 := min(r.Y, s.Y)
	x2 := max(r.X+r.Width, s.X+s.Width)
	y2 := max(r.Y+r.Height, s.Y+s.Height)
	r.SetBounds(x1, y1, x2-x1, y2-y1)
}

// IntersectionCode returns the side mask of r's edges that s extends
// beyond: Top is set when s starts above r, Right when s ends past r's
// right edge, and so on. A zero code means s fits inside r.
func (r *Rect) IntersectionCode(s *Rect) int {
	code := 0
	if s.Y < r.Y {
		code |= Top
	}
	if s.X < r.X {
		code |= Left
	}
	if s.X+s.Width-1 > r.X+r.Width-1 {
		code |= Right
	}
	if s.Y+s.Height-1 > r.Y+r.Height-1 {
		code |= Bottom
	}
	return code
}

// Boundary returns the coordinate of one side: the y of the topmost row
// for Top, the x of the rightmost covered column for Right, etc.
func (r *Rect) Boundary(side int) int {
	switch side {
	case Top:
		return r.Y
	case Right:
		return r.X + r.Width - 1
	case Bottom:
		return r.Y + r.Height - 1
	default:
		return r.X
	}
}

// SetBoundary moves one side of the rectangle to the given coordinate,
// keeping the opposite side fixed.
func (r *Rect) SetBoundary(side, value int) {
	switch side {
	case Top:
		r.Height += r.Y - value
		r.Y = value
	case Right:
		r.Width = value - r.X + 1
	case Bottom:
		r.Height = value - r.Y + 1
	case Left:
		r.Width += r.X - value
		r.X = value
	}
}

// SetOutsideBoundary moves one side so the rectangle ends just inside the
// given coordinate, used when clipping against an edge that itself must
// stay uncovered.
func (r *Rect) SetOutsideBoundary(side, value int) {
	switch side {
	case Top, Left:
		r.SetBoundary(side, value+1)
	case Right, Bottom:
		r.SetBoundary(side, value-1)
	}
}

// OppositeSide swaps Top with Bottom and Left with Right in a side mask.
func OppositeSide(side int) int {
	return (side&(Top|Right))<<2 | (side&(Bottom|Left))>>2
}
