package fixmath

// Tuple2i is a mutable pair of fixed-point coordinates used as both point
// and vector. Like Rect it is a value type owned by its caller; methods
// mutate in place so per-frame sprite code allocates nothing.
type Tuple2i struct {
	X, Y Fixed
}

// NewTuple2i returns a tuple with the given coordinates.
func NewTuple2i(x, y Fixed) Tuple2i {
	return Tuple2i{X: x, Y: y}
}

// Set replaces both coordinates.
func (t *Tuple2i) Set(x, y Fixed) {
	t.X, t.Y = x, y
}

// Add adds u to t in place.
func (t *Tuple2i) Add(u Tuple2i) {
	t.X += u.X
	t.Y += u.Y
}

// Sub subtracts u from t in place.
func (t *Tuple2i) Sub(u Tuple2i) {
	t.X -= u.X
	t.Y -= u.Y
}

// Length returns the fixed-point Euclidean length of the tuple treated as
// a vector from the origin.
func (t *Tuple2i) Length() Fixed {
	return Dist(0, 0, t.X, t.Y)
}

// Dot returns the fixed-point dot product of t and u.
func (t *Tuple2i) Dot(u Tuple2i) Fixed {
	return saturate(((int64(t.X) * int64(u.X)) + (int64(t.Y) * int64(u.Y))) >> FractionBits)
}

// Interpolate moves t toward target by p: p=0 leaves t unchanged, p=One
// lands exactly on target.
func (t *Tuple2i) Interpolate(target Tuple2i, p Fixed) {
	t.X = Interpolate(t.X, target.X, p)
	t.Y = Interpolate(t.Y, target.Y, p)
}
