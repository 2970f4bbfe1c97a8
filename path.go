package fixmath

import (
	"errors"
	"sort"
)

// Axis selects which quantity a path query evaluates.
type Axis int

// Query axes for Path.Get.
const (
	AxisX Axis = iota
	AxisY
	AxisAngle
)

// errPathTooShort is returned when path data flattens to fewer than two
// distinct points; such a path has no length to parameterize.
var errPathTooShort = errors.New("fixmath: path needs at least two distinct points")

// Path is an arc-length-parameterized polyline. Queries take a parameter
// p in [0, One] proportional to distance traveled along the path, so a
// linearly animated p moves a sprite at constant speed no matter how the
// original curve commands were spaced.
//
// A Path is immutable after construction except for Translate and an
// internal single-entry query cache. The cache makes X/Y/Angle calls for
// the same p (the common per-frame pattern) cost one binary search, but it
// also means a Path instance must not be queried from multiple goroutines
// without external synchronization.
type Path struct {
	xs, ys []Fixed // vertex coordinates
	ps     []Fixed // parametric position of each vertex, 0..One, non-decreasing
	total  Fixed
	closed bool

	// Single-entry memoization of the last resolved segment.
	hasLast bool
	lastP   Fixed
	lastSeg int
}

// ParsePath builds a path from an SVG path-data string (see parsePathData
// for the accepted grammar). Curves are flattened adaptively and the
// result indexed by cumulative arc length.
func ParsePath(data string) (*Path, error) {
	cmds, err := parsePathData(data)
	if err != nil {
		return nil, err
	}
	xs, ys := flattenCommands(cmds)
	return NewPath(xs, ys)
}

// NewPath builds a path directly from polyline vertices. Consecutive
// duplicate vertices are dropped. The path is closed when the first and
// last vertex coincide exactly.
func NewPath(xs, ys []Fixed) (*Path, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("fixmath: mismatched coordinate slices")
	}
	sink := &pointSink{
		xs: make([]Fixed, 0, len(xs)),
		ys: make([]Fixed, 0, len(ys)),
	}
	for i := range xs {
		sink.add(xs[i], ys[i])
	}
	// A closing vertex dedupes against its predecessor, not the start,
	// so closed paths survive the dedupe with first == last.
	if len(sink.xs) < 2 {
		return nil, errPathTooShort
	}

	n := len(sink.xs)
	cum := make([]int64, n)
	for i := 1; i < n; i++ {
		cum[i] = cum[i-1] + int64(Dist(sink.xs[i-1], sink.ys[i-1], sink.xs[i], sink.ys[i]))
	}
	total := cum[n-1]
	if total == 0 {
		return nil, errPathTooShort
	}

	ps := make([]Fixed, n)
	for i := 1; i < n-1; i++ {
		ps[i] = Fixed((cum[i] << FractionBits) / total)
	}
	ps[n-1] = One

	return &Path{
		xs:     sink.xs,
		ys:     sink.ys,
		ps:     ps,
		total:  saturate(total),
		closed: sink.xs[0] == sink.xs[n-1] && sink.ys[0] == sink.ys[n-1],
	}, nil
}

// Length returns the total arc length of the path.
func (p *Path) Length() Fixed {
	return p.total
}

// IsClosed reports whether the first and last vertex coincide.
func (p *Path) IsClosed() bool {
	return p.closed
}

// NumPoints returns the number of polyline vertices.
func (p *Path) NumPoints() int {
	return len(p.xs)
}

// Point returns vertex i.
func (p *Path) Point(i int) (x, y Fixed) {
	return p.xs[i], p.ys[i]
}

// StartX returns the x coordinate of the first vertex.
func (p *Path) StartX() Fixed { return p.xs[0] }

// StartY returns the y coordinate of the first vertex.
func (p *Path) StartY() Fixed { return p.ys[0] }

// EndX returns the x coordinate of the last vertex.
func (p *Path) EndX() Fixed { return p.xs[len(p.xs)-1] }

// EndY returns the y coordinate of the last vertex.
func (p *Path) EndY() Fixed { return p.ys[len(p.ys)-1] }

// Translate moves the whole path by (dx, dy). This is the one mutation a
// built path supports; it must not run concurrently with queries.
func (p *Path) Translate(dx, dy Fixed) {
	for i := range p.xs {
		p.xs[i] += dx
		p.ys[i] += dy
	}
}

// clampP normalizes a query parameter. Closed paths wrap modulo One,
// except the literal endpoint One which stays "the end" rather than
// wrapping to the start. Open paths clamp hard to [0, One].
func (p *Path) clampP(fp Fixed) Fixed {
	if p.closed {
		if fp == One {
			return One
		}
		fp %= One
		if fp < 0 {
			fp += One
		}
		return fp
	}
	return Clamp(fp, 0, One)
}

// segment locates the polyline segment whose parametric span contains fp
// (already clamped), memoizing the last answer.
func (p *Path) segment(fp Fixed) int {
	if p.hasLast && p.lastP == fp {
		return p.lastSeg
	}
	// First index i with ps[i+1] >= fp.
	i := sort.Search(len(p.ps)-1, func(i int) bool {
		return p.ps[i+1] >= fp
	})
	if i > len(p.ps)-2 {
		i = len(p.ps) - 2
	}
	p.hasLast = true
	p.lastP = fp
	p.lastSeg = i
	return i
}

// X returns the x coordinate at parameter fp.
func (p *Path) X(fp Fixed) Fixed {
	fp = p.clampP(fp)
	i := p.segment(fp)
	return Interpolate(p.xs[i], p.xs[i+1], p.segmentFraction(i, fp))
}

// Y returns the y coordinate at parameter fp.
func (p *Path) Y(fp Fixed) Fixed {
	fp = p.clampP(fp)
	i := p.segment(fp)
	return Interpolate(p.ys[i], p.ys[i+1], p.segmentFraction(i, fp))
}

// segmentFraction returns how far fp sits within segment i, in [0, One].
func (p *Path) segmentFraction(i int, fp Fixed) Fixed {
	span := p.ps[i+1] - p.ps[i]
	if span == 0 {
		return 0
	}
	return Div(fp-p.ps[i], span)
}

// Angle returns the direction of travel at parameter fp, in radians.
// Within a segment the angle blends linearly from that segment's
// direction to the next segment's, picking the shorter turn among the
// three wraparound candidates, so corners are rounded off instead of
// snapping. Segment directions lie in (-Pi, Pi], but a blend whose turn
// crosses the seam at Pi can briefly leave that interval; Sin and Cos
// accept the result either way. The final segment of an open path has
// constant angle; on a closed path the successor of the last segment is
// the first.
func (p *Path) Angle(fp Fixed) Fixed {
	fp = p.clampP(fp)
	i := p.segment(fp)
	a1 := p.segmentAngle(i)

	last := len(p.xs) - 2
	next := i + 1
	if next > last {
		if !p.closed {
			return a1
		}
		next = 0
	}
	a2 := p.segmentAngle(next)

	d := a2 - a1
	if Abs(d+TwoPi) < Abs(d) {
		d += TwoPi
	} else if Abs(d-TwoPi) < Abs(d) {
		d -= TwoPi
	}
	return a1 + Mul(d, p.segmentFraction(i, fp))
}

// segmentAngle returns the direction of segment i.
func (p *Path) segmentAngle(i int) Fixed {
	return Atan2(p.ys[i+1]-p.ys[i], p.xs[i+1]-p.xs[i])
}

// Get evaluates one axis at parameter fp. This is the pure-function
// contract animation tweens drive: the tween owns the timing of fp, the
// path owns the geometry.
func (p *Path) Get(axis Axis, fp Fixed) Fixed {
	switch axis {
	case AxisY:
		return p.Y(fp)
	case AxisAngle:
		return p.Angle(fp)
	default:
		return p.X(fp)
	}
}

// Motion returns a closure evaluating one axis, for callers that want to
// hand a property function to an animation system without exposing the
// path itself.
func (p *Path) Motion(axis Axis) func(Fixed) Fixed {
	return func(fp Fixed) Fixed {
		return p.Get(axis, fp)
	}
}
