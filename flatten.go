package fixmath

// maxCurveSegments caps the forward-differencing step count per cubic
// piece. Four pieces of sixteen segments bound one curve command at 64
// polyline segments.
const maxCurveSegments = 16

// cubic is one cubic Bezier in fixed-point coordinates.
type cubic struct {
	x0, y0, x1, y1, x2, y2, x3, y3 Fixed
}

func avg(a, b Fixed) Fixed {
	return Fixed((int64(a) + int64(b)) >> 1)
}

// split halves the cubic at t=0.5 with one level of De Casteljau.
func (c cubic) split() (cubic, cubic) {
	p01x, p01y := avg(c.x0, c.x1), avg(c.y0, c.y1)
	p12x, p12y := avg(c.x1, c.x2), avg(c.y1, c.y2)
	p23x, p23y := avg(c.x2, c.x3), avg(c.y2, c.y3)
	q0x, q0y := avg(p01x, p12x), avg(p01y, p12y)
	q1x, q1y := avg(p12x, p23x), avg(p12y, p23y)
	mx, my := avg(q0x, q1x), avg(q0y, q1y)

	left := cubic{c.x0, c.y0, p01x, p01y, q0x, q0y, mx, my}
	right := cubic{mx, my, q1x, q1y, p23x, p23y, c.x3, c.y3}
	return left, right
}

// chordDist returns the perpendicular distance of (px, py) from the chord
// (ax, ay)-(bx, by). Degenerate chords fall back to point distance.
func chordDist(ax, ay, bx, by, px, py Fixed) Fixed {
	length := Dist(ax, ay, bx, by)
	if length == 0 {
		return Dist(ax, ay, px, py)
	}
	cross := (int64(bx)-int64(ax))*(int64(py)-int64(ay)) -
		(int64(by)-int64(ay))*(int64(px)-int64(ax))
	if cross < 0 {
		cross = -cross
	}
	return saturate(Div64(cross>>FractionBits, int64(length)))
}

// segments derives the step count for one cubic piece from its curvature:
// the farther the inner control points sit from the chord, the more
// segments. The count is log2-scaled and capped.
func (c cubic) segments() int {
	d := max(
		chordDist(c.x0, c.y0, c.x3, c.y3, c.x1, c.y1),
		chordDist(c.x0, c.y0, c.x3, c.y3, c.x2, c.y2),
	)
	units := ToIntCeil(d)
	if units <= 1 {
		return 1
	}
	return Clamp(Log2(int32(units))+1, 1, maxCurveSegments)
}

// pointSink collects polyline vertices, dropping zero-length segments so
// the arc-length index never sees a repeated vertex mid-path.
type pointSink struct {
	xs, ys []Fixed
}

func (s *pointSink) add(x, y Fixed) {
	n := len(s.xs)
	if n > 0 && s.xs[n-1] == x && s.ys[n-1] == y {
		return
	}
	s.xs = append(s.xs, x)
	s.ys = append(s.ys, y)
}

// forwardDiff appends n evenly spaced points of the cubic, excluding the
// start point and forcing the last to the exact endpoint. The polynomial
// is evaluated by finite-difference recurrences at 32 fractional bits:
// constant-time per step, no repeated multiplication.
func forwardDiff(sink *pointSink, c cubic, n int) {
	if n <= 1 {
		sink.add(c.x3, c.y3)
		return
	}

	// Power-basis coefficients per axis: f(t) = a*t^3 + b*t^2 + g*t + d.
	ax := int64(c.x3) - int64(c.x0) + 3*(int64(c.x1)-int64(c.x2))
	bx := 3 * (int64(c.x0) - 2*int64(c.x1) + int64(c.x2))
	gx := 3 * (int64(c.x1) - int64(c.x0))
	ay := int64(c.y3) - int64(c.y0) + 3*(int64(c.y1)-int64(c.y2))
	by := 3 * (int64(c.y0) - 2*int64(c.y1) + int64(c.y2))
	gy := 3 * (int64(c.y1) - int64(c.y0))

	// Differences for step h = 1/n, at Q32: since h is an exact
	// reciprocal, the h powers become integer divisions by n, n^2, n^3.
	const up = FractionBits
	n1 := int64(n)
	n2 := n1 * n1
	n3 := n2 * n1

	fx := int64(c.x0) << up
	dfx := (ax<<up)/n3 + (bx<<up)/n2 + (gx<<up)/n1
	ddfx := (6*ax<<up)/n3 + (2*bx<<up)/n2
	dddfx := (6 * ax << up) / n3

	fy := int64(c.y0) << up
	dfy := (ay<<up)/n3 + (by<<up)/n2 + (gy<<up)/n1
	ddfy := (6*ay<<up)/n3 + (2*by<<up)/n2
	dddfy := (6 * ay << up) / n3

	for i := 1; i < n; i++ {
		fx += dfx
		dfx += ddfx
		ddfx += dddfx
		fy += dfy
		dfy += ddfy
		ddfy += dddfy
		sink.add(Fixed(fx>>up), Fixed(fy>>up))
	}
	sink.add(c.x3, c.y3)
}

// flattenCurve turns one cubic command into polyline points: two levels of
// midpoint subdivision produce four pieces, each forward-differenced with
// a curvature-derived segment count.
func flattenCurve(sink *pointSink, c cubic) {
	left, right := c.split()
	ll, lr := left.split()
	rl, rr := right.split()
	for _, piece := range [4]cubic{ll, lr, rl, rr} {
		forwardDiff(sink, piece, piece.segments())
	}
}

// flattenCommands converts normalized draw commands into the polyline the
// arc-length index is built over.
func flattenCommands(cmds []pathCmd) (xs, ys []Fixed) {
	sink := &pointSink{
		xs: make([]Fixed, 0, len(cmds)*4),
		ys: make([]Fixed, 0, len(cmds)*4),
	}
	var curX, curY Fixed
	for _, cmd := range cmds {
		switch cmd.op {
		case opMove:
			sink.add(cmd.x, cmd.y)
		case opLine:
			sink.add(cmd.x, cmd.y)
		case opCurve:
			flattenCurve(sink, cubic{
				curX, curY,
				cmd.cx1, cmd.cy1,
				cmd.cx2, cmd.cy2,
				cmd.x, cmd.y,
			})
		}
		curX, curY = cmd.x, cmd.y
	}
	return sink.xs, sink.ys
}
