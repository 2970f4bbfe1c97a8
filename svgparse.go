package fixmath

import "fmt"

// ParseError describes malformed path data or a malformed number. Parse
// errors are expected on user content: report them, don't treat them as
// programming bugs.
type ParseError struct {
	Cmd byte   // offending command letter, 0 when no command applies
	Pos int    // byte position in the input
	Msg string // what went wrong
}

func (e *ParseError) Error() string {
	if e.Cmd != 0 {
		return fmt.Sprintf("fixmath: bad path data: %s in command %q at position %d", e.Msg, e.Cmd, e.Pos)
	}
	return fmt.Sprintf("fixmath: bad number: %s at position %d", e.Msg, e.Pos)
}

// Normalized draw command opcodes. The parser reduces the full SVG command
// set to these three; everything downstream only understands them.
const (
	opMove = iota
	opLine
	opCurve
)

// pathCmd is one normalized draw command. Control points are only
// meaningful for opCurve.
type pathCmd struct {
	op                 int
	cx1, cy1, cx2, cy2 Fixed
	x, y               Fixed
}

// cmdArity maps each SVG command letter (uppercased) to its parameter
// count.
var cmdArity = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func isPathSep(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t'
}

func startsNumber(b byte) bool {
	return b >= '0' && b <= '9' || b == '.' || b == '-' || b == '+'
}

// parsePathData scans an SVG path-data string into normalized commands.
//
// Accepted grammar: M/L/H/V/C/S/Q/T/A/Z, uppercase absolute or lowercase
// relative, with whitespace/comma-flexible parameter lists. A number that
// starts with '-' may be glued to the previous one ("10.4-5.6" is two
// numbers). Quadratics are raised to cubics, arcs are converted to cubic
// runs. The path must be a single contiguous subpath: exactly one leading
// MoveTo, and Z only as the final command.
func parsePathData(s string) ([]pathCmd, error) {
	data := []byte(s)
	pos := 0
	skip := func() {
		for pos < len(data) && isPathSep(data[pos]) {
			pos++
		}
	}

	skip()
	if pos >= len(data) {
		return nil, &ParseError{Cmd: 'M', Pos: pos, Msg: "empty path"}
	}
	if startsNumber(data[pos]) {
		return nil, &ParseError{Cmd: data[pos], Pos: pos, Msg: "path must start with a command"}
	}

	var cmds []pathCmd
	var curX, curY Fixed     // current point
	var startX, startY Fixed // first MoveTo, target of Z
	var lastCX, lastCY Fixed // last cubic second control point, for S
	var lastQX, lastQY Fixed // last quadratic control point, for T
	var params [7]Fixed
	prevCmd := byte(0)
	closed := false

	for {
		skip()
		if pos >= len(data) {
			break
		}
		if closed {
			return nil, &ParseError{Cmd: data[pos], Pos: pos, Msg: "command after Z"}
		}

		cmd := prevCmd
		if !startsNumber(data[pos]) {
			cmd = data[pos]
			pos++
			skip()
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, &ParseError{Cmd: data[pos], Pos: pos, Msg: "number without a command"}
		} else if cmd == 'M' {
			// Repeated MoveTo coordinate sets are LineTo per SVG.
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}

		upper := cmd
		if upper >= 'a' && upper <= 'z' {
			upper -= 'a' - 'A'
		}
		arity, ok := cmdArity[upper]
		if !ok {
			return nil, &ParseError{Cmd: cmd, Pos: pos, Msg: "unknown command"}
		}

		for j := 0; j < arity; j++ {
			skip()
			if upper == 'A' && (j == 3 || j == 4) {
				// The two arc flags are single literal digits.
				if pos >= len(data) || (data[pos] != '0' && data[pos] != '1') {
					return nil, &ParseError{Cmd: cmd, Pos: pos, Msg: "arc flag must be 0 or 1"}
				}
				params[j] = Fixed(data[pos]-'0') << FractionBits
				pos++
				continue
			}
			f, n, err := parseFixedPrefix(data[pos:])
			if err != nil || n == 0 {
				return nil, &ParseError{Cmd: cmd, Pos: pos,
					Msg: fmt.Sprintf("expected %d numbers", arity)}
			}
			params[j] = f
			pos += n
		}

		relative := cmd >= 'a' && cmd <= 'z'
		rx, ry := Fixed(0), Fixed(0)
		if relative {
			rx, ry = curX, curY
		}

		switch upper {
		case 'M':
			if len(cmds) > 0 {
				return nil, &ParseError{Cmd: cmd, Pos: pos,
					Msg: "path must be a single contiguous subpath"}
			}
			curX, curY = rx+params[0], ry+params[1]
			startX, startY = curX, curY
			cmds = append(cmds, pathCmd{op: opMove, x: curX, y: curY})
		case 'Z':
			curX, curY = startX, startY
			cmds = append(cmds, pathCmd{op: opLine, x: curX, y: curY})
			closed = true
		case 'L':
			curX, curY = rx+params[0], ry+params[1]
			cmds = append(cmds, pathCmd{op: opLine, x: curX, y: curY})
		case 'H':
			curX = rx + params[0]
			cmds = append(cmds, pathCmd{op: opLine, x: curX, y: curY})
		case 'V':
			curY = ry + params[0]
			cmds = append(cmds, pathCmd{op: opLine, x: curX, y: curY})
		case 'C':
			c1x, c1y := rx+params[0], ry+params[1]
			c2x, c2y := rx+params[2], ry+params[3]
			x, y := rx+params[4], ry+params[5]
			cmds = append(cmds, pathCmd{op: opCurve, cx1: c1x, cy1: c1y, cx2: c2x, cy2: c2y, x: x, y: y})
			lastCX, lastCY = c2x, c2y
			curX, curY = x, y
		case 'S':
			c1x, c1y := curX, curY
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1x = 2*curX - lastCX
				c1y = 2*curY - lastCY
			}
			c2x, c2y := rx+params[0], ry+params[1]
			x, y := rx+params[2], ry+params[3]
			cmds = append(cmds, pathCmd{op: opCurve, cx1: c1x, cy1: c1y, cx2: c2x, cy2: c2y, x: x, y: y})
			lastCX, lastCY = c2x, c2y
			curX, curY = x, y
		case 'Q':
			qx, qy := rx+params[0], ry+params[1]
			x, y := rx+params[2], ry+params[3]
			cmds = append(cmds, quadToCubic(curX, curY, qx, qy, x, y))
			lastQX, lastQY = qx, qy
			curX, curY = x, y
		case 'T':
			qx, qy := curX, curY
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				qx = 2*curX - lastQX
				qy = 2*curY - lastQY
			}
			x, y := rx+params[0], ry+params[1]
			cmds = append(cmds, quadToCubic(curX, curY, qx, qy, x, y))
			lastQX, lastQY = qx, qy
			curX, curY = x, y
		case 'A':
			radX, radY := params[0], params[1]
			angle := MulDiv(params[2], Pi, 180*One)
			largeArc := params[3] != 0
			sweep := params[4] != 0
			x, y := rx+params[5], ry+params[6]
			arcToCurves(&cmds, curX, curY, radX, radY, angle, largeArc, sweep, x, y)
			curX, curY = x, y
		}

		if len(cmds) > 0 && cmds[0].op != opMove {
			return nil, &ParseError{Cmd: cmd, Pos: pos, Msg: "path must start with MoveTo"}
		}
		prevCmd = cmd
	}

	if len(cmds) == 0 {
		return nil, &ParseError{Cmd: 'M', Pos: pos, Msg: "empty path"}
	}
	return cmds, nil
}

// quadToCubic raises a quadratic Bezier to the cubic with the same shape:
// the cubic controls sit two thirds of the way from each endpoint to the
// quadratic control point.
func quadToCubic(x0, y0, qx, qy, x1, y1 Fixed) pathCmd {
	twoThirds := func(from, to Fixed) Fixed {
		return from + saturate((int64(to)-int64(from))*2/3)
	}
	return pathCmd{
		op:  opCurve,
		cx1: twoThirds(x0, qx), cy1: twoThirds(y0, qy),
		cx2: twoThirds(x1, qx), cy2: twoThirds(y1, qy),
		x: x1, y: y1,
	}
}

// arcToCurves converts an SVG elliptical arc to one or more cubic Beziers
// using the standard center parameterization, evaluated entirely in fixed
// point so the result is deterministic. The angular span is split into
// chunks of at most a quarter turn; each chunk becomes one cubic whose
// control distance is the tangent-matched alpha factor.
func arcToCurves(cmds *[]pathCmd, x0, y0, rx, ry, phi Fixed, largeArc, sweep bool, x1, y1 Fixed) {
	if x0 == x1 && y0 == y1 {
		return
	}
	rx, ry = Abs(rx), Abs(ry)
	if rx == 0 || ry == 0 {
		*cmds = append(*cmds, pathCmd{op: opLine, x: x1, y: y1})
		return
	}

	cosPhi, sinPhi := Cos(phi), Sin(phi)

	// Half chord, rotated into the ellipse frame.
	dx2 := saturate((int64(x0) - int64(x1)) / 2)
	dy2 := saturate((int64(y0) - int64(y1)) / 2)
	xp := Mul(cosPhi, dx2) + Mul(sinPhi, dy2)
	yp := Mul(cosPhi, dy2) - Mul(sinPhi, dx2)

	// Out-of-range radii are corrected by uniform scaling, per the SVG
	// rendering rules.
	tx, ty := Div(xp, rx), Div(yp, ry)
	lambda := Mul(tx, tx) + Mul(ty, ty)
	if lambda > One {
		s := Sqrt(lambda)
		rx, ry = Mul(rx, s), Mul(ry, s)
		Logger().Warn("fixmath: arc radii too small for endpoints, scaling up",
			"scale", ToFloat64(s))
		tx, ty = Div(xp, rx), Div(yp, ry)
		lambda = Mul(tx, tx) + Mul(ty, ty)
	}

	// Center of the ellipse in the rotated frame:
	// c' = +-sqrt((1-lambda)/lambda) * (rx*yp/ry, -ry*xp/rx).
	var coef Fixed
	if lambda > 0 && lambda < One {
		coef = Sqrt(Div(One-lambda, lambda))
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := Mul(coef, MulDiv(rx, yp, ry))
	cyp := -Mul(coef, MulDiv(ry, xp, rx))

	// Back to user space.
	cx := Mul(cosPhi, cxp) - Mul(sinPhi, cyp) + saturate((int64(x0)+int64(x1))/2)
	cy := Mul(sinPhi, cxp) + Mul(cosPhi, cyp) + saturate((int64(y0)+int64(y1))/2)

	// Start angle and signed sweep.
	theta1 := Atan2(Div(yp-cyp, ry), Div(xp-cxp, rx))
	theta2 := Atan2(Div(-yp-cyp, ry), Div(-xp-cxp, rx))
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += TwoPi
	} else if !sweep && dTheta > 0 {
		dTheta -= TwoPi
	}

	n := IntDivCeil(int(Abs(dTheta)), int(HalfPi))
	if n < 1 {
		n = 1
	}
	step := dTheta / Fixed(n)

	// Tangent-matched control distance for one step:
	// alpha = sin(step) * (sqrt(4 + 3*tan^2(step/2)) - 1) / 3.
	// The sign of sin(step) carries the sweep direction.
	t := Tan(step / 2)
	alpha := MulDiv(Sin(step), Sqrt(4*One+3*Mul(t, t))-One, 3*One)

	ellipsePoint := func(angle Fixed) (Fixed, Fixed) {
		ex := Mul(rx, Cos(angle))
		ey := Mul(ry, Sin(angle))
		return cx + Mul(cosPhi, ex) - Mul(sinPhi, ey),
			cy + Mul(sinPhi, ex) + Mul(cosPhi, ey)
	}
	ellipseTangent := func(angle Fixed) (Fixed, Fixed) {
		ex := -Mul(rx, Sin(angle))
		ey := Mul(ry, Cos(angle))
		return Mul(cosPhi, ex) - Mul(sinPhi, ey),
			Mul(sinPhi, ex) + Mul(cosPhi, ey)
	}

	px, py := x0, y0
	a := theta1
	for i := 0; i < n; i++ {
		b := a + step
		t1x, t1y := ellipseTangent(a)
		t2x, t2y := ellipseTangent(b)
		nx, ny := ellipsePoint(b)
		if i == n-1 {
			// Land exactly on the commanded endpoint regardless of
			// accumulated rounding.
			nx, ny = x1, y1
		}
		*cmds = append(*cmds, pathCmd{
			op:  opCurve,
			cx1: px + Mul(alpha, t1x), cy1: py + Mul(alpha, t1y),
			cx2: nx - Mul(alpha, t2x), cy2: ny - Mul(alpha, t2y),
			x: nx, y: ny,
		})
		px, py = nx, ny
		a = b
	}
}
