// Package fixmath provides deterministic Q16.16 fixed-point math and 2D
// geometry for frame-synchronous animation code.
//
// # Overview
//
// fixmath is the numeric core of a 2D sprite engine. Every position, angle
// and animation parameter is a [Fixed] value: a 32-bit signed integer whose
// low 16 bits hold the fraction. All operations are integer-only, so results
// are bit-for-bit identical on every platform, which keeps replays and
// networked simulations in sync.
//
// The package is organized in layers:
//
//   - Scalar math: conversions, [Mul], [Div], [Sqrt], trigonometry, noise
//     and interpolation.
//   - Geometry values: [Rect], [Tuple2i].
//   - [Transform]: a 2x3 affine matrix with type-tagged fast paths.
//   - [Path]: an arc-length-parameterized polyline built from SVG path data,
//     queried per animation frame at constant speed.
//
// # Quick Start
//
//	import "github.com/genail/fixmath"
//
//	angle := fixmath.ToFixed64(0.75)
//	x := fixmath.Mul(fixmath.Cos(angle), fixmath.ToFixed(120))
//
//	path, err := fixmath.ParsePath("M 0 0 C 50 0 100 50 100 100")
//	if err != nil {
//	    // malformed path data
//	}
//	midX := path.X(fixmath.OneHalf)
//
// # Concurrency
//
// Scalar functions are pure and safe for unrestricted concurrent use.
// [Rect], [Tuple2i] and [Transform] are mutable value types owned by their
// caller. [Path] queries update an internal single-entry cache, so even
// read-only use of one Path from multiple goroutines needs external
// synchronization.
package fixmath
