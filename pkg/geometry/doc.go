// Package geometry maps chart values to angular and linear coordinates.
//
// # Overview
//
// Everything here is a pure function of its arguments: no state, no I/O.
// The renderers in [render/pie] and [render/bars] call into this package and
// turn the results into drawing primitives.
//
// # Circular Charts
//
// [CumulativeAngle] answers "how far around the circle have we traveled by
// the end of slice i". It is cumulative, not per-slice: a slice spans the
// difference between two consecutive cumulative angles. The last index always
// lands on exactly 360.
//
// [SliceSpan] adds the half-circle test: a slice whose rounded share is
// strictly greater than 50% cannot be drawn as a single SVG arc with a fixed
// large-arc flag, so the renderer splits it in two. A share of exactly 50%
// is not split.
//
// [PointOnCircle] converts an angle to a point. 0° points East and angles
// grow towards +Y. In SVG's Y-down space that turns clockwise on screen, so
// circular charts come out vertically mirrored. Downstream tooling flips them
// and this package keeps the convention as is.
//
// # Stacked Charts
//
// [VerticalOffset] places series i at i*step. The band depends only on the
// series position, never on its data.
//
// # Rounding
//
// Angles and percentages round half to even, so 2.5 becomes 2 and 3.5
// becomes 4.
//
// [render/pie]: github.com/matzehuels/chartblocks/pkg/render/pie
// [render/bars]: github.com/matzehuels/chartblocks/pkg/render/bars
package geometry
