package pie

import (
	"bytes"
	"strconv"

	"github.com/matzehuels/chartblocks/pkg/chart"
	"github.com/matzehuels/chartblocks/pkg/geometry"
	"github.com/matzehuels/chartblocks/pkg/render"
)

// DefaultDonutStroke is used when a donut block leaves its stroke width blank.
const DefaultDonutStroke = "18"

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title string
}

// WithTitle sets the document <title>.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// StrokeWidth returns the stroke width slices are drawn with: the configured
// width for donuts, twice the radius (a filled disc) otherwise.
func StrokeWidth(p chart.CircleParams) string {
	if !p.Donut {
		return render.Num(2 * Radius)
	}
	if p.StrokeWidth == "" {
		return DefaultDonutStroke
	}
	return p.StrokeWidth
}

// CenterOffset returns the distance of the circle's center from both canvas
// edges: the radius plus half the stroke. Stroke widths with units count as
// a full disc.
func CenterOffset(p chart.CircleParams) float64 {
	w, err := strconv.ParseFloat(StrokeWidth(p), 64)
	if err != nil {
		w = 2 * Radius
	}
	return Radius + w/2
}

// RenderSVG serializes slices. Each arc runs from the point at its end angle
// back to the point at its start angle. The chart is vertically mirrored
// relative to screen conventions (see geometry.PointOnCircle).
func RenderSVG(slices []Slice, p chart.CircleParams, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	off := CenterOffset(p)
	stroke := StrokeWidth(p)

	var b render.Bounds
	b.Add(0, 0)
	b.Add(2*off, 2*off)

	var buf bytes.Buffer
	c := render.NewCanvas(&buf)
	c.Begin(b, r.title)

	c.Gid("slices")
	for _, s := range slices {
		for _, a := range s.Arcs {
			p0 := geometry.PointOnCircle(a.To, Radius, off)
			p1 := geometry.PointOnCircle(a.From, Radius, off)
			c.Arc(p0, p1, Radius,
				render.Attr("fill", "none"),
				render.Attr("stroke", s.Color),
				render.Attr("stroke-width", stroke))
		}
	}
	c.Gend()

	c.End()
	return buf.Bytes()
}
