package bars

import (
	"bytes"

	"github.com/matzehuels/chartblocks/pkg/render"
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title string
}

// WithTitle sets the document <title>.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG serializes l. Bars come first, then lines, then dots, so dots
// sit on top of the lines they mark.
func RenderSVG(l Layout, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	c := render.NewCanvas(&buf)
	c.Begin(bounds(l), r.title)

	if len(l.Bars) > 0 {
		c.Gid("bars")
		for _, b := range l.Bars {
			c.RectF(b.X, b.Y, b.W, b.H, render.Attr("fill", b.Color))
		}
		c.Gend()
	}

	if len(l.Lines) > 0 {
		c.Gid("lines")
		for _, ln := range l.Lines {
			c.Polyline(ln.Points,
				render.Attr("fill", "none"),
				render.Attr("stroke", ln.Color),
				render.Attr("stroke-width", render.Num(l.StrokeWidth)))
		}
		c.Gend()

		c.Gid("dots")
		for _, d := range l.Dots {
			c.CircleF(d.Center.X, d.Center.Y, l.DotRadius, render.Attr("fill", d.Color))
		}
		c.Gend()
	}

	c.End()
	return buf.Bytes()
}

func bounds(l Layout) render.Bounds {
	var b render.Bounds
	for _, bar := range l.Bars {
		b.Add(bar.X, bar.Y)
		b.Add(bar.X+bar.W, bar.Y+bar.H)
	}
	pad := max(l.DotRadius, l.StrokeWidth/2)
	for _, ln := range l.Lines {
		for _, p := range ln.Points {
			b.AddBox(p.X, p.Y, pad)
		}
	}
	return b
}
