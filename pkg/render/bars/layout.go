// Package bars lays out and renders rectangle-mode blocks: stacked bar
// charts and line charts with corner dots.
//
// Series i is drawn on the baseline i*OffsetStep. Sample j of a series sits
// at x = j*ColumnWidth and y = baseline - value, so bars grow towards -Y from
// their baseline. Bars, lines, and dots are controlled independently by
// the block's ShowFill and ShowOutline flags.
package bars

import (
	"github.com/matzehuels/chartblocks/pkg/chart"
	"github.com/matzehuels/chartblocks/pkg/geometry"
)

// Bar is one filled rectangle. H is the sample value; the rectangle spans
// Y..Y+H, ending on the series baseline.
type Bar struct {
	X, Y, W, H float64
	Color      string
}

// Line connects the samples of one series in order.
type Line struct {
	Points []geometry.Point
	Color  string
}

// Dot marks one sample point.
type Dot struct {
	Center geometry.Point
	Color  string
}

// Layout holds every shape of a rectangle-mode block in drawing order.
type Layout struct {
	Bars        []Bar
	Lines       []Line
	Dots        []Dot
	StrokeWidth float64
	DotRadius   float64
}

// Build positions the bars, lines, and dots for series under p.
func Build(p chart.RectParams, series []chart.Series) Layout {
	l := Layout{StrokeWidth: p.StrokeWidth, DotRadius: p.DotRadius}

	for i, s := range series {
		base := geometry.VerticalOffset(i, p.OffsetStep)

		pts := make([]geometry.Point, len(s.Values))
		for j, v := range s.Values {
			pts[j] = geometry.Point{X: float64(j) * p.ColumnWidth, Y: -v + base}
		}

		if p.ShowFill {
			for j, v := range s.Values {
				l.Bars = append(l.Bars, Bar{X: pts[j].X, Y: pts[j].Y, W: p.ColumnWidth, H: v, Color: s.Color})
			}
		}

		if p.ShowOutline && len(pts) > 0 {
			l.Lines = append(l.Lines, Line{Points: pts, Color: s.Color})
			for _, pt := range pts {
				l.Dots = append(l.Dots, Dot{Center: pt, Color: s.Color})
			}
		}
	}
	return l
}
