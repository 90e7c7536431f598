package render

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/chartblocks/pkg/geometry"
)

// Canvas is an svgo document with float-coordinate helpers.
type Canvas struct {
	*svg.SVG
}

// NewCanvas starts a canvas that writes to w.
func NewCanvas(w io.Writer) *Canvas {
	return &Canvas{SVG: svg.New(w)}
}

// Begin writes the document header with a viewBox covering b and, when
// title is set, a <title> element.
func (c *Canvas) Begin(b Bounds, title string) {
	w := int(math.Ceil(b.Width()))
	h := int(math.Ceil(b.Height()))
	viewBox := fmt.Sprintf(`viewBox="%s %s %s %s"`, Num(b.MinX), Num(b.MinY), Num(b.Width()), Num(b.Height()))
	c.Start(w, h, viewBox)
	if title != "" {
		c.Title(title)
	}
}

// RectF draws a rectangle. A negative height grows the rectangle upwards
// from y instead of producing an invalid element.
func (c *Canvas) RectF(x, y, w, h float64, attrs ...string) {
	if h < 0 {
		y, h = y+h, -h
	}
	if w < 0 {
		x, w = x+w, -w
	}
	fmt.Fprintf(c.Writer, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
		Num(x), Num(y), Num(w), Num(h), joinAttrs(attrs))
}

// CircleF draws a circle.
func (c *Canvas) CircleF(cx, cy, r float64, attrs ...string) {
	fmt.Fprintf(c.Writer, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n",
		Num(cx), Num(cy), Num(r), joinAttrs(attrs))
}

// Polyline draws a connected path through pts in order.
func (c *Canvas) Polyline(pts []geometry.Point, attrs ...string) {
	if len(pts) == 0 {
		return
	}
	var d strings.Builder
	for i, p := range pts {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString(" L")
		}
		d.WriteString(Num(p.X) + "," + Num(p.Y))
	}
	c.Path(d.String(), attrs...)
}

// Arc draws a circular arc of radius r from p0 to p1 using a relative arc
// command with both the large-arc and sweep flags cleared.
func (c *Canvas) Arc(p0, p1 geometry.Point, r float64, attrs ...string) {
	d := fmt.Sprintf("M %s,%s a %s,%s 0 0,0 %s,%s",
		Num(p0.X), Num(p0.Y), Num(r), Num(r), Num(p1.X-p0.X), Num(p1.Y-p0.Y))
	c.Path(d, attrs...)
}

// Attr formats an escaped XML attribute. svgo writes any style argument that
// contains "=" verbatim, so Attr values can be passed to svgo primitives.
func Attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

// Num formats a coordinate with at most four decimals and no exponent.
func Num(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func joinAttrs(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return strings.Join(attrs, " ") + " "
}

// Bounds is an axis-aligned box grown to cover drawn shapes.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
	set                    bool
}

// Add grows b to include (x, y).
func (b *Bounds) Add(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX, b.MinY, b.MaxY = x, x, y, y
		b.set = true
		return
	}
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// AddBox grows b to include the box centered on (x, y) with half-size pad.
func (b *Bounds) AddBox(x, y, pad float64) {
	b.Add(x-pad, y-pad)
	b.Add(x+pad, y+pad)
}

// Empty reports whether nothing was added.
func (b Bounds) Empty() bool { return !b.set }

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
