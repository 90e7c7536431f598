package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/chartblocks/pkg/geometry"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{80, "80"},
		{-20, "-20"},
		{12.5, "12.5"},
		{57.29577951308232, "57.2958"},
		{-0.00001, "0"},
		{1e-12, "0"},
		{1234567, "1234567"},
	}

	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAttr(t *testing.T) {
	tests := []struct {
		name, value, want string
	}{
		{"fill", "red", `fill="red"`},
		{"fill", "#f9f06b", `fill="#f9f06b"`},
		{"stroke", "rgb(1,2,3)", `stroke="rgb(1,2,3)"`},
		{"fill", `"><script>`, `fill="&#34;&gt;&lt;script&gt;"`},
	}

	for _, tt := range tests {
		if got := Attr(tt.name, tt.value); got != tt.want {
			t.Errorf("Attr(%q, %q) = %s, want %s", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Error("zero Bounds should be empty")
	}

	b.Add(0, -10)
	b.Add(80, 0)
	b.AddBox(160, -30, 2)

	if b.Empty() {
		t.Error("Bounds should not be empty after Add")
	}
	if b.MinX != 0 || b.MinY != -32 || b.MaxX != 162 || b.MaxY != 0 {
		t.Errorf("Bounds = %+v, want min (0,-32) max (162,0)", b)
	}
	if b.Width() != 162 || b.Height() != 32 {
		t.Errorf("size = %vx%v, want 162x32", b.Width(), b.Height())
	}
}

func TestCanvasPrimitives(t *testing.T) {
	var buf bytes.Buffer
	c := NewCanvas(&buf)

	var b Bounds
	b.Add(-5, -40)
	b.Add(100, 0)
	c.Begin(b, "chart")
	c.RectF(0, 0, 10, -20, Attr("fill", "red"))
	c.CircleF(1.5, -2, 2.5, Attr("fill", "blue"))
	c.Polyline([]geometry.Point{{X: 0, Y: -10}, {X: 80, Y: -20}}, Attr("stroke", "red"))
	c.Polyline(nil, Attr("stroke", "none"))
	c.Arc(geometry.Point{X: 10, Y: 0}, geometry.Point{X: 0, Y: 10}, 10, Attr("stroke", "green"))
	c.End()

	out := buf.String()
	wants := []string{
		`viewBox="-5 -40 105 40"`,
		`<title>chart</title>`,
		`<rect x="0" y="-20" width="10" height="20" fill="red" />`,
		`<circle cx="1.5" cy="-2" r="2.5" fill="blue" />`,
		`d="M0,-10 L80,-20"`,
		`d="M 10,0 a 10,10 0 0,0 -10,10"`,
		`</svg>`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<path"); n != 2 {
		t.Errorf("path count = %d, want 2", n)
	}
}
