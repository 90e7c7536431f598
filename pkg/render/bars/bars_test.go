package bars

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/chartblocks/pkg/chart"
	"github.com/matzehuels/chartblocks/pkg/geometry"
)

func TestBuildBars(t *testing.T) {
	p := chart.RectParams{ColumnWidth: 80, OffsetStep: 0, StrokeWidth: 1, DotRadius: 2, ShowFill: true}
	l := Build(p, []chart.Series{{Color: "red", Values: []float64{10, 20, 30}}})

	want := []Bar{
		{X: 0, Y: -10, W: 80, H: 10, Color: "red"},
		{X: 80, Y: -20, W: 80, H: 20, Color: "red"},
		{X: 160, Y: -30, W: 80, H: 30, Color: "red"},
	}
	if !reflect.DeepEqual(l.Bars, want) {
		t.Errorf("Bars = %+v, want %+v", l.Bars, want)
	}
	if len(l.Lines) != 0 || len(l.Dots) != 0 {
		t.Errorf("outline disabled but got %d lines, %d dots", len(l.Lines), len(l.Dots))
	}
}

func TestBuildStacksSeriesByIndex(t *testing.T) {
	p := chart.RectParams{ColumnWidth: 10, OffsetStep: 100, ShowFill: true, ShowOutline: true}
	series := []chart.Series{
		{Color: "a", Values: []float64{5}},
		{Color: "b", Values: []float64{500}},
		{Color: "c", Values: []float64{1, 2}},
	}
	l := Build(p, series)

	// The band of each series depends on its position only.
	wantY := []float64{-5, 100 - 500, 200 - 1, 200 - 2}
	if len(l.Bars) != len(wantY) {
		t.Fatalf("len(Bars) = %d, want %d", len(l.Bars), len(wantY))
	}
	for i, y := range wantY {
		if l.Bars[i].Y != y {
			t.Errorf("Bars[%d].Y = %v, want %v", i, l.Bars[i].Y, y)
		}
	}

	if len(l.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(l.Lines))
	}
	wantPts := []geometry.Point{{X: 0, Y: 199}, {X: 10, Y: 198}}
	if !reflect.DeepEqual(l.Lines[2].Points, wantPts) {
		t.Errorf("Lines[2].Points = %v, want %v", l.Lines[2].Points, wantPts)
	}
	if len(l.Dots) != 4 {
		t.Errorf("len(Dots) = %d, want 4", len(l.Dots))
	}
}

func TestBuildSkipsEmptySeriesLine(t *testing.T) {
	p := chart.RectParams{ColumnWidth: 10, ShowFill: true, ShowOutline: true}
	l := Build(p, []chart.Series{{Color: "a"}, {Color: "b", Values: []float64{1}}})

	if len(l.Lines) != 1 || l.Lines[0].Color != "b" {
		t.Errorf("Lines = %+v, want one line for series b", l.Lines)
	}
	if len(l.Bars) != 1 {
		t.Errorf("len(Bars) = %d, want 1", len(l.Bars))
	}
}

func TestBuildNothingEnabled(t *testing.T) {
	l := Build(chart.RectParams{ColumnWidth: 10}, []chart.Series{{Color: "a", Values: []float64{1, 2}}})
	if len(l.Bars)+len(l.Lines)+len(l.Dots) != 0 {
		t.Errorf("Build() with both displays off = %+v, want no shapes", l)
	}
}

func TestRenderSVG(t *testing.T) {
	p := chart.RectParams{ColumnWidth: 80, StrokeWidth: 1, DotRadius: 2, ShowFill: true, ShowOutline: true}
	l := Build(p, []chart.Series{{Color: "red", Values: []float64{10, 20, 30}}})
	out := string(RenderSVG(l, WithTitle("out")))

	wants := []string{
		`<title>out</title>`,
		`<g id="bars">`,
		`<rect x="0" y="-10" width="80" height="10" fill="red" />`,
		`<rect x="80" y="-20" width="80" height="20" fill="red" />`,
		`<rect x="160" y="-30" width="80" height="30" fill="red" />`,
		`d="M0,-10 L80,-20 L160,-30"`,
		`stroke-width="1"`,
		`<circle cx="160" cy="-30" r="2" fill="red" />`,
		`viewBox="-2 -32 242 32"`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSVG() missing %s\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<circle"); n != 3 {
		t.Errorf("dot count = %d, want 3", n)
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	out := string(RenderSVG(Layout{}))
	if strings.Contains(out, "<rect") || strings.Contains(out, "<path") {
		t.Errorf("RenderSVG(empty) drew shapes:\n%s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Errorf("RenderSVG(empty) is not a complete document:\n%s", out)
	}
}
