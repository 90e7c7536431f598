// Package pie lays out and renders circle-mode blocks as pies or donuts.
package pie

import (
	"math"

	"github.com/matzehuels/chartblocks/pkg/geometry"
)

// Radius is the radius every circular chart is drawn at, 180/π user units
// (one radian expressed in degrees).
const Radius = 180 / math.Pi

// Arc is an angular interval in degrees.
type Arc struct {
	From, To float64
}

// Slice is the laid-out share of one series.
type Slice struct {
	Index   int
	Color   string
	Weight  float64
	Percent int // rounded share of the total
	Start   int // cumulative degrees before this slice
	End     int // cumulative degrees after this slice
	Split   bool
	Arcs    []Arc
}

// Span returns the slice's angular size in degrees.
func (s Slice) Span() int { return s.End - s.Start }

// Build walks the weights in order and assigns each one its angular
// interval. A slice holding more than half of the total is split into two
// arcs at its angular midpoint so neither arc exceeds 180°.
func Build(weights []float64, colors []string) ([]Slice, error) {
	slices := make([]Slice, 0, len(weights))
	prev := 0
	for i, w := range weights {
		overHalf, cum, err := geometry.SliceSpan(weights, i)
		if err != nil {
			return nil, err
		}
		pct, err := geometry.Percent(weights, i)
		if err != nil {
			return nil, err
		}

		s := Slice{Index: i, Weight: w, Percent: pct, Start: prev, End: cum, Split: overHalf}
		if i < len(colors) {
			s.Color = colors[i]
		}
		if overHalf {
			mid := float64(prev) + float64(cum-prev)/2
			s.Arcs = []Arc{{From: float64(prev), To: mid}, {From: mid, To: float64(cum)}}
		} else {
			s.Arcs = []Arc{{From: float64(prev), To: float64(cum)}}
		}

		slices = append(slices, s)
		prev = cum
	}
	return slices, nil
}
