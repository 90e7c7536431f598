package chart

import (
	"fmt"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

// Mode selects how a block is drawn.
type Mode int

const (
	// ModeRectangle draws bars and/or connected lines with corner dots.
	ModeRectangle Mode = iota + 1
	// ModeCircle draws a pie or donut.
	ModeCircle
)

// Mode tokens as they appear in the second field of a configuration row.
const (
	TokenRectangle = "r"
	TokenCircle    = "c"
)

// String returns a human readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeRectangle:
		return "rectangle"
	case ModeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ModeForToken maps a configuration row's mode token to a Mode.
func ModeForToken(token string) (Mode, bool) {
	switch token {
	case TokenRectangle:
		return ModeRectangle, true
	case TokenCircle:
		return ModeCircle, true
	}
	return 0, false
}

// Params holds the mode-specific settings of a block.
// It is implemented by RectParams and CircleParams only.
type Params interface {
	Mode() Mode
	params()
}

// RectParams configures a rectangle (bar/line) block.
type RectParams struct {
	ColumnWidth float64 // horizontal distance between samples, also bar width
	OffsetStep  float64 // vertical distance between consecutive series
	StrokeWidth float64 // width of the connecting line
	DotRadius   float64 // radius of the corner dots
	ShowFill    bool    // draw bars
	ShowOutline bool    // draw connecting lines and dots
}

// Mode returns ModeRectangle.
func (RectParams) Mode() Mode { return ModeRectangle }
func (RectParams) params()    {}

// CircleParams configures a circle (pie/donut) block.
type CircleParams struct {
	// StrokeWidth is passed through verbatim, so it may carry a unit ("1pt").
	// It only applies to donuts; a filled pie strokes at twice the radius.
	StrokeWidth string
	Donut       bool
}

// Mode returns ModeCircle.
func (CircleParams) Mode() Mode { return ModeCircle }
func (CircleParams) params()    {}

// Series is one data row: a color token and its samples.
type Series struct {
	Color  string
	Values []float64
}

// Block is one self-contained chart definition.
type Block struct {
	OutputName string
	Params     Params
	Series     []Series

	// FirstLine and LastLine are the 1-based record numbers (header = 1) the
	// block was parsed from. Blank lines are not counted.
	FirstLine, LastLine int
}

// Mode returns the block's drawing mode.
func (b *Block) Mode() Mode {
	if b.Params == nil {
		return 0
	}
	return b.Params.Mode()
}

// FileName is the name of the SVG document the block renders to.
func (b *Block) FileName() string {
	return b.OutputName + ".svg"
}

// Samples counts the samples over all series.
func (b *Block) Samples() int {
	n := 0
	for _, s := range b.Series {
		n += len(s.Values)
	}
	return n
}

// Weights returns one weight per series for circular charts: the series'
// first sample. A series without samples has no weight and is rejected.
func (b *Block) Weights() ([]float64, error) {
	weights := make([]float64, len(b.Series))
	for i, s := range b.Series {
		if len(s.Values) == 0 {
			return nil, errs.New(errs.ErrCodeMalformedInput,
				"%s: series %d (%s) has no value to weigh", b.OutputName, i, s.Color)
		}
		weights[i] = s.Values[0]
	}
	return weights, nil
}

// Colors returns the series colors in order.
func (b *Block) Colors() []string {
	colors := make([]string, len(b.Series))
	for i, s := range b.Series {
		colors[i] = s.Color
	}
	return colors
}
