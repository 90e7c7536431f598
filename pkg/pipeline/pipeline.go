// Package pipeline drives a chart source from rows to SVG files.
//
// A source holds any number of chart blocks back to back. The pipeline
// parses one block at a time, threading the parse cursor explicitly from
// one call to the next, renders each block with the renderer matching its
// mode, and writes one <output_name>.svg per block. Blocks share nothing
// except the cursor.
//
// # Usage
//
//	runner := pipeline.NewRunner(
//	    pipeline.WithOutputDir("out"),
//	    pipeline.WithLogger(logger),
//	)
//	result, err := runner.Run(ctx, source.ForPath("sample_data.csv", ""))
//	if err != nil {
//	    return err
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f)
//	}
//
// Render a single block without touching the filesystem:
//
//	_, blk, err := chart.ParseNext(src, 0)
//	artifact, err := pipeline.Render(blk)
//	os.Stdout.Write(artifact.SVG)
package pipeline

import (
	"time"

	"github.com/matzehuels/chartblocks/pkg/chart"
	errs "github.com/matzehuels/chartblocks/pkg/errors"
	"github.com/matzehuels/chartblocks/pkg/render/bars"
	"github.com/matzehuels/chartblocks/pkg/render/pie"
)

// FileExt is the extension of every exported chart.
const FileExt = ".svg"

// Artifact is one rendered block.
type Artifact struct {
	Name   string     // output name without extension
	Mode   chart.Mode // drawing mode of the block
	SVG    []byte
	Slices []pie.Slice // circle mode only
}

// FileName returns the name the artifact is exported under.
func (a *Artifact) FileName() string { return a.Name + FileExt }

// Result summarizes a completed run.
type Result struct {
	Files []string // written paths in block order
	Stats Stats
}

// Stats holds counters and timing for a run.
type Stats struct {
	Blocks     int
	Rectangles int
	Circles    int
	Duration   time.Duration
}

// Render draws blk with the renderer for its mode.
func Render(blk *chart.Block) (*Artifact, error) {
	a := &Artifact{Name: blk.OutputName, Mode: blk.Mode()}

	switch p := blk.Params.(type) {
	case chart.RectParams:
		l := bars.Build(p, blk.Series)
		a.SVG = bars.RenderSVG(l, bars.WithTitle(blk.OutputName))

	case chart.CircleParams:
		weights, err := blk.Weights()
		if err != nil {
			return nil, err
		}
		slices, err := pie.Build(weights, blk.Colors())
		if err != nil {
			return nil, errs.New(errs.GetCode(err), "block %q: %s", blk.OutputName, errs.UserMessage(err))
		}
		a.Slices = slices
		a.SVG = pie.RenderSVG(slices, p, pie.WithTitle(blk.OutputName))

	default:
		return nil, errs.New(errs.ErrCodeInternal, "block %q: unsupported parameters %T", blk.OutputName, blk.Params)
	}
	return a, nil
}
