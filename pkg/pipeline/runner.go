package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartblocks/pkg/chart"
	errs "github.com/matzehuels/chartblocks/pkg/errors"
	"github.com/matzehuels/chartblocks/pkg/render/pie"
	"github.com/matzehuels/chartblocks/pkg/source"
)

// Reporter receives the user-facing output of a run.
type Reporter interface {
	// Slice is called once per circular-chart slice, in slice order.
	Slice(output string, s pie.Slice)
	// Exported is called after a chart file has been written.
	Exported(path string)
}

type nopReporter struct{}

func (nopReporter) Slice(string, pie.Slice) {}
func (nopReporter) Exported(string)         {}

// Runner parses, renders, and exports every block of a source.
//
// A Runner holds no per-run state. The parse cursor lives on the stack of
// Blocks, so one Runner may serve several sources in turn.
type Runner struct {
	OutDir   string
	Logger   *log.Logger
	Reporter Reporter
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutputDir sets the directory charts are written to.
func WithOutputDir(dir string) Option {
	return func(r *Runner) { r.OutDir = dir }
}

// WithLogger sets the logger for run progress.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.Logger = l }
}

// WithReporter sets the receiver of slice and export notifications.
func WithReporter(rep Reporter) Option {
	return func(r *Runner) { r.Reporter = rep }
}

// NewRunner creates a runner writing to the current directory.
// Nil loggers and reporters are replaced with defaults.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{OutDir: "."}
	for _, opt := range opts {
		opt(r)
	}
	if r.OutDir == "" {
		r.OutDir = "."
	}
	if r.Logger == nil {
		r.Logger = log.Default()
	}
	if r.Reporter == nil {
		r.Reporter = nopReporter{}
	}
	return r
}

// Blocks parses src block by block and calls fn for each one until the
// cursor reaches the end of the source. The first parse always runs, so an
// empty or header-only source surfaces the parser's MALFORMED_INPUT error.
func (r *Runner) Blocks(ctx context.Context, src source.Source, fn func(*chart.Block) error) error {
	total, err := source.Count(src)
	if err != nil {
		return err
	}
	r.Logger.Debug("counted rows", "source", src.Name(), "rows", total)

	cur := chart.Cursor(0)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, blk, err := chart.ParseNext(src, cur)
		if err != nil {
			return err
		}
		if next <= cur {
			return errs.New(errs.ErrCodeInternal, "%s: parser made no progress at cursor %d", src.Name(), cur)
		}
		r.Logger.Debug("parsed block",
			"cursor", int(cur),
			"name", blk.OutputName,
			"mode", blk.Mode(),
			"series", len(blk.Series),
			"first_line", blk.FirstLine,
			"last_line", blk.LastLine)

		if err := fn(blk); err != nil {
			return err
		}

		cur = next
		if int(cur) >= total {
			return nil
		}
	}
}

// Run renders and exports every block of src. A fatal error stops the run;
// files already written for earlier blocks stay on disk.
func (r *Runner) Run(ctx context.Context, src source.Source) (*Result, error) {
	start := time.Now()
	result := &Result{}

	err := r.Blocks(ctx, src, func(blk *chart.Block) error {
		a, err := Render(blk)
		if err != nil {
			return err
		}
		for _, s := range a.Slices {
			r.Reporter.Slice(a.Name, s)
		}

		path, err := r.Export(a)
		if err != nil {
			return err
		}
		r.Reporter.Exported(path)

		result.Files = append(result.Files, path)
		result.Stats.Blocks++
		switch a.Mode {
		case chart.ModeRectangle:
			result.Stats.Rectangles++
		case chart.ModeCircle:
			result.Stats.Circles++
		}
		return nil
	})
	result.Stats.Duration = time.Since(start)
	if err != nil {
		return result, err
	}

	r.Logger.Info("rendered charts",
		"source", src.Name(),
		"blocks", result.Stats.Blocks,
		"duration", result.Stats.Duration.Round(time.Millisecond))
	return result, nil
}

// Export writes a to the output directory and returns the written path.
func (r *Runner) Export(a *Artifact) (path string, err error) {
	if err := errs.ValidateOutputName(a.Name); err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "create output directory %s", r.OutDir)
	}

	path = filepath.Join(r.OutDir, a.FileName())
	f, err := os.Create(path)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrCodeInternal, cerr, "close %s", path)
		}
	}()

	if _, err := f.Write(a.SVG); err != nil {
		return "", errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	r.Logger.Info("exported chart", "path", path, "bytes", len(a.SVG))
	return path, nil
}
