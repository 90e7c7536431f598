// Package pkg provides the core libraries for chartblocks.
//
// # Overview
//
// chartblocks turns a table of chart blocks into SVG charts. A block is a
// configuration row followed by one data row per series; the configuration
// row's second field selects bar/line charts ("r") or pie/donut charts ("c").
//
// # Architecture
//
// The data flow through chartblocks:
//
//	CSV / XLSX rows
//	         ↓
//	    [source] package (row sources, input resolution)
//	         ↓
//	    [chart] package (block parser, explicit cursor)
//	         ↓
//	    [geometry] package (angles, percentages, offsets)
//	         ↓
//	    [render/bars] or [render/pie] (layout + SVG sink)
//	         ↓
//	    <output_name>.svg
//
// [pipeline] drives the loop: it threads the cursor from block to block,
// dispatches each block by mode, and writes the files.
//
// # Quick Start
//
//	src := source.ForPath("sample_data.csv", "")
//	runner := pipeline.NewRunner(pipeline.WithOutputDir("out"))
//	result, err := runner.Run(ctx, src)
//
// # Supporting Packages
//
// [errors] - Coded errors (MALFORMED_INPUT, DIVIDE_BY_ZERO, MISSING_RESOURCE).
//
// [config] - Optional TOML configuration file.
//
// [buildinfo] - Version information injected at build time.
//
// [source]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/source
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/chart
// [geometry]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/geometry
// [render/bars]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/render/bars
// [render/pie]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/render/pie
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartblocks/pkg/buildinfo
package pkg
