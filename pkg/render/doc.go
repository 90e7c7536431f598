// Package render provides the SVG canvas shared by the chart renderers.
//
// # Overview
//
// Rendering is split in two steps per chart kind:
//
//   - a pure layout step that turns a parsed block into positioned shapes
//     ([bars.Build], [pie.Build])
//   - an SVG sink that serializes those shapes ([bars.RenderSVG],
//     [pie.RenderSVG])
//
// Both sinks draw on a [Canvas], a thin layer over svgo. svgo frames the
// document and emits paths. Its rect and circle primitives take integer
// coordinates, so [Canvas.RectF] and [Canvas.CircleF] write float elements
// straight to the canvas writer instead.
//
// # Coordinates
//
// Shapes are never translated or flipped to fit the page. [Bounds] collects
// the extent of everything drawn and becomes the document's viewBox, so
// negative coordinates (bars grow towards -Y) stay visible.
//
// [bars.Build]: github.com/matzehuels/chartblocks/pkg/render/bars
// [bars.RenderSVG]: github.com/matzehuels/chartblocks/pkg/render/bars
// [pie.Build]: github.com/matzehuels/chartblocks/pkg/render/pie
// [pie.RenderSVG]: github.com/matzehuels/chartblocks/pkg/render/pie
package render
