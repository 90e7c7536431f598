// Package chart defines chart blocks and parses them from tabular input.
//
// # Input Layout
//
// The first line of the input is a header and is ignored. After it, the
// input is a sequence of blocks. Each block starts with a configuration row
// whose second field is a mode token ("r" rectangle, "c" circle), followed
// by zero or more data rows:
//
//	h,h
//	out,r,80,0,1,2,true,true        <- configuration row (rectangle)
//	red,10,20,30                    <- data row: color, samples...
//	pie,c,18,,,,true                <- next block (circle)
//	a,50
//	b,30
//
// Rectangle configuration fields are
// [output_name, "r", column_width, vertical_offset_step, stroke_width,
// dot_radius, show_fill, show_outline]; circle configuration fields are
// [output_name, "c", stroke_width, -, -, -, donut]. Boolean fields are true
// only when they read "true" in any letter case.
//
// # Cursor
//
// [ParseNext] takes a [Cursor], the number of rows after the header that
// earlier calls consumed, and returns the cursor advanced past the block it
// parsed. The row that starts the next block is not consumed. The function
// reopens the source on every call, so parsing from the same cursor twice
// yields identical blocks.
package chart
