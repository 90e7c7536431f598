// Package source provides the tabular row sources that chart blocks are
// parsed from.
//
// A [Source] is reopened for every parse call: [Source.Open] returns a fresh
// [Rows] positioned at the header line, and the caller closes it before
// returning. That keeps file handles scoped to a single parse or count and
// lets the parser be re-run from any cursor.
//
// Implementations:
//   - [CSV]: comma-separated text read with encoding/csv. Quoted fields keep
//     embedded commas; blank lines are skipped.
//   - [XLSX]: the rows of one worksheet of an Excel workbook, read with
//     excelize. Wholly empty rows are skipped like blank CSV lines.
//   - [Inline]: CSV text held in memory.
//
// [ForPath] picks an implementation from the file extension and [Resolve]
// applies the default-file fallback used by the CLI.
package source
