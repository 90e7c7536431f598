package source

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

// Rows yields the records of a tabular input one at a time.
// Next returns io.EOF once the input is exhausted.
type Rows interface {
	Next() ([]string, error)
	Close() error
}

// Source is a reopenable tabular input.
type Source interface {
	// Open returns rows positioned at the header line.
	Open() (Rows, error)
	// Name identifies the source in logs and diagnostics.
	Name() string
}

// CSV reads comma-separated rows from a file.
type CSV struct {
	Path string
}

// Name returns the file path.
func (c CSV) Name() string { return c.Path }

// Open opens the file for a single pass.
func (c CSV) Open() (Rows, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeMissingResource, err, "open %s", c.Path)
		}
		return nil, err
	}
	return &csvRows{r: newCSVReader(f), closer: f}, nil
}

// Inline reads comma-separated rows from an in-memory string.
type Inline struct {
	Label string
	Text  string
}

// Lines builds an Inline source from individual lines.
func Lines(label string, lines ...string) Inline {
	return Inline{Label: label, Text: strings.Join(lines, "\n")}
}

// Name returns the label.
func (s Inline) Name() string { return s.Label }

// Open starts a new pass over the text.
func (s Inline) Open() (Rows, error) {
	return &csvRows{r: newCSVReader(strings.NewReader(s.Text))}, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // configuration and data rows differ in width
	cr.LazyQuotes = true
	return cr
}

type csvRows struct {
	r      *csv.Reader
	closer io.Closer
}

func (c *csvRows) Next() ([]string, error) {
	rec, err := c.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errs.Wrap(errs.ErrCodeMalformedInput, err, "read csv")
	}
	return rec, nil
}

func (c *csvRows) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// ForPath returns the source for path based on its extension: .xlsx and
// .xlsm open as workbooks (sheet selects the worksheet, empty = first),
// anything else as CSV.
func ForPath(path, sheet string) Source {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return XLSX{Path: path, Sheet: sheet}
	default:
		return CSV{Path: path}
	}
}

// Count returns the number of records after the header line.
// An input without even a header counts as zero.
func Count(src Source) (int, error) {
	rows, err := src.Open()
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for {
		if _, err := rows.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return n - 1, nil
}

// Resolve returns path if it names an existing file. Otherwise it falls back
// to fallback and reports fallback=true. If neither exists the result is a
// MISSING_RESOURCE error.
func Resolve(path, fallback string) (resolved string, usedFallback bool, err error) {
	if path != "" && exists(path) {
		return path, false, nil
	}
	if fallback != "" && exists(fallback) {
		return fallback, path != "" && path != fallback, nil
	}
	if path == "" || path == fallback {
		return "", false, errs.New(errs.ErrCodeMissingResource, "input file %q not found", fallback)
	}
	return "", false, errs.New(errs.ErrCodeMissingResource, "input file %q not found (default %q not found either)", path, fallback)
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
