package source

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

// XLSX reads the rows of one worksheet of an Excel workbook.
type XLSX struct {
	Path  string
	Sheet string // empty selects the first worksheet
}

// Name returns the path, with the sheet when one is set.
func (x XLSX) Name() string {
	if x.Sheet == "" {
		return x.Path
	}
	return x.Path + "#" + x.Sheet
}

// Open loads the worksheet. The workbook is closed before Open returns; the
// returned Rows hold only the cell strings.
func (x XLSX) Open() (Rows, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeMissingResource, err, "open %s", x.Path)
		}
		return nil, errs.Wrap(errs.ErrCodeMalformedInput, err, "open workbook %s", x.Path)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errs.New(errs.ErrCodeMalformedInput, "workbook %s has no worksheets", x.Path)
		}
		sheet = sheets[0]
	}

	// Number formats would turn 15177 into "15,177"; keep the stored value.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeMalformedInput, err, "read sheet %q of %s", sheet, x.Path)
	}

	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !blankRow(row) {
			kept = append(kept, row)
		}
	}
	return &sliceRows{rows: kept}, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

type sliceRows struct {
	rows [][]string
	next int
}

func (s *sliceRows) Next() ([]string, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.next]
	s.next++
	return row, nil
}

func (s *sliceRows) Close() error { return nil }
