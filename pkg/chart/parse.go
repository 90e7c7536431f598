package chart

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
	"github.com/matzehuels/chartblocks/pkg/source"
)

// Cursor counts the rows after the header that have already been consumed.
type Cursor int

// headerLines is the number of lines in front of the first block.
const headerLines = 1

// Field counts of configuration rows.
const (
	rectConfigFields   = 8
	circleConfigFields = 7
)

// line converts a cursor position to a 1-based source line.
func (c Cursor) line() int { return int(c) + headerLines + 1 }

// ParseNext parses the block that starts at cur and returns the cursor
// positioned at the row after it.
//
// The first row at cur must be a configuration row. Data rows follow until
// the next configuration row (left unconsumed) or the end of the input.
// Malformed configuration rows, non-numeric samples, and an input without a
// configuration row at cur fail with MALFORMED_INPUT.
func ParseNext(src source.Source, cur Cursor) (Cursor, *Block, error) {
	rows, err := src.Open()
	if err != nil {
		return cur, nil, err
	}
	defer rows.Close()

	if _, err := rows.Next(); err != nil {
		if errors.Is(err, io.EOF) {
			return cur, nil, errs.New(errs.ErrCodeMalformedInput, "%s: empty input", src.Name())
		}
		return cur, nil, err
	}

	for i := Cursor(0); i < cur; i++ {
		if _, err := rows.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return cur, nil, errs.New(errs.ErrCodeMalformedInput,
					"%s: input ends before cursor %d", src.Name(), cur)
			}
			return cur, nil, err
		}
	}

	rec, err := rows.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return cur, nil, errs.New(errs.ErrCodeMalformedInput,
				"%s: no configuration row at line %d", src.Name(), cur.line())
		}
		return cur, nil, err
	}

	blk, err := parseConfig(rec, cur.line())
	if err != nil {
		return cur, nil, err
	}
	next := cur + 1

	for {
		rec, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return cur, nil, err
		}
		if isConfigRow(rec) {
			break
		}
		s, err := parseSeries(rec, next.line())
		if err != nil {
			return cur, nil, err
		}
		blk.Series = append(blk.Series, s)
		next++
	}

	blk.LastLine = next.line() - 1
	return next, blk, nil
}

// isConfigRow reports whether rec starts a new block.
func isConfigRow(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	_, ok := ModeForToken(strings.TrimSpace(rec[1]))
	return ok
}

func parseConfig(rec []string, line int) (*Block, error) {
	if len(rec) < 2 {
		return nil, errs.New(errs.ErrCodeMalformedInput,
			"line %d: configuration row needs a mode token in field 2", line)
	}
	token := strings.TrimSpace(rec[1])
	mode, ok := ModeForToken(token)
	if !ok {
		return nil, errs.New(errs.ErrCodeMalformedInput,
			"line %d: unrecognized mode token %q (want %q or %q)", line, token, TokenRectangle, TokenCircle)
	}

	name := strings.TrimSpace(rec[0])
	if err := errs.ValidateOutputName(name); err != nil {
		return nil, errs.New(errs.ErrCodeMalformedInput, "line %d: %s", line, errs.UserMessage(err))
	}

	blk := &Block{OutputName: name, FirstLine: line}
	switch mode {
	case ModeRectangle:
		p, err := parseRectParams(rec, line)
		if err != nil {
			return nil, err
		}
		blk.Params = p
	case ModeCircle:
		p, err := parseCircleParams(rec, line)
		if err != nil {
			return nil, err
		}
		blk.Params = p
	}
	return blk, nil
}

func parseRectParams(rec []string, line int) (RectParams, error) {
	if len(rec) < rectConfigFields {
		return RectParams{}, errs.New(errs.ErrCodeMalformedInput,
			"line %d: rectangle configuration needs %d fields, got %d", line, rectConfigFields, len(rec))
	}
	var nums [4]float64
	for i := range nums {
		v, err := parseNumber(rec[2+i], line, 3+i)
		if err != nil {
			return RectParams{}, err
		}
		nums[i] = v
	}
	return RectParams{
		ColumnWidth: nums[0],
		OffsetStep:  nums[1],
		StrokeWidth: nums[2],
		DotRadius:   nums[3],
		ShowFill:    parseBool(rec[6]),
		ShowOutline: parseBool(rec[7]),
	}, nil
}

func parseCircleParams(rec []string, line int) (CircleParams, error) {
	if len(rec) < circleConfigFields {
		return CircleParams{}, errs.New(errs.ErrCodeMalformedInput,
			"line %d: circle configuration needs %d fields, got %d", line, circleConfigFields, len(rec))
	}
	return CircleParams{
		StrokeWidth: strings.TrimSpace(rec[2]),
		Donut:       parseBool(rec[6]),
	}, nil
}

// parseSeries converts a data row. Blank fields are dropped before numeric
// conversion; anything else that is not a finite number is malformed.
func parseSeries(rec []string, line int) (Series, error) {
	s := Series{Color: strings.TrimSpace(rec[0])}
	for i, field := range rec[1:] {
		if strings.TrimSpace(field) == "" {
			continue
		}
		v, err := parseNumber(field, line, i+2)
		if err != nil {
			return Series{}, err
		}
		s.Values = append(s.Values, v)
	}
	return s, nil
}

func parseNumber(field string, line, column int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.New(errs.ErrCodeMalformedInput,
			"line %d, field %d: %q is not a number", line, column, field)
	}
	return v, nil
}

func parseBool(field string) bool {
	return strings.EqualFold(strings.TrimSpace(field), "true")
}
