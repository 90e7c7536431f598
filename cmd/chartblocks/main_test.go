package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{
			name:     "canceled",
			err:      fmt.Errorf("prompt: %w", context.Canceled),
			wantCode: 130,
			wantOut:  "",
		},
		{
			name:     "malformed input",
			err:      errs.New(errs.ErrCodeMalformedInput, "line 3: bad"),
			wantCode: 1,
			wantOut:  "chartblocks: run halted: MALFORMED_INPUT: line 3: bad\n",
		},
		{
			name:     "divide by zero",
			err:      errs.New(errs.ErrCodeDivideByZero, "zero total"),
			wantCode: 1,
			wantOut:  "chartblocks: run halted: DIVIDE_BY_ZERO: zero total\n",
		},
		{
			name:     "invalid config",
			err:      errs.New(errs.ErrCodeInvalidConfig, "unknown key output.folder"),
			wantCode: 1,
			wantOut:  "chartblocks: unknown key output.folder\n",
		},
		{
			name:     "missing resource",
			err:      errs.Wrap(errs.ErrCodeMissingResource, errors.New("no such file"), "open in.csv"),
			wantCode: 1,
			wantOut:  "chartblocks: open in.csv: no such file\n",
		},
		{
			name:     "plain error",
			err:      errors.New(`unknown command "rendr" for "chartblocks"`),
			wantCode: 1,
			wantOut:  "chartblocks: unknown command \"rendr\" for \"chartblocks\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := report(&buf, tt.err); got != tt.wantCode {
				t.Errorf("report() = %d, want %d", got, tt.wantCode)
			}
			if got := buf.String(); got != tt.wantOut {
				t.Errorf("report() wrote %q, want %q", got, tt.wantOut)
			}
		})
	}
}
