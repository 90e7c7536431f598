package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/chartblocks/internal/cli"
	errs "github.com/matzehuels/chartblocks/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// report prints err and returns the exit status for it. Errors that halted a
// run keep their code so the failing input can be traced; setup errors such
// as a bad flag or config print only the message.
func report(w io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130 // Standard shell convention for SIGINT
	}
	if errs.Fatal(err) {
		fmt.Fprintln(w, "chartblocks: run halted:", err)
	} else {
		fmt.Fprintln(w, "chartblocks:", errs.UserMessage(err))
	}
	return 1
}
