package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "list transactions that do not balance" }
func (*checkCmd) Usage() string {
	return `bkp check

  Scans the book for transactions whose credits and debits do not cancel
  out. Exits with a failure status when any is found.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, err := bookkeeping.NewImbalanceReport(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking book: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ImbalanceMarkdown(report))
	if len(report.Lines) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
