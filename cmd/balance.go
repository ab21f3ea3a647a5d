package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the balance of every account" }
func (*balanceCmd) Usage() string {
	return `bkp balance [-d <date>]

  Shows the balance of every account, own splits and rolled up with
  children, ordered by full account name.
`
}

func (p *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Report date (YYYY-MM-DD). Defaults to today.")
}

func (p *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	on := time.Now().UTC()
	if p.date != "" {
		if on, err = time.Parse("2006-01-02", p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	report, err := bookkeeping.NewBalanceReport(book, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing balances: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BalanceMarkdown(report))
	return subcommands.ExitSuccess
}
