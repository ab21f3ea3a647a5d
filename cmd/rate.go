package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch the latest exchange rate for a currency pair" }
func (*rateCmd) Usage() string {
	return `bkp rate <from> <to>

  Fetches the latest exchange rate between two ISO-4217 currencies from the
  online rate feed.

Usage Examples:
$ bkp rate EUR USD

`
}

func (*rateCmd) SetFlags(f *flag.FlagSet) {}

func (p *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: exactly two currency codes are required.")
		return subcommands.ExitUsageError
	}
	from, to := f.Arg(0), f.Arg(1)
	for _, code := range []string{from, to} {
		if _, err := bookkeeping.FindCommodity(code); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	price, err := bookkeeping.NewRateProvider().FetchRate(from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("1 %s = %s %s\n", from, price.DisplayString(), to)
	return subcommands.ExitSuccess
}
