package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type txCmd struct {
	date        string
	description string
	memo        string
	from        string
	to          string
	currency    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transfer between two accounts" }
func (*txCmd) Usage() string {
	return `bkp tx -from <account> -to <account> [-d <date>] [-desc <text>] <amount>

  Records a balanced double-entry transfer: the amount leaves the -from
  account and enters the -to account. Accounts are named by their full
  colon-separated path.

Usage Examples:
# Pay 42.50 from the bank account into groceries.
$ bkp tx -from Assets:Bank -to Expenses:Groceries -desc "weekly groceries" 42.50

`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", "", "Transaction date (YYYY-MM-DD). Defaults to today.")
	f.StringVar(&p.description, "desc", "", "Transaction description.")
	f.StringVar(&p.memo, "m", "", "Memo attached to both splits.")
	f.StringVar(&p.from, "from", "", "Full name of the account the amount leaves.")
	f.StringVar(&p.to, "to", "", "Full name of the account the amount enters.")
	f.StringVar(&p.currency, "c", "", "Transaction currency. Defaults to the book currency.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.from == "" || p.to == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: -from, -to and exactly one amount are required.")
		return subcommands.ExitUsageError
	}

	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	from := findAccount(book, p.from)
	if from == nil {
		fmt.Fprintf(os.Stderr, "Error: account %q not found.\n", p.from)
		return subcommands.ExitFailure
	}
	to := findAccount(book, p.to)
	if to == nil {
		fmt.Fprintf(os.Stderr, "Error: account %q not found.\n", p.to)
		return subcommands.ExitFailure
	}

	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	when := time.Now().UTC()
	if p.date != "" {
		when, err = time.Parse("2006-01-02", p.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	currency := book.Context().DefaultCommodity
	if p.currency != "" {
		if currency, err = book.Commodity(p.currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	tx := bookkeeping.NewTransaction(when, p.description, currency)
	// the amount enters the destination account, so the destination leg takes
	// the side that increases its balance.
	leg := bookkeeping.NewSplit(bookkeeping.M(amount, currency), to.UID)
	leg.Type = bookkeeping.TypeForBalance(to.Type, false)
	leg.Memo = p.memo
	tx.AddSplit(leg)
	tx.AddSplit(leg.Pair(from.UID))

	if err := book.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := EncodeBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully recorded %s from %s to %s\n", tx.Splits()[0].Value, from.FullName, to.FullName)
	return subcommands.ExitSuccess
}
