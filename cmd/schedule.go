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

type scheduleCmd struct {
	fire bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "list scheduled actions and fire the due ones" }
func (*scheduleCmd) Usage() string {
	return `bkp schedule [-fire]

  Lists every scheduled action with its state. With -fire, each due
  transaction action instantiates its template transaction at the current
  time and the book is saved.
`
}

func (p *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.fire, "fire", false, "Fire the due actions instead of only listing them.")
}

func (p *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	now := time.Now().UTC()
	if p.fire {
		fired := 0
		for _, action := range book.Schedules() {
			if !action.Due(now) {
				continue
			}
			if action.ActionType == bookkeeping.ActionTransaction {
				if err := instantiate(book, action.TemplateUID, now); err != nil {
					fmt.Fprintf(os.Stderr, "Error firing %q: %v\n", action.Tag, err)
					continue
				}
			}
			if action.Fire(now) {
				fired++
			}
		}
		if err := EncodeBook(book); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing book file %q: %v\n", *bookFile, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Fired %d action(s).\n", fired)
	}

	printMarkdown(renderer.ScheduleMarkdown(bookkeeping.NewScheduleReport(book, now)))
	return subcommands.ExitSuccess
}

// instantiate copies the template transaction into a fresh one dated now.
func instantiate(book *bookkeeping.Book, templateUID string, now time.Time) error {
	tmpl := book.Transaction(templateUID)
	if tmpl == nil {
		return fmt.Errorf("template transaction %q not found", templateUID)
	}
	tx := bookkeeping.NewTransaction(now, tmpl.Description, tmpl.Commodity)
	for _, s := range tmpl.Splits() {
		leg := bookkeeping.NewSplit(s.Value, s.AccountUID)
		leg.Quantity = s.Quantity
		leg.Type = s.Type
		leg.Memo = s.Memo
		tx.AddSplit(leg)
	}
	return book.AddTransaction(tx)
}
