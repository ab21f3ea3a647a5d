// Package cmd implements the CLI application to manage a bookkeeping file.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bookkeeping"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&txCmd{},
	&balanceCmd{},
	&checkCmd{},
	&scheduleCmd{},
	&fmtCmd{},
	&rateCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the book file (JSONL format)")
var defaultCurrency = flag.String("currency", "EUR", "Default currency of the book")

// DecodeBook loads the book from the app book file.
func DecodeBook() (*bookkeeping.Book, error) {
	cur, err := bookkeeping.FindCommodity(*defaultCurrency)
	if err != nil {
		return nil, err
	}
	ctx := bookkeeping.NewLedgerContext(cur)

	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book does not exist, starting an empty book instead")
		return bookkeeping.NewBook(ctx), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return bookkeeping.DecodeBook(f, ctx)
}

// EncodeBook writes the whole book back to the app book file.
func EncodeBook(b *bookkeeping.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return bookkeeping.EncodeBook(f, b)
}

// findAccount resolves a full account name (e.g. "Assets:Bank") into the
// account, or nil if no account carries that name.
func findAccount(b *bookkeeping.Book, fullName string) *bookkeeping.Account {
	for a := range b.Accounts() {
		if a.FullName == fullName || a.Name == fullName {
			return a
		}
	}
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(s string) {
	out, err := glamour.Render(s, "auto")
	if err != nil {
		fmt.Print(s)
		return
	}
	fmt.Print(out)
}
