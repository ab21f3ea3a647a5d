package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/bookkeeping"
)

func newTestBook(t *testing.T) *bookkeeping.Book {
	t.Helper()
	book := bookkeeping.NewBook(bookkeeping.NewLedgerContext(bookkeeping.MustCommodity("USD")))

	usd := bookkeeping.MustCommodity("USD")
	bank := bookkeeping.NewAccount("Bank", bookkeeping.AccountBank, usd)
	groceries := bookkeeping.NewAccount("Groceries", bookkeeping.AccountExpense, usd)
	for _, a := range []*bookkeeping.Account{bank, groceries} {
		if err := book.AddAccount(a); err != nil {
			t.Fatalf("AddAccount(%s): %v", a.Name, err)
		}
	}

	tx := bookkeeping.NewTransaction(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "weekly groceries", usd)
	s := bookkeeping.NewSplit(bookkeeping.M(42.50, usd), groceries.UID)
	tx.AddSplit(s)
	tx.AddSplit(s.Pair(bank.UID))
	if err := book.AddTransaction(tx); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return book
}

func TestBalanceMarkdown(t *testing.T) {
	book := newTestBook(t)
	report, err := bookkeeping.NewBalanceReport(book, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewBalanceReport: %v", err)
	}

	got := BalanceMarkdown(report)

	for _, want := range []string{
		"# Balances on 2026-03-02",
		"Bank",
		"Groceries",
		"BANK",
		"EXPENSE",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("BalanceMarkdown output missing %q:\n%s", want, got)
		}
	}
}

func TestImbalanceMarkdownClean(t *testing.T) {
	book := newTestBook(t)
	report, err := bookkeeping.NewImbalanceReport(book)
	if err != nil {
		t.Fatalf("NewImbalanceReport: %v", err)
	}

	got := ImbalanceMarkdown(report)
	if !strings.Contains(got, "All transactions balance.") {
		t.Errorf("expected all-clear message, got:\n%s", got)
	}
}

func TestImbalanceMarkdownFlagsLoneSplit(t *testing.T) {
	book := newTestBook(t)
	usd := bookkeeping.MustCommodity("USD")

	var groceries *bookkeeping.Account
	for a := range book.Accounts() {
		if a.Name == "Groceries" {
			groceries = a
		}
	}

	tx := bookkeeping.NewTransaction(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), "lone split", usd)
	tx.AddSplit(bookkeeping.NewSplit(bookkeeping.M(10.00, usd), groceries.UID))
	if err := book.AddTransaction(tx); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	report, err := bookkeeping.NewImbalanceReport(book)
	if err != nil {
		t.Fatalf("NewImbalanceReport: %v", err)
	}

	got := ImbalanceMarkdown(report)
	for _, want := range []string{"lone split", "2026-03-05", "1 transaction(s) out of balance."} {
		if !strings.Contains(got, want) {
			t.Errorf("ImbalanceMarkdown output missing %q:\n%s", want, got)
		}
	}
}

func TestScheduleMarkdown(t *testing.T) {
	book := newTestBook(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	action := bookkeeping.NewScheduledAction(
		bookkeeping.ActionTransaction, "template-1",
		bookkeeping.NewRecurrence(bookkeeping.PeriodWeek, 2), start)
	action.Tag = "rent"
	book.AddSchedule(action)

	report := bookkeeping.NewScheduleReport(book, start.AddDate(0, 0, 1))
	got := ScheduleMarkdown(report)

	for _, want := range []string{"rent", "active", "every 2 weeks"} {
		if !strings.Contains(got, want) {
			t.Errorf("ScheduleMarkdown output missing %q:\n%s", want, got)
		}
	}
}
