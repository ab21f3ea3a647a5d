package bookkeeping

import (
	"testing"
	"time"
)

func TestBalanceReport(t *testing.T) {
	b := newUSDBook()
	assets := NewAccount("Assets", AccountAsset, usd)
	assets.Placeholder = true
	bank := NewAccount("Bank", AccountBank, usd)
	bank.ParentUID = assets.UID
	groceries := NewAccount("Groceries", AccountExpense, usd)
	for _, a := range []*Account{assets, bank, groceries} {
		if err := b.AddAccount(a); err != nil {
			t.Fatal(err)
		}
	}

	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tx := NewTransaction(when, "spend", usd)
	leg := NewSplit(M(30.00, usd), groceries.UID)
	tx.AddSplit(leg)
	tx.AddSplit(leg.Pair(bank.UID))
	if err := b.AddTransaction(tx); err != nil {
		t.Fatal(err)
	}

	report, err := NewBalanceReport(b, when)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(report.Lines))
	}

	byName := map[string]BalanceLine{}
	for _, line := range report.Lines {
		byName[line.FullName] = line
	}
	if l := byName["Assets"]; l.Depth != 0 || l.Balance.PlainString() != "0.00" || l.Rollup.PlainString() != "-30.00" {
		t.Errorf("Assets line: %+v", l)
	}
	if l := byName["Assets:Bank"]; l.Depth != 1 || l.Balance.PlainString() != "-30.00" {
		t.Errorf("Assets:Bank line: %+v", l)
	}
	if l := byName["Groceries"]; l.Balance.PlainString() != "30.00" {
		t.Errorf("Groceries line: %+v", l)
	}
}

func TestImbalanceReport(t *testing.T) {
	b := newUSDBook()
	bank := NewAccount("Bank", AccountBank, usd)
	if err := b.AddAccount(bank); err != nil {
		t.Fatal(err)
	}

	when := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	balanced := NewTransaction(when, "balanced", usd)
	leg := NewSplit(M(10.00, usd), bank.UID)
	balanced.AddSplit(leg)
	balanced.AddSplit(leg.Pair(bank.UID))
	lone := NewTransaction(when.AddDate(0, 0, 1), "lone", usd)
	lone.AddSplit(NewSplit(M(5.00, usd), bank.UID))
	for _, tx := range []*Transaction{balanced, lone} {
		if err := b.AddTransaction(tx); err != nil {
			t.Fatal(err)
		}
	}

	report, err := NewImbalanceReport(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(report.Lines))
	}
	if report.Lines[0].Description != "lone" {
		t.Errorf("flagged %q, want lone", report.Lines[0].Description)
	}
	if got := report.Lines[0].Imbalance.PlainString(); got != "-5.00" {
		t.Errorf("imbalance = %s, want -5.00", got)
	}
}

func TestScheduleReportStates(t *testing.T) {
	b := newUSDBook()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	active := NewScheduledAction(ActionTransaction, "t1", NewRecurrence(PeriodDay, 1), start)
	active.Tag = "daily"
	pending := NewScheduledAction(ActionTransaction, "t2", NewRecurrence(PeriodDay, 1), start.AddDate(1, 0, 0))
	pending.Tag = "later"
	b.AddSchedule(active)
	b.AddSchedule(pending)

	report := NewScheduleReport(b, start.AddDate(0, 0, 1))
	if len(report.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(report.Lines))
	}
	if report.Lines[0].State != StateActive || !report.Lines[0].Due {
		t.Errorf("active line: %+v", report.Lines[0])
	}
	if report.Lines[1].State != StatePending || report.Lines[1].Due {
		t.Errorf("pending line: %+v", report.Lines[1])
	}
}
