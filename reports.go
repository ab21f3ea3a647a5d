package bookkeeping

import "time"

// BalanceLine is one account's balance inside a BalanceReport. Depth is the
// account's distance from its root, for indentation.
type BalanceLine struct {
	AccountUID string
	FullName   string
	Type       AccountType
	Depth      int
	Balance    Money // own splits only, zero for placeholders
	Rollup     Money // balance including all descendants
}

// BalanceReport is a point-in-time snapshot of every account balance in a
// book, lines ordered by full account name.
type BalanceReport struct {
	On    time.Time
	Lines []BalanceLine
}

// NewBalanceReport computes balances for every account of the book.
func NewBalanceReport(b *Book, on time.Time) (*BalanceReport, error) {
	report := &BalanceReport{On: on}
	for a := range b.Accounts() {
		balance, err := b.AccountBalance(a.UID)
		if err != nil {
			return nil, err
		}
		rollup, err := b.BalanceWithChildren(a.UID)
		if err != nil {
			return nil, err
		}
		depth := 0
		for p := b.Account(a.ParentUID); p != nil; p = b.Account(p.ParentUID) {
			depth++
		}
		report.Lines = append(report.Lines, BalanceLine{
			AccountUID: a.UID,
			FullName:   a.FullName,
			Type:       a.Type,
			Depth:      depth,
			Balance:    balance,
			Rollup:     rollup,
		})
	}
	return report, nil
}

// ImbalanceLine flags one transaction whose splits do not cancel out.
type ImbalanceLine struct {
	TransactionUID string
	Description    string
	Timestamp      time.Time
	Imbalance      Money
}

// ImbalanceReport lists the transactions of a book that fail the double-entry
// equation, in chronological order. An empty report means the book is sound.
type ImbalanceReport struct {
	Lines []ImbalanceLine
}

// NewImbalanceReport scans every transaction for a non-zero imbalance.
func NewImbalanceReport(b *Book) (*ImbalanceReport, error) {
	report := &ImbalanceReport{}
	for _, tx := range b.Transactions() {
		imbalance, err := tx.Imbalance()
		if err != nil {
			return nil, err
		}
		if imbalance.IsZero() {
			continue
		}
		report.Lines = append(report.Lines, ImbalanceLine{
			TransactionUID: tx.UID,
			Description:    tx.Description,
			Timestamp:      tx.Timestamp,
			Imbalance:      imbalance,
		})
	}
	return report, nil
}

// ScheduleLine is one scheduled action's status inside a ScheduleReport.
type ScheduleLine struct {
	ActionUID   string
	Tag         string
	State       ScheduleState
	Due         bool
	Repeat      string
	LastRunTime time.Time
}

// ScheduleReport is the status of every scheduled action as observed at a
// given instant.
type ScheduleReport struct {
	On    time.Time
	Lines []ScheduleLine
}

// NewScheduleReport computes the state of every scheduled action at now.
func NewScheduleReport(b *Book, now time.Time) *ScheduleReport {
	report := &ScheduleReport{On: now}
	for _, a := range b.Schedules() {
		report.Lines = append(report.Lines, ScheduleLine{
			ActionUID:   a.UID,
			Tag:         a.Tag,
			State:       a.State(now),
			Due:         a.Due(now),
			Repeat:      a.RepeatDescription(),
			LastRunTime: a.LastRunTime,
		})
	}
	return report
}
