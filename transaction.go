package bookkeeping

import (
	"time"
)

// Transaction is an ordered set of Splits recording one economic event.
// Adding a split stamps it with the transaction uid and re-expresses its
// Value in the transaction commodity.
type Transaction struct {
	EntityMeta
	Description      string
	Notes            string
	Timestamp        time.Time
	Commodity        Commodity
	Exported         bool
	RecurrencePeriod int64 // legacy template marker, kept for interchange
	splits           []*Split
}

// NewTransaction creates an empty transaction in the given commodity.
func NewTransaction(timestamp time.Time, description string, commodity Commodity) *Transaction {
	return &Transaction{
		EntityMeta:  NewEntityMeta(),
		Description: description,
		Timestamp:   timestamp,
		Commodity:   commodity,
	}
}

// AddSplit appends a split to the transaction. The split's transaction uid
// is set and its value commodity is reassigned (not converted) to the
// transaction's commodity.
func (t *Transaction) AddSplit(s *Split) {
	s.TransactionUID = t.UID
	s.Value = s.Value.WithCommodity(t.Commodity)
	t.splits = append(t.splits, s)
	t.Touch()
}

// Splits returns the splits in insertion order. The returned slice is shared;
// callers must not mutate it.
func (t *Transaction) Splits() []*Split { return t.splits }

// Imbalance is the signed sum of all split magnitudes, CREDIT adding and
// DEBIT subtracting, independent of any account's normal-balance side: it
// measures global double-entry correctness, not a single account's view.
// A non-zero imbalance is reported, never rejected.
func (t *Transaction) Imbalance() (Money, error) {
	sum := Zero(t.Commodity)
	var err error
	for _, s := range t.splits {
		if s.Type == Credit {
			sum, err = sum.Add(s.Value)
		} else {
			sum, err = sum.Sub(s.Value)
		}
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// Balance folds the signed-contribution rule over this transaction's splits
// belonging to the given account, in the transaction commodity.
func (t *Transaction) Balance(accountUID string, accountType AccountType) (Money, error) {
	sum := Zero(t.Commodity)
	var err error
	for _, s := range t.splits {
		if s.AccountUID != accountUID {
			continue
		}
		sum, err = sum.Add(s.SignedValue(accountType))
		if err != nil {
			return sum, err
		}
	}
	return sum, nil
}

// IsSimpleTransfer reports whether the transaction consists of exactly two
// mutually paired splits.
func (t *Transaction) IsSimpleTransfer() bool {
	return len(t.splits) == 2 && t.splits[0].IsPairOf(t.splits[1])
}

// AutoBalanceSplit returns a split against the given account that would zero
// the current imbalance, or nil when the transaction is already balanced.
// The split is not added to the transaction.
func (t *Transaction) AutoBalanceSplit(accountUID string) (*Split, error) {
	imbalance, err := t.Imbalance()
	if err != nil {
		return nil, err
	}
	if imbalance.IsZero() {
		return nil, nil
	}
	s := NewSplit(imbalance.Abs(), accountUID)
	// A credit surplus is offset by a debit leg, and conversely.
	if imbalance.IsPositive() {
		s.Type = Debit
	} else {
		s.Type = Credit
	}
	return s, nil
}

// Equal reports whether two transactions carry the same fields and the same
// splits in the same order.
func (t *Transaction) Equal(o *Transaction) bool {
	if t.UID != o.UID || t.Description != o.Description || t.Notes != o.Notes ||
		!t.Timestamp.Equal(o.Timestamp) || !t.Commodity.SameAs(o.Commodity) ||
		t.Exported != o.Exported || len(t.splits) != len(o.splits) {
		return false
	}
	for i, s := range t.splits {
		if !s.Equal(o.splits[i]) {
			return false
		}
	}
	return true
}
