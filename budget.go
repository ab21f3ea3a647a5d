package bookkeeping

// AllPeriods is the BudgetAmount period number meaning "every period".
const AllPeriods int64 = -1

// BudgetAmount is a per-account spending target for one budget period, or
// for all periods when PeriodNum is AllPeriods. The amount is always stored
// as an absolute value.
type BudgetAmount struct {
	EntityMeta
	BudgetUID  string
	AccountUID string
	PeriodNum  int64
	Amount     Money
}

// Budget owns an ordered list of per-account amounts tied to a recurrence.
type Budget struct {
	EntityMeta
	Name       string
	Recurrence Recurrence
	NumPeriods int64
	amounts    []*BudgetAmount
}

// NewBudget creates an empty budget with the given recurrence.
func NewBudget(name string, recurrence Recurrence) *Budget {
	return &Budget{EntityMeta: NewEntityMeta(), Name: name, Recurrence: recurrence}
}

// AddAmount records a target for an account. The sign of amount is
// discarded; budgets hold magnitudes.
func (b *Budget) AddAmount(accountUID string, periodNum int64, amount Money) *BudgetAmount {
	ba := &BudgetAmount{
		EntityMeta: NewEntityMeta(),
		BudgetUID:  b.UID,
		AccountUID: accountUID,
		PeriodNum:  periodNum,
		Amount:     amount.Abs(),
	}
	b.amounts = append(b.amounts, ba)
	b.Touch()
	return ba
}

// Amounts returns the budget amounts in insertion order.
func (b *Budget) Amounts() []*BudgetAmount { return b.amounts }

// AmountFor returns the target for an account in a given period: a
// period-specific entry wins over an all-periods entry; ok is false when
// neither exists.
func (b *Budget) AmountFor(accountUID string, periodNum int64) (Money, bool) {
	var all *BudgetAmount
	for _, ba := range b.amounts {
		if ba.AccountUID != accountUID {
			continue
		}
		if ba.PeriodNum == periodNum {
			return ba.Amount, true
		}
		if ba.PeriodNum == AllPeriods {
			all = ba
		}
	}
	if all != nil {
		return all.Amount, true
	}
	return Money{}, false
}
