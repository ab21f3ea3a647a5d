package bookkeeping

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"
)

// Book is the in-memory arena owning the accounts, transactions, scheduled
// actions and budgets of one set of books. It supplies the narrow lookup
// interfaces the value types need (account type, account commodity,
// scheduled actions per template) and the balance folds over transactions.
//
// Transactions are kept in chronological order; the sort is stable, so
// transactions at the same instant keep their relative order.
type Book struct {
	ctx          LedgerContext
	accounts     map[string]*Account
	children     map[string][]string // parent uid -> child uids, insertion order
	transactions []*Transaction
	schedules    []*ScheduledAction
	budgets      []*Budget
}

// NewBook creates an empty book.
func NewBook(ctx LedgerContext) *Book {
	return &Book{
		ctx:      ctx,
		accounts: make(map[string]*Account),
		children: make(map[string][]string),
	}
}

// Context returns the book's ledger context.
func (b *Book) Context() LedgerContext { return b.ctx }

// AddAccount registers an account. It rejects duplicate uids, unknown
// parents, and parent chains that would loop back onto the new account.
func (b *Book) AddAccount(a *Account) error {
	if _, ok := b.accounts[a.UID]; ok {
		return fmt.Errorf("account %q already registered", a.UID)
	}
	if a.ParentUID != "" {
		parent, ok := b.accounts[a.ParentUID]
		if !ok {
			return fmt.Errorf("parent account %q not found", a.ParentUID)
		}
		// walk up: the arena holds no live references so a cycle can only
		// appear through uids, and is rejected here once and for all.
		for p := parent; p != nil; p = b.accounts[p.ParentUID] {
			if p.UID == a.UID || p.ParentUID == a.UID {
				return fmt.Errorf("account %q would create a parent cycle", a.UID)
			}
			if p.ParentUID == "" {
				break
			}
		}
		if a.FullName == "" {
			full := parent.FullName
			if full == "" {
				full = parent.Name
			}
			a.FullName = full + ":" + a.Name
		}
		b.children[a.ParentUID] = append(b.children[a.ParentUID], a.UID)
	}
	if a.FullName == "" {
		a.FullName = a.Name
	}
	b.accounts[a.UID] = a
	return nil
}

// Account returns the account with this uid, or nil if unknown.
func (b *Book) Account(uid string) *Account { return b.accounts[uid] }

// AccountTypeOf resolves an account's type.
func (b *Book) AccountTypeOf(uid string) (AccountType, error) {
	a, ok := b.accounts[uid]
	if !ok {
		return "", fmt.Errorf("account %q not found", uid)
	}
	return a.Type, nil
}

// AccountCommodity resolves an account's commodity.
func (b *Book) AccountCommodity(uid string) (Commodity, error) {
	a, ok := b.accounts[uid]
	if !ok {
		return Commodity{}, fmt.Errorf("account %q not found", uid)
	}
	return a.Commodity, nil
}

// Commodity implements CommodityLookup: account commodities first, then the
// ISO-4217 table.
func (b *Book) Commodity(code string) (Commodity, error) {
	for _, a := range b.accounts {
		if a.Commodity.Mnemonic == code {
			return a.Commodity, nil
		}
	}
	return FindCommodity(code)
}

// Children returns the child account uids of an account, in insertion order.
func (b *Book) Children(uid string) []string { return b.children[uid] }

// Accounts iterates over accounts sorted by full name.
func (b *Book) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		uids := slices.Collect(maps.Keys(b.accounts))
		slices.SortFunc(uids, func(x, y string) int {
			if c := strings.Compare(b.accounts[x].FullName, b.accounts[y].FullName); c != 0 {
				return c
			}
			return strings.Compare(x, y)
		})
		for _, uid := range uids {
			if !yield(b.accounts[uid]) {
				return
			}
		}
	}
}

// AddTransaction appends a transaction and keeps the chronological order.
// Every split must reference a known, non-placeholder account; a split on a
// placeholder is rejected with ErrPlaceholderAccount.
func (b *Book) AddTransaction(t *Transaction) error {
	for _, s := range t.Splits() {
		a, ok := b.accounts[s.AccountUID]
		if !ok {
			return fmt.Errorf("split %q references unknown account %q", s.UID, s.AccountUID)
		}
		if a.Placeholder {
			return fmt.Errorf("%w: account %q", ErrPlaceholderAccount, a.FullName)
		}
	}
	b.transactions = append(b.transactions, t)
	b.stableSort()
	return nil
}

// stableSort sorts transactions by timestamp, stable.
func (b *Book) stableSort() {
	sort.SliceStable(b.transactions, func(i, j int) bool {
		return b.transactions[i].Timestamp.Before(b.transactions[j].Timestamp)
	})
}

// Transactions iterates over transactions in chronological order. Filters,
// if any, are OR-ed: a transaction passes as soon as one accepts it.
func (b *Book) Transactions(filters ...func(*Transaction) bool) iter.Seq2[int, *Transaction] {
	return func(yield func(int, *Transaction) bool) {
		for i, tx := range b.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByAccount returns a predicate accepting transactions with at least one
// split against the account.
func ByAccount(uid string) func(*Transaction) bool {
	return func(t *Transaction) bool {
		for _, s := range t.Splits() {
			if s.AccountUID == uid {
				return true
			}
		}
		return false
	}
}

// AccountBalance folds the signed-contribution rule over all splits of the
// account, in the account's commodity. Splits from other currencies carry
// their converted magnitude in Quantity, so the commodity reassignment never
// changes a magnitude. A placeholder account reports zero for itself.
func (b *Book) AccountBalance(uid string) (Money, error) {
	a, ok := b.accounts[uid]
	if !ok {
		return Money{}, fmt.Errorf("account %q not found", uid)
	}
	balance := Zero(a.Commodity)
	if a.Placeholder {
		return balance, nil
	}
	var err error
	for _, tx := range b.transactions {
		for _, s := range tx.Splits() {
			if s.AccountUID != uid {
				continue
			}
			balance, err = balance.Add(s.SignedQuantity(a.Type).WithCommodity(a.Commodity))
			if err != nil {
				return balance, err
			}
		}
	}
	return balance, nil
}

// BalanceWithChildren rolls up an account's balance with all descendants,
// expressed in the account's commodity. Cross-currency children are folded
// by commodity reassignment of their quantity magnitudes.
func (b *Book) BalanceWithChildren(uid string) (Money, error) {
	a, ok := b.accounts[uid]
	if !ok {
		return Money{}, fmt.Errorf("account %q not found", uid)
	}
	balance, err := b.AccountBalance(uid)
	if err != nil {
		return balance, err
	}
	for _, child := range b.children[uid] {
		sub, err := b.BalanceWithChildren(child)
		if err != nil {
			return balance, err
		}
		balance, err = balance.Add(sub.WithCommodity(a.Commodity))
		if err != nil {
			return balance, err
		}
	}
	return balance, nil
}

// AddSchedule registers a scheduled action.
func (b *Book) AddSchedule(a *ScheduledAction) { b.schedules = append(b.schedules, a) }

// Schedules returns the scheduled actions in insertion order.
func (b *Book) Schedules() []*ScheduledAction { return b.schedules }

// ScheduledActionsFor returns the scheduled actions referencing a template.
// Deletion cascades in persistence layers rely on this lookup.
func (b *Book) ScheduledActionsFor(templateUID string) []*ScheduledAction {
	var out []*ScheduledAction
	for _, a := range b.schedules {
		if a.TemplateUID == templateUID {
			out = append(out, a)
		}
	}
	return out
}

// AddBudget registers a budget.
func (b *Book) AddBudget(budget *Budget) { b.budgets = append(b.budgets, budget) }

// Budgets returns the budgets in insertion order.
func (b *Book) Budgets() []*Budget { return b.budgets }

// Transaction returns the transaction with this uid, or nil.
func (b *Book) Transaction(uid string) *Transaction {
	for _, tx := range b.transactions {
		if tx.UID == uid {
			return tx
		}
	}
	return nil
}
