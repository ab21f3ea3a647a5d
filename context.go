package bookkeeping

// LedgerContext carries the defaults that would otherwise live in global
// mutable state: the default commodity of a book and the policy choosing a
// transaction type when the caller expresses intent ("increase" or "reduce")
// rather than a side. Passing it explicitly keeps the core free of hidden
// cross-call coupling and safe to use from several books at once.
type LedgerContext struct {
	DefaultCommodity Commodity

	// TypePolicy, when set, overrides the default transaction type chosen
	// for new entries against an account type.
	TypePolicy func(AccountType) TransactionType
}

// NewLedgerContext creates a context with the given default commodity.
func NewLedgerContext(defaultCommodity Commodity) LedgerContext {
	return LedgerContext{DefaultCommodity: defaultCommodity}
}

// DefaultTransactionType returns the type a new entry against an account of
// type t should carry when the caller does not say otherwise: the side that
// increases the account's displayed balance.
func (c LedgerContext) DefaultTransactionType(t AccountType) TransactionType {
	if c.TypePolicy != nil {
		return c.TypePolicy(t)
	}
	return TypeForBalance(t, false)
}
