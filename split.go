package bookkeeping

// Split is one leg of a double-entry posting: an unsigned magnitude against
// one account, tagged debit or credit. Value is the magnitude in the owning
// transaction's commodity; Quantity is the magnitude in the account's
// commodity. They are equal unless the split crosses a currency boundary, in
// which case Quantity carries the converted magnitude. Sign and effect are
// carried entirely by Type combined with the account's normal-balance side.
type Split struct {
	EntityMeta
	Value          Money // magnitude in the transaction commodity, non-negative
	Quantity       Money // magnitude in the account commodity, non-negative
	TransactionUID string
	AccountUID     string
	Type           TransactionType
	Memo           string
}

// NewSplit creates a split against an account. A negative amount yields a
// CREDIT split of the magnitude; a non-negative amount yields a DEBIT split.
func NewSplit(amount Money, accountUID string) *Split {
	t := Debit
	if amount.IsNegative() {
		t = Credit
	}
	return &Split{
		EntityMeta: NewEntityMeta(),
		Value:      amount.Abs(),
		Quantity:   amount.Abs(),
		AccountUID: accountUID,
		Type:       t,
	}
}

// Pair produces the counter-leg of this split against another account: same
// magnitude, inverted type, same memo and quantity. When the target account
// uses a different currency the caller must adjust Quantity with an
// externally supplied rate; no conversion happens here.
func (s *Split) Pair(accountUID string) *Split {
	return &Split{
		EntityMeta: NewEntityMeta(),
		Value:      s.Value,
		Quantity:   s.Quantity,
		AccountUID: accountUID,
		Type:       s.Type.Invert(),
		Memo:       s.Memo,
	}
}

// IsPairOf reports whether o mirrors s: equal magnitudes and inverse types.
// It is a pure predicate; transfers render compactly when a transaction
// holds exactly two mutually paired splits.
func (s *Split) IsPairOf(o *Split) bool {
	return s.Value.Equal(o.Value) && s.Type == o.Type.Invert()
}

// contributesPositively implements the signed-contribution rule: a split
// increases an account's balance when its side matches the account's
// normal-balance side.
func (s *Split) contributesPositively(accountType AccountType) bool {
	return (s.Type == Debit) == (accountType.NormalBalance() == Debit)
}

// SignedValue returns the split's contribution in the transaction commodity,
// signed for an account of the given type.
func (s *Split) SignedValue(accountType AccountType) Money {
	if s.contributesPositively(accountType) {
		return s.Value
	}
	return s.Value.Neg()
}

// SignedQuantity returns the split's contribution in the account commodity,
// signed for an account of the given type.
func (s *Split) SignedQuantity(accountType AccountType) Money {
	if s.contributesPositively(accountType) {
		return s.Quantity
	}
	return s.Quantity.Neg()
}

// Equal reports field-for-field equality, identity included.
func (s *Split) Equal(o *Split) bool {
	return s.UID == o.UID &&
		s.Value.Equal(o.Value) &&
		s.Quantity.Equal(o.Quantity) &&
		s.TransactionUID == o.TransactionUID &&
		s.AccountUID == o.AccountUID &&
		s.Type == o.Type &&
		s.Memo == o.Memo
}
