package bookkeeping

// Account is a named ledger bucket. It is a pure value object: it holds only
// an optional parent identifier, never a live reference, so cycles are not
// structurally representable here. The hierarchy and the splits belonging to
// an account are owned by the Book.
type Account struct {
	EntityMeta
	Name                      string
	FullName                  string // colon-separated path, derived by the Book when empty
	Description               string
	Commodity                 Commodity
	Type                      AccountType
	ParentUID                 string
	DefaultTransferAccountUID string
	Placeholder               bool // may have children but must never hold splits
	Hidden                    bool
	Favorite                  bool
	Color                     string
}

// NewAccount creates an account of the given type and commodity.
func NewAccount(name string, accountType AccountType, commodity Commodity) *Account {
	return &Account{
		EntityMeta: NewEntityMeta(),
		Name:       name,
		Commodity:  commodity,
		Type:       accountType,
	}
}
