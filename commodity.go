package bookkeeping

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// NamespaceCurrency is the namespace of ISO-4217 currencies.
const NamespaceCurrency = "CURRENCY"

// Commodity describes a currency or tradeable unit and the fractional
// precision it is accounted in. A Commodity is immutable once looked up and
// is identified by its mnemonic within a namespace.
type Commodity struct {
	Namespace      string // e.g. "CURRENCY" for ISO-4217 codes
	Mnemonic       string // currency code or ticker, e.g. "USD"
	FullName       string
	FractionDigits int // number of digits after the decimal separator, >= 0
	Cusip          string
}

// SameAs reports whether two commodities share the same identity.
func (c Commodity) SameAs(o Commodity) bool {
	return c.Namespace == o.Namespace && c.Mnemonic == o.Mnemonic
}

// String returns the commodity mnemonic.
func (c Commodity) String() string { return c.Mnemonic }

// FindCommodity resolves an ISO-4217 currency code into a Commodity, taking
// the fraction digits from the go-money currency table.
func FindCommodity(code string) (Commodity, error) {
	cur := money.GetCurrency(code)
	if cur == nil {
		return Commodity{}, fmt.Errorf("unknown currency code %q", code)
	}
	return Commodity{
		Namespace:      NamespaceCurrency,
		Mnemonic:       cur.Code,
		FullName:       cur.Code,
		FractionDigits: cur.Fraction,
	}, nil
}

// MustCommodity is like FindCommodity but panics on unknown codes.
// It is meant for tests and package-level declarations.
func MustCommodity(code string) Commodity {
	c, err := FindCommodity(code)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// CommodityLookup resolves currency codes for parsers and persistence
// adapters. The Book implements it; ISOCommodities is a standalone
// implementation backed by the ISO-4217 table.
type CommodityLookup interface {
	Commodity(code string) (Commodity, error)
}

// ISOCommodities resolves codes against the ISO-4217 table only.
type ISOCommodities struct{}

// Commodity implements CommodityLookup.
func (ISOCommodities) Commodity(code string) (Commodity, error) {
	return FindCommodity(code)
}
