package bookkeeping

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an immutable monetary value: an exact decimal amount bound to a
// Commodity. The amount is always stored rounded to the commodity's fraction
// digits using round-half-to-even, so repeated operations never drift away
// from the commodity scale. Every operation returns a new value.
type Money struct {
	value     decimal.Decimal // rounded to commodity scale
	commodity Commodity
}

// M creates a Money rounding value half-to-even to the commodity scale.
func M[T float32 | float64 | int | int64 | decimal.Decimal](value T, commodity Commodity) Money {
	return Money{value: newDecimal(value).RoundBank(int32(commodity.FractionDigits)), commodity: commodity}
}

// Zero returns the zero amount in the given commodity.
func Zero(commodity Commodity) Money {
	return Money{value: decimal.Zero, commodity: commodity}
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float32 | float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Commodity returns the money's commodity.
func (m Money) Commodity() Commodity { return m.commodity }

// CurrencyCode returns the money's commodity mnemonic.
func (m Money) CurrencyCode() string { return m.commodity.Mnemonic }

// Amount returns the exact decimal amount, at commodity scale.
func (m Money) Amount() decimal.Decimal { return m.value }

// pure predicates and unary operators, commodity preserved.

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) Neg() Money       { return Money{value: m.value.Neg(), commodity: m.commodity} }
func (m Money) Abs() Money       { return Money{value: m.value.Abs(), commodity: m.commodity} }

// Equal reports whether both amount and commodity are identical.
func (m Money) Equal(n Money) bool {
	return m.commodity.SameAs(n.commodity) && m.value.Equal(n.value)
}

// sameCommodity guards binary operations.
func (m Money) sameCommodity(n Money) error {
	if !m.commodity.SameAs(n.commodity) {
		return fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.commodity, n.commodity)
	}
	return nil
}

// Add returns m+n, or ErrCurrencyMismatch if commodities differ.
func (m Money) Add(n Money) (Money, error) {
	if err := m.sameCommodity(n); err != nil {
		return m, err
	}
	return M(m.value.Add(n.value), m.commodity), nil
}

// Sub returns m-n, or ErrCurrencyMismatch if commodities differ.
func (m Money) Sub(n Money) (Money, error) {
	if err := m.sameCommodity(n); err != nil {
		return m, err
	}
	return M(m.value.Sub(n.value), m.commodity), nil
}

// Mul returns m*n, or ErrCurrencyMismatch if commodities differ.
func (m Money) Mul(n Money) (Money, error) {
	if err := m.sameCommodity(n); err != nil {
		return m, err
	}
	return M(m.value.Mul(n.value), m.commodity), nil
}

// Div returns m/n, or ErrCurrencyMismatch if commodities differ.
func (m Money) Div(n Money) (Money, error) {
	if err := m.sameCommodity(n); err != nil {
		return m, err
	}
	return M(m.value.Div(n.value), m.commodity), nil
}

// MulScalar multiplies by a bare scalar. Always allowed, commodity preserved.
func (m Money) MulScalar(d decimal.Decimal) Money { return M(m.value.Mul(d), m.commodity) }

// DivScalar divides by a bare scalar. Always allowed, commodity preserved.
func (m Money) DivScalar(d decimal.Decimal) Money { return M(m.value.Div(d), m.commodity) }

// Cmp compares two amounts: -1 if m<n, 0 if equal, +1 if m>n.
// It fails with ErrCurrencyMismatch on differing commodities.
func (m Money) Cmp(n Money) (int, error) {
	if err := m.sameCommodity(n); err != nil {
		return 0, err
	}
	return m.value.Cmp(n.value), nil
}

// WithCommodity re-expresses the amount in another commodity without any
// conversion: the magnitude is unchanged, only re-rounded to the new scale.
// This is the explicit currency-reassignment step used when folding splits
// whose quantity already carries a converted magnitude.
func (m Money) WithCommodity(c Commodity) Money {
	return M(m.value, c)
}

// Fraction returns the canonical rational representation of the amount:
// numerator over 10^FractionDigits. It fails with ErrPrecisionOverflow when
// the scaled amount is not exactly representable as an int64.
func (m Money) Fraction() (numerator, denominator int64, err error) {
	denominator = pow10(m.commodity.FractionDigits)
	scaled := m.value.Shift(int32(m.commodity.FractionDigits))
	if !scaled.IsInteger() {
		// cannot happen for a properly constructed Money, but a zero-value
		// Money carries zero fraction digits and must still be guarded.
		return 0, 0, fmt.Errorf("%w: %s at scale %d", ErrPrecisionOverflow, m.value, m.commodity.FractionDigits)
	}
	big := scaled.BigInt()
	if !big.IsInt64() {
		return 0, 0, fmt.Errorf("%w: %s at scale %d", ErrPrecisionOverflow, m.value, m.commodity.FractionDigits)
	}
	return big.Int64(), denominator, nil
}

// pow10 returns 10^n for small non-negative n.
func pow10(n int) int64 {
	r := int64(1)
	for range n {
		r *= 10
	}
	return r
}

// PlainString returns the locale-independent decimal representation used for
// persistence and interchange: period separator, commodity-scale fractional
// digits, no grouping, no symbol.
func (m Money) PlainString() string {
	return m.value.StringFixed(int32(m.commodity.FractionDigits))
}

// String returns the locale-aware representation with the currency symbol,
// using the go-money formatter. Non-ISO commodities fall back to the plain
// representation suffixed with the mnemonic.
func (m Money) String() string {
	cur := money.GetCurrency(m.commodity.Mnemonic)
	if cur == nil {
		return m.PlainString() + " " + m.commodity.Mnemonic
	}
	return cur.Formatter().Format(m.value.Shift(int32(cur.Fraction)).IntPart())
}

// SignedString is like String but always carries an explicit sign, and
// renders zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
