package bookkeeping

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Price sources.
const (
	PriceSourceUser     = "user:price"
	PriceSourceProvider = "provider"
)

// Price is an exchange rate between a commodity and a currency, stored as a
// fraction. The denominator is always kept positive (sign is normalized into
// the numerator) and the fraction is reduced to lowest terms lazily, on read
// or through an explicit Reduce call.
type Price struct {
	EntityMeta
	CommodityCode string
	CurrencyCode  string
	Date          time.Time
	Source        string
	Type          string
	Numerator     int64
	Denominator   int64
}

// NewPrice creates a price from an explicit fraction.
func NewPrice(commodityCode, currencyCode string, numerator, denominator int64) Price {
	return Price{
		EntityMeta:    NewEntityMeta(),
		CommodityCode: commodityCode,
		CurrencyCode:  currencyCode,
		Numerator:     numerator,
		Denominator:   denominator,
	}
}

// maxPow10 is the largest power of ten representable as an int64.
const maxPow10 = 18

// NewPriceFromDecimal creates a price from a decimal exchange rate, storing
// the unscaled coefficient over the matching power of ten. It fails with
// ErrPrecisionOverflow when either term falls outside int64.
func NewPriceFromDecimal(commodityCode, currencyCode string, rate decimal.Decimal) (Price, error) {
	coef := rate.Coefficient()
	if !coef.IsInt64() {
		return Price{}, fmt.Errorf("%w: rate %s", ErrPrecisionOverflow, rate)
	}
	n := coef.Int64()
	p := NewPrice(commodityCode, currencyCode, 0, 1)
	exp := int(rate.Exponent())
	if exp >= 0 {
		if exp > maxPow10 {
			return Price{}, fmt.Errorf("%w: rate %s", ErrPrecisionOverflow, rate)
		}
		scale := pow10(exp)
		if n != 0 && (n > math.MaxInt64/scale || n < math.MinInt64/scale) {
			return Price{}, fmt.Errorf("%w: rate %s", ErrPrecisionOverflow, rate)
		}
		p.Numerator = n * scale
		p.Denominator = 1
	} else {
		if -exp > maxPow10 {
			return Price{}, fmt.Errorf("%w: rate %s", ErrPrecisionOverflow, rate)
		}
		p.Numerator = n
		p.Denominator = pow10(-exp)
	}
	return p, nil
}

// Reduce normalizes the sign onto the numerator and divides both terms by
// their greatest common divisor. A zero numerator is a defined no-op (there
// is nothing to reduce); a zero denominator is an invalid state and returns
// ErrInvalidFraction.
func (p *Price) Reduce() error {
	if p.Denominator == 0 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidFraction, p.Numerator, p.Denominator)
	}
	if p.Denominator < 0 {
		p.Denominator = -p.Denominator
		p.Numerator = -p.Numerator
	}
	if p.Numerator == 0 {
		return nil
	}
	d := gcd(p.Numerator, p.Denominator)
	p.Numerator /= d
	p.Denominator /= d
	return nil
}

// gcd computes the greatest common divisor by iterative remainder.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Decimal returns the rate as a decimal, rounded to at most 6 fractional
// digits. It fails with ErrInvalidFraction on a zero denominator.
func (p Price) Decimal() (decimal.Decimal, error) {
	if p.Denominator == 0 {
		return decimal.Zero, fmt.Errorf("%w: %d/%d", ErrInvalidFraction, p.Numerator, p.Denominator)
	}
	d := decimal.NewFromInt(p.Numerator).DivRound(decimal.NewFromInt(p.Denominator), 6)
	// DivRound keeps trailing zeros away already; Truncate only trims scale.
	return d, nil
}

// DisplayString formats the rate with at most 6 fractional digits. An
// invalid zero-denominator fraction renders as "-", never as a number.
func (p Price) DisplayString() string {
	d, err := p.Decimal()
	if err != nil {
		return "-"
	}
	return d.String()
}
