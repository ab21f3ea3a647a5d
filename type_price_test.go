package bookkeeping

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceReduce(t *testing.T) {
	tests := []struct {
		name    string
		num     int64
		den     int64
		wantNum int64
		wantDen int64
		wantErr error
	}{
		{"common factor", 1234, 10000, 617, 5000, nil},
		{"already coprime", 3, 7, 3, 7, nil},
		{"negative denominator", 5, -10, -1, 2, nil},
		{"both negative", -4, -6, 2, 3, nil},
		{"zero numerator", 0, 42, 0, 42, nil},
		{"zero denominator", 1, 0, 1, 0, ErrInvalidFraction},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPrice("EUR", "USD", tc.num, tc.den)
			err := p.Reduce()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Reduce() error = %v, want %v", err, tc.wantErr)
			}
			if p.Numerator != tc.wantNum || p.Denominator != tc.wantDen {
				t.Errorf("Reduce(%d/%d) = %d/%d, want %d/%d",
					tc.num, tc.den, p.Numerator, p.Denominator, tc.wantNum, tc.wantDen)
			}
		})
	}
}

func TestPriceReduceIdempotent(t *testing.T) {
	p := NewPrice("EUR", "USD", 1234, 10000)
	if err := p.Reduce(); err != nil {
		t.Fatal(err)
	}
	first := p
	if err := p.Reduce(); err != nil {
		t.Fatal(err)
	}
	if p != first {
		t.Errorf("second Reduce changed the fraction: %d/%d", p.Numerator, p.Denominator)
	}
	if g := gcd(p.Numerator, p.Denominator); g != 1 {
		t.Errorf("reduced fraction not coprime, gcd = %d", g)
	}
}

func TestNewPriceFromDecimal(t *testing.T) {
	tests := []struct {
		name string
		rate string
		num  int64
		den  int64
	}{
		{"fractional", "1.0825", 10825, 10000},
		{"integer", "3", 3, 1},
		{"scaled integer", "1.50", 150, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tc.rate)
			if err != nil {
				t.Fatal(err)
			}
			p, err := NewPriceFromDecimal("EUR", "USD", rate)
			if err != nil {
				t.Fatal(err)
			}
			if p.Numerator != tc.num || p.Denominator != tc.den {
				t.Errorf("NewPriceFromDecimal(%s) = %d/%d, want %d/%d",
					tc.rate, p.Numerator, p.Denominator, tc.num, tc.den)
			}
		})
	}
}

func TestNewPriceFromDecimalOverflow(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"huge exponent", "1e25"},
		{"coefficient times scale", "9223372036854775807e2"},
		{"tiny exponent", "1e-25"},
		{"huge coefficient", "92233720368547758080"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tc.rate)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := NewPriceFromDecimal("EUR", "USD", rate); !errors.Is(err, ErrPrecisionOverflow) {
				t.Errorf("NewPriceFromDecimal(%s) error = %v, want ErrPrecisionOverflow", tc.rate, err)
			}
		})
	}
}

func TestPriceDecimal(t *testing.T) {
	p := NewPrice("EUR", "USD", 1, 3)
	d, err := p.Decimal()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.String(); got != "0.333333" {
		t.Errorf("Decimal() = %s, want 0.333333", got)
	}

	broken := NewPrice("EUR", "USD", 1, 0)
	if _, err := broken.Decimal(); !errors.Is(err, ErrInvalidFraction) {
		t.Errorf("got %v, want ErrInvalidFraction", err)
	}
}

func TestPriceDisplayString(t *testing.T) {
	p := NewPrice("EUR", "USD", 3, 2)
	if got := p.DisplayString(); got != "1.5" {
		t.Errorf("DisplayString() = %q, want 1.5", got)
	}

	// an invalid fraction must never render as a plausible number.
	broken := NewPrice("EUR", "USD", 1, 0)
	if got := broken.DisplayString(); got != "-" {
		t.Errorf("DisplayString() on a zero denominator = %q, want \"-\"", got)
	}
}
