package bookkeeping

import "testing"

func TestFindCommodity(t *testing.T) {
	tests := []struct {
		code     string
		fraction int
		wantErr  bool
	}{
		{"USD", 2, false},
		{"JPY", 0, false},
		{"BHD", 3, false},
		{"NOPE", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			c, err := FindCommodity(tc.code)
			if (err != nil) != tc.wantErr {
				t.Fatalf("FindCommodity(%s) error = %v", tc.code, err)
			}
			if err != nil {
				return
			}
			if c.FractionDigits != tc.fraction {
				t.Errorf("fraction digits = %d, want %d", c.FractionDigits, tc.fraction)
			}
			if c.Namespace != NamespaceCurrency {
				t.Errorf("namespace = %q, want %q", c.Namespace, NamespaceCurrency)
			}
		})
	}
}

func TestCommoditySameAs(t *testing.T) {
	a := MustCommodity("USD")
	b := MustCommodity("USD")
	if !a.SameAs(b) {
		t.Error("two USD lookups must be the same commodity")
	}
	fund := Commodity{Namespace: "FUND", Mnemonic: "USD"}
	if a.SameAs(fund) {
		t.Error("same mnemonic in another namespace is a different commodity")
	}
}
