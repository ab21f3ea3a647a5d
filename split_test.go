package bookkeeping

import "testing"

func TestNewSplitSign(t *testing.T) {
	pos := NewSplit(M(25.00, usd), "acc")
	if pos.Type != Debit {
		t.Errorf("positive amount yields %s, want DEBIT", pos.Type)
	}
	if got := pos.Value.PlainString(); got != "25.00" {
		t.Errorf("magnitude = %s, want 25.00", got)
	}

	neg := NewSplit(M(-25.00, usd), "acc")
	if neg.Type != Credit {
		t.Errorf("negative amount yields %s, want CREDIT", neg.Type)
	}
	if got := neg.Value.PlainString(); got != "25.00" {
		t.Errorf("magnitude must be stored unsigned, got %s", got)
	}
}

func TestPairSymmetry(t *testing.T) {
	s := NewSplit(M(50.00, usd), "bank")
	s.Memo = "rent"
	p := s.Pair("expenses")

	if !s.IsPairOf(p) || !p.IsPairOf(s) {
		t.Error("pairing must be symmetric")
	}
	if p.Type != s.Type.Invert() {
		t.Errorf("pair type = %s, want %s", p.Type, s.Type.Invert())
	}
	if !p.Value.Equal(s.Value) || !p.Quantity.Equal(s.Quantity) {
		t.Error("pair must carry the same magnitudes")
	}
	if p.Memo != s.Memo {
		t.Errorf("pair memo = %q, want %q", p.Memo, s.Memo)
	}
	if p.UID == s.UID {
		t.Error("pair must get its own identity")
	}
	if p.AccountUID != "expenses" {
		t.Errorf("pair account = %q, want expenses", p.AccountUID)
	}
}

func TestIsPairOfRejectsSameSide(t *testing.T) {
	a := NewSplit(M(50.00, usd), "bank")
	b := NewSplit(M(50.00, usd), "expenses")
	// same magnitude but same side
	if a.IsPairOf(b) {
		t.Error("two debits of equal magnitude are not a pair")
	}
}

func TestSignedValue(t *testing.T) {
	tests := []struct {
		name        string
		splitType   TransactionType
		accountType AccountType
		want        string
	}{
		{"debit on debit-normal", Debit, AccountBank, "10.00"},
		{"credit on debit-normal", Credit, AccountBank, "-10.00"},
		{"credit on credit-normal", Credit, AccountIncome, "10.00"},
		{"debit on credit-normal", Debit, AccountIncome, "-10.00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSplit(M(10.00, usd), "acc")
			s.Type = tc.splitType
			if got := s.SignedValue(tc.accountType).PlainString(); got != tc.want {
				t.Errorf("SignedValue = %s, want %s", got, tc.want)
			}
		})
	}
}
