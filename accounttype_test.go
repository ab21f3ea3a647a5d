package bookkeeping

import "testing"

func TestNormalBalance(t *testing.T) {
	wantDebit := map[AccountType]bool{
		AccountCash:       true,
		AccountBank:       true,
		AccountAsset:      true,
		AccountExpense:    true,
		AccountReceivable: true,
		AccountStock:      true,
		AccountMutual:     true,
	}
	for _, at := range AccountTypes {
		want := Credit
		if wantDebit[at] {
			want = Debit
		}
		if got := at.NormalBalance(); got != want {
			t.Errorf("%s.NormalBalance() = %s, want %s", at, got, want)
		}
	}
}

// TypeForBalance(t, false) must always yield the split type that contributes
// positively against an account of type t, and TypeForBalance(t, true) its
// inverse. The two functions are each other's inverses across every type.
func TestTypeForBalanceSignInvariant(t *testing.T) {
	for _, at := range AccountTypes {
		t.Run(string(at), func(t *testing.T) {
			grow := NewSplit(M(10.00, usd), "acc")
			grow.Type = TypeForBalance(at, false)
			if got := grow.SignedValue(at); !got.IsPositive() {
				t.Errorf("TypeForBalance(%s, false) leg contributes %s, want positive", at, got.PlainString())
			}

			shrink := NewSplit(M(10.00, usd), "acc")
			shrink.Type = TypeForBalance(at, true)
			if got := shrink.SignedValue(at); !got.IsNegative() {
				t.Errorf("TypeForBalance(%s, true) leg contributes %s, want negative", at, got.PlainString())
			}
		})
	}
}

func TestParseAccountType(t *testing.T) {
	if at, err := ParseAccountType("bank"); err != nil || at != AccountBank {
		t.Errorf("ParseAccountType(bank) = %v, %v", at, err)
	}
	if _, err := ParseAccountType("WALLET"); err == nil {
		t.Error("ParseAccountType(WALLET) should fail")
	}
}

func TestTransactionTypeInvert(t *testing.T) {
	if Debit.Invert() != Credit || Credit.Invert() != Debit {
		t.Error("Invert is not an involution")
	}
}
