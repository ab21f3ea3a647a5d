package bookkeeping

import (
	"fmt"
	"strings"
)

// TransactionType tags a split as a debit or a credit leg.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Invert returns the opposite type.
func (t TransactionType) Invert() TransactionType {
	if t == Debit {
		return Credit
	}
	return Debit
}

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(s) {
	case "DEBIT":
		return Debit, nil
	case "CREDIT":
		return Credit, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// AccountType is the closed classification of ledger accounts. Each variant
// carries a fixed normal-balance side assigned at definition time.
type AccountType string

const (
	AccountCash       AccountType = "CASH"
	AccountBank       AccountType = "BANK"
	AccountCredit     AccountType = "CREDIT"
	AccountAsset      AccountType = "ASSET"
	AccountLiability  AccountType = "LIABILITY"
	AccountIncome     AccountType = "INCOME"
	AccountExpense    AccountType = "EXPENSE"
	AccountPayable    AccountType = "PAYABLE"
	AccountReceivable AccountType = "RECEIVABLE"
	AccountEquity     AccountType = "EQUITY"
	AccountCurrency   AccountType = "CURRENCY"
	AccountStock      AccountType = "STOCK"
	AccountMutual     AccountType = "MUTUAL"
	AccountTrading    AccountType = "TRADING"
	AccountRoot       AccountType = "ROOT"
)

// debitNormal is the fixed lookup table of account types whose balance
// customarily increases on the debit side. Every other type is credit-normal.
var debitNormal = map[AccountType]bool{
	AccountCash:       true,
	AccountBank:       true,
	AccountAsset:      true,
	AccountExpense:    true,
	AccountReceivable: true,
	AccountStock:      true,
	AccountMutual:     true,
}

// AccountTypes lists every variant, in declaration order.
var AccountTypes = []AccountType{
	AccountCash, AccountBank, AccountCredit, AccountAsset, AccountLiability,
	AccountIncome, AccountExpense, AccountPayable, AccountReceivable,
	AccountEquity, AccountCurrency, AccountStock, AccountMutual,
	AccountTrading, AccountRoot,
}

// NormalBalance returns the side on which this account type customarily
// increases.
func (t AccountType) NormalBalance() TransactionType {
	if debitNormal[t] {
		return Debit
	}
	return Credit
}

// HasDebitNormalBalance reports whether the type is debit-normal.
func (t AccountType) HasDebitNormalBalance() bool { return debitNormal[t] }

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToUpper(s))
	switch t {
	case AccountCash, AccountBank, AccountCredit, AccountAsset,
		AccountLiability, AccountIncome, AccountExpense, AccountPayable,
		AccountReceivable, AccountEquity, AccountCurrency, AccountStock,
		AccountMutual, AccountTrading, AccountRoot:
		return t, nil
	default:
		return "", fmt.Errorf("unknown account type %q", s)
	}
}

// TypeForBalance returns the split type that increases the displayed balance
// of an account of type t, or decreases it when shouldReduce is true. It is
// the inverse function of the signed-contribution rule: the returned type,
// posted against such an account, contributes positively exactly when
// shouldReduce is false.
func TypeForBalance(t AccountType, shouldReduce bool) TransactionType {
	side := t.NormalBalance()
	if shouldReduce {
		return side.Invert()
	}
	return side
}
