package model

import (
	"github.com/shopspring/decimal"
)

// NotAvailable is the placeholder for absent descriptions and categories.
const NotAvailable = "N/A"

// TxnType classifies a transaction as money in or money out.
type TxnType string

const (
	Income  TxnType = "Income"
	Expense TxnType = "Expense"
)

// TypeFromAmount derives the classification from a raw amount sign.
// Zero counts as an expense.
func TypeFromAmount(amount decimal.Decimal) TxnType {
	if amount.IsPositive() {
		return Income
	}
	return Expense
}

// Transaction is one canonical statement row.
type Transaction struct {
	Date        Date
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income once sign-normalized
	Type        TxnType
	Category    string
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Category == o.Category
}
