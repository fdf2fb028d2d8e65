// Package sign reconciles transaction types with amount signs. It is the only
// place where an amount's sign is rewritten.
package sign

import (
	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/model"
)

// outflow holds folded labels that mean money leaving the account.
var outflow = map[string]bool{
	"saida":   true,
	"expense": true,
	"despesa": true,
	"debito":  true,
	"debit":   true,
}

// Classify maps a free-form type label to Income or Expense.
// Anything not recognized as an outflow counts as income.
func Classify(label string) model.TxnType {
	if outflow[columns.Fold(label)] {
		return model.Expense
	}
	return model.Income
}

// Apply canonicalizes t.Type and forces the amount's sign to match it.
// The type wins when the two disagree; the magnitude is kept.
func Apply(t model.Transaction) model.Transaction {
	t.Type = Classify(string(t.Type))
	if t.Type == model.Expense {
		t.Amount = t.Amount.Abs().Neg()
	} else {
		t.Amount = t.Amount.Abs()
	}
	return t
}

// Normalize returns a sign-normalized copy of txns.
func Normalize(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		out[i] = Apply(t)
	}
	return out
}
