package report

import (
	"github.com/extrato-dev/extrato/internal/model"
)

// Dashboard is everything the display layer renders for one filter.
type Dashboard struct {
	Filter       Filter
	Summary      Summary
	Series       []Point
	Categories   []Total
	TopExpenses  []Total
	Transactions []model.Transaction
}

// Build filters txns and computes every dashboard query over the result.
func Build(txns []model.Transaction, f Filter, topN int) Dashboard {
	sel := f.Apply(txns)
	return Dashboard{
		Filter:       f,
		Summary:      Summarize(sel),
		Series:       TimeSeries(sel),
		Categories:   ByCategory(sel),
		TopExpenses:  TopExpenses(sel, topN),
		Transactions: sel,
	}
}
