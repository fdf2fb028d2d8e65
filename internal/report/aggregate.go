package report

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// DefaultTopN is how many expense descriptions the dashboard ranks.
const DefaultTopN = 5

// Summary holds the three headline metrics.
type Summary struct {
	Income  decimal.Decimal // Receita
	Expense decimal.Decimal // Despesa, non-negative
	Net     decimal.Decimal // Lucro
	Count   int
}

// Point is one day of the time series.
type Point struct {
	Date  model.Date
	Total decimal.Decimal
}

// Total is a labelled sum, used for category and description groupings.
type Total struct {
	Label string
	Total decimal.Decimal
}

// TotalIncome sums the positive amounts.
func TotalIncome(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.Amount.IsPositive() {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// TotalExpense sums the negative amounts and returns the magnitude.
func TotalExpense(txns []model.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range txns {
		if t.Amount.IsNegative() {
			sum = sum.Add(t.Amount)
		}
	}
	return sum.Neg()
}

// Net is income minus expense.
func Net(txns []model.Transaction) decimal.Decimal {
	return TotalIncome(txns).Sub(TotalExpense(txns))
}

// Summarize computes all headline metrics in one call.
func Summarize(txns []model.Transaction) Summary {
	inc := TotalIncome(txns)
	exp := TotalExpense(txns)
	return Summary{Income: inc, Expense: exp, Net: inc.Sub(exp), Count: len(txns)}
}

// TimeSeries sums amounts per calendar day, ascending. Records without a
// date are left out.
func TimeSeries(txns []model.Transaction) []Point {
	idx := make(map[model.Date]int)
	var pts []Point
	for _, t := range txns {
		if !t.Date.Valid() {
			continue
		}
		i, ok := idx[t.Date]
		if !ok {
			i = len(pts)
			idx[t.Date] = i
			pts = append(pts, Point{Date: t.Date, Total: decimal.Zero})
		}
		pts[i].Total = pts[i].Total.Add(t.Amount)
	}
	slices.SortFunc(pts, func(a, b Point) int { return a.Date.Compare(b.Date) })
	return pts
}

// ByCategory sums amounts per category, sorted by category.
func ByCategory(txns []model.Transaction) []Total {
	totals := groupSum(txns, func(t model.Transaction) (string, bool) {
		return t.Category, true
	})
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Label < totals[j].Label })
	return totals
}

// TopExpenses groups expenses by description and returns the n largest
// magnitudes, descending. Ties keep the order in which groups first appeared.
func TopExpenses(txns []model.Transaction, n int) []Total {
	totals := groupSum(txns, func(t model.Transaction) (string, bool) {
		return t.Description, t.Amount.IsNegative()
	})
	for i := range totals {
		totals[i].Total = totals[i].Total.Abs()
	}
	slices.SortStableFunc(totals, func(a, b Total) int { return b.Total.Cmp(a.Total) })
	if n >= 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// groupSum sums amounts by key in first-encounter order.
func groupSum(txns []model.Transaction, key func(model.Transaction) (string, bool)) []Total {
	idx := make(map[string]int)
	var out []Total
	for _, t := range txns {
		k, keep := key(t)
		if !keep {
			continue
		}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, Total{Label: k, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(t.Amount)
	}
	return out
}
