package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
)

func day(d int) model.Date {
	return model.NewDate(2024, time.March, d)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(date model.Date, desc, amount, category string) model.Transaction {
	a := dec(amount)
	return model.Transaction{
		Date:        date,
		Description: desc,
		Amount:      a,
		Type:        model.TypeFromAmount(a),
		Category:    category,
	}
}

func fixture() []model.Transaction {
	return []model.Transaction{
		txn(day(1), "Salario", "5000.00", "Renda"),
		txn(day(1), "Mercado", "-300.00", "Casa"),
		txn(day(2), "Aluguel", "-1500.00", "Casa"),
		txn(day(3), "Mercado", "-200.00", "Casa"),
		txn(day(3), "Cinema", "-60.00", "Lazer"),
		txn(model.MissingDate, "Sem data", "-10.00", "Lazer"),
		txn(day(5), "Freela", "800.00", "Renda"),
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	got := Filter{Start: day(1), End: day(3)}.Apply(fixture())
	require.Len(t, got, 5)
	for _, g := range got {
		assert.True(t, g.Date.Valid())
	}
}

func TestFilter_MissingDateExcludedWhenBounded(t *testing.T) {
	got := Filter{Start: day(1)}.Apply(fixture())
	for _, g := range got {
		assert.NotEqual(t, "Sem data", g.Description)
	}
	assert.Len(t, Filter{}.Apply(fixture()), 7, "unbounded filter keeps everything")
}

func TestFilter_Facets(t *testing.T) {
	txns := fixture()

	got := Filter{Category: "Casa", Type: All}.Apply(txns)
	assert.Len(t, got, 3)

	got = Filter{Category: All, Type: model.Income}.Apply(txns)
	assert.Len(t, got, 2)

	got = Filter{Start: day(2), End: day(5), Category: "Renda", Type: model.Income}.Apply(txns)
	require.Len(t, got, 1)
	assert.Equal(t, "Freela", got[0].Description)
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter{Category: "Casa"}.Apply(fixture())
	assert.Equal(t, "Mercado", got[0].Description)
	assert.Equal(t, "Aluguel", got[1].Description)
	assert.Equal(t, "Mercado", got[2].Description)
}

func TestTotals(t *testing.T) {
	txns := fixture()
	assert.Equal(t, "5800.00", TotalIncome(txns).StringFixed(2))
	assert.Equal(t, "2070.00", TotalExpense(txns).StringFixed(2))
	assert.Equal(t, "3730.00", Net(txns).StringFixed(2))
}

func TestNetEqualsIncomeMinusExpense(t *testing.T) {
	txns := fixture()
	filters := []Filter{
		{},
		{Start: day(1), End: day(1)},
		{Category: "Casa"},
		{Type: model.Expense},
		{Type: model.Income, Category: "Lazer"},
		{Start: day(10), End: day(20)},
	}
	for i, f := range filters {
		sel := f.Apply(txns)
		s := Summarize(sel)
		assert.True(t, s.Net.Equal(s.Income.Sub(s.Expense)), "filter %d", i)
		assert.True(t, s.Net.Equal(Net(sel)), "filter %d", i)
		assert.False(t, s.Expense.IsNegative(), "filter %d", i)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Filter{Category: "nada"}.Apply(fixture()))
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, "0.00", s.Net.StringFixed(2))
	assert.Equal(t, "0.00", s.Income.StringFixed(2))
	assert.Equal(t, "0.00", s.Expense.StringFixed(2))
}

func TestTimeSeries(t *testing.T) {
	txns := []model.Transaction{
		txn(day(3), "a", "-10", "x"),
		txn(day(1), "b", "100", "x"),
		txn(model.MissingDate, "c", "5", "x"),
		txn(day(3), "d", "-5", "x"),
	}
	pts := TimeSeries(txns)
	require.Len(t, pts, 2)
	assert.True(t, day(1).Equal(pts[0].Date))
	assert.Equal(t, "100", pts[0].Total.String())
	assert.True(t, day(3).Equal(pts[1].Date))
	assert.Equal(t, "-15", pts[1].Total.String())
}

func TestByCategory(t *testing.T) {
	got := ByCategory(fixture())
	require.Len(t, got, 3)
	assert.Equal(t, "Casa", got[0].Label)
	assert.Equal(t, "-2000.00", got[0].Total.StringFixed(2))
	assert.Equal(t, "Lazer", got[1].Label)
	assert.Equal(t, "-70.00", got[1].Total.StringFixed(2))
	assert.Equal(t, "Renda", got[2].Label)
	assert.Equal(t, "5800.00", got[2].Total.StringFixed(2))
}

func TestTopExpenses_FewerThanN(t *testing.T) {
	txns := []model.Transaction{
		txn(day(1), "Luz", "-100", "x"),
		txn(day(1), "Agua", "-40", "x"),
		txn(day(2), "Luz", "-50", "x"),
		txn(day(2), "Gas", "-120", "x"),
		txn(day(2), "Salario", "900", "x"),
	}
	got := TopExpenses(txns, DefaultTopN)
	require.Len(t, got, 3)
	assert.Equal(t, "Luz", got[0].Label)
	assert.Equal(t, "150", got[0].Total.String())
	assert.Equal(t, "Gas", got[1].Label)
	assert.Equal(t, "Agua", got[2].Label)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Total.GreaterThanOrEqual(got[i].Total))
	}
}

func TestTopExpenses_TruncatesAndBreaksTiesByEncounter(t *testing.T) {
	txns := []model.Transaction{
		txn(day(1), "A", "-10", "x"),
		txn(day(1), "B", "-30", "x"),
		txn(day(1), "C", "-10", "x"),
		txn(day(1), "D", "-20", "x"),
		txn(day(1), "E", "-10", "x"),
		txn(day(1), "F", "-5", "x"),
		txn(day(1), "G", "-10", "x"),
	}
	got := TopExpenses(txns, 5)
	require.Len(t, got, 5)
	labels := make([]string, len(got))
	for i, g := range got {
		labels[i] = g.Label
	}
	assert.Equal(t, []string{"B", "D", "A", "C", "E"}, labels)
}

func TestTopExpenses_NoExpenses(t *testing.T) {
	assert.Empty(t, TopExpenses([]model.Transaction{txn(day(1), "x", "1", "y")}, 5))
}

func TestSelectorOptions(t *testing.T) {
	assert.Equal(t, []string{"All", "Casa", "Lazer", "Renda"}, Categories(fixture()))
	assert.Equal(t, []string{"All", "Income", "Expense"}, Types())

	first, last, ok := DateRange(fixture())
	require.True(t, ok)
	assert.True(t, day(1).Equal(first))
	assert.True(t, day(5).Equal(last))

	_, _, ok = DateRange([]model.Transaction{txn(model.MissingDate, "x", "1", "y")})
	assert.False(t, ok)
}

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter(fixture())
	assert.True(t, day(1).Equal(f.Start))
	assert.True(t, day(5).Equal(f.End))
	assert.Len(t, f.Apply(fixture()), 6, "record without a date falls outside the range")
}

func TestBuild(t *testing.T) {
	d := Build(fixture(), Filter{Category: "Casa"}, DefaultTopN)
	assert.Len(t, d.Transactions, 3)
	assert.Equal(t, "2000.00", d.Summary.Expense.StringFixed(2))
	assert.Len(t, d.Series, 3)
	require.Len(t, d.Categories, 1)
	require.Len(t, d.TopExpenses, 2)
	assert.Equal(t, "Aluguel", d.TopExpenses[0].Label)
}

func TestFormatter(t *testing.T) {
	f := NewFormatter("R$", DefaultLocale)
	assert.Equal(t, "R$ 1,234.56", f.Money(dec("1234.56")))
	assert.Equal(t, "R$ 0.00", f.Money(decimal.Zero))
	assert.Equal(t, "R$ 5.00", f.Money(dec("4.999")))
	assert.Equal(t, "12.30", f.Number(dec("12.3")))
}

func TestFormatter_BadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("R$", "!!")
	assert.Equal(t, "R$ 10.00", f.Money(dec("10")))
}
