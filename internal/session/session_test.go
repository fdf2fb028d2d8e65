package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/report"
	"github.com/extrato-dev/extrato/internal/source"
	"github.com/extrato-dev/extrato/internal/statement"
)

func sample() []model.Transaction {
	return []model.Transaction{
		{Date: model.NewDate(2024, time.March, 1), Description: "Pix", Amount: decimal.NewFromInt(100), Type: model.Income, Category: "Renda"},
		{Date: model.NewDate(2024, time.March, 2), Description: "Luz", Amount: decimal.NewFromInt(-40), Type: model.Expense, Category: "Casa"},
	}
}

func TestNew(t *testing.T) {
	issues := []statement.Issue{{Row: 1, Column: "valor", Reason: "x"}}
	s := New("extrato.csv", source.FormatCSV, sample(), issues)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "extrato.csv", s.Source)
	assert.Equal(t, source.FormatCSV, s.Format)
	assert.False(t, s.LoadedAt.IsZero())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, issues, s.Issues())
}

func TestSessionsAreIndependent(t *testing.T) {
	a := New("a.csv", source.FormatCSV, sample(), nil)
	b := New("b.csv", source.FormatCSV, nil, nil)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, b.Len())
}

func TestTransactions_ReturnsCopy(t *testing.T) {
	s := New("a.csv", source.FormatCSV, sample(), nil)
	got := s.Transactions()
	got[0].Description = "changed"
	assert.Equal(t, "Pix", s.Transactions()[0].Description)
}

func TestQueries(t *testing.T) {
	s := New("a.csv", source.FormatCSV, sample(), nil)

	assert.Equal(t, []string{"All", "Casa", "Renda"}, s.Categories())

	f := s.DefaultFilter()
	assert.True(t, model.NewDate(2024, time.March, 1).Equal(f.Start))
	assert.True(t, model.NewDate(2024, time.March, 2).Equal(f.End))

	assert.Len(t, s.Filter(report.Filter{Type: model.Expense}), 1)

	d := s.Dashboard(f, report.DefaultTopN)
	require.Len(t, d.Transactions, 2)
	assert.Equal(t, "60.00", d.Summary.Net.StringFixed(2))
	require.Len(t, d.TopExpenses, 1)
	assert.Equal(t, "Luz", d.TopExpenses[0].Label)
}
