package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypeFromAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   TxnType
	}{
		{"150.00", Income},
		{"0.01", Income},
		{"0", Expense},
		{"-3.50", Expense},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeFromAmount(decimal.RequireFromString(tt.amount)), "amount %s", tt.amount)
	}
}

func TestDate_Missing(t *testing.T) {
	assert.False(t, MissingDate.Valid())
	assert.Equal(t, "", MissingDate.String())
	assert.True(t, MissingDate.Equal(Date{}))
	assert.False(t, MissingDate.Equal(NewDate(2024, time.March, 1)))
}

func TestDate_Compare(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.March, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(NewDate(2024, time.March, 1)))
	assert.True(t, MissingDate.Before(a), "missing sorts first")
}

func TestDateOf_Truncates(t *testing.T) {
	d := DateOf(time.Date(2024, time.March, 1, 15, 30, 0, 0, time.UTC))
	assert.True(t, d.Equal(NewDate(2024, time.March, 1)))
	assert.Equal(t, "01/03/2024", d.String())
	assert.Equal(t, "2024-03-01", d.ISO())
}

func TestTransactionEqual(t *testing.T) {
	a := Transaction{
		Date:        NewDate(2024, time.March, 1),
		Description: "Supermercado",
		Amount:      decimal.RequireFromString("150.00"),
		Type:        Income,
		Category:    NotAvailable,
	}
	b := a
	b.Amount = decimal.RequireFromString("150")
	assert.True(t, a.Equal(b), "decimal equality ignores trailing zeros")

	b.Type = Expense
	assert.False(t, a.Equal(b))
}
