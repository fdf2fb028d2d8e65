package sign

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/extrato-dev/extrato/internal/model"
)

func txn(typ string, amount string) model.Transaction {
	return model.Transaction{
		Type:        model.TxnType(typ),
		Amount:      decimal.RequireFromString(amount),
		Description: model.NotAvailable,
		Category:    model.NotAvailable,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		label string
		want  model.TxnType
	}{
		{"Saída", model.Expense},
		{"SAIDA", model.Expense},
		{" saída ", model.Expense},
		{"Expense", model.Expense},
		{"Despesa", model.Expense},
		{"Débito", model.Expense},
		{"Entrada", model.Income},
		{"Income", model.Income},
		{"crédito", model.Income},
		{"", model.Income},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.label), "Classify(%q)", tt.label)
	}
}

func TestApply_TypeIsAuthoritative(t *testing.T) {
	// Income label with a negative amount flips to positive.
	got := Apply(txn("Entrada", "-50.00"))
	assert.Equal(t, model.Income, got.Type)
	assert.Equal(t, "50.00", got.Amount.StringFixed(2))

	// Expense label with a positive amount flips to negative.
	got = Apply(txn("Saída", "50.00"))
	assert.Equal(t, model.Expense, got.Type)
	assert.Equal(t, "-50.00", got.Amount.StringFixed(2))
}

func TestApply_AgreeingSignsUnchanged(t *testing.T) {
	got := Apply(txn("Income", "10"))
	assert.Equal(t, "10", got.Amount.String())
	got = Apply(txn("Expense", "-10"))
	assert.Equal(t, "-10", got.Amount.String())
}

func TestNormalize_SignInvariant(t *testing.T) {
	in := []model.Transaction{
		txn("Entrada", "-1"),
		txn("Saída", "2"),
		txn("saida", "-3"),
		txn("ENTRADA", "4"),
		txn("Expense", "0"),
		txn("Income", "0"),
		txn("qualquer", "-7.25"),
	}
	out := Normalize(in)
	assert.Len(t, out, len(in))

	for i, t2 := range out {
		switch t2.Type {
		case model.Expense:
			assert.True(t, t2.Amount.LessThanOrEqual(decimal.Zero), "row %d", i)
		case model.Income:
			assert.True(t, t2.Amount.GreaterThanOrEqual(decimal.Zero), "row %d", i)
		default:
			t.Fatalf("row %d has non-canonical type %q", i, t2.Type)
		}
		assert.True(t, in[i].Amount.Abs().Equal(t2.Amount.Abs()), "row %d magnitude kept", i)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []model.Transaction{txn("Saída", "5")}
	_ = Normalize(in)
	assert.Equal(t, model.TxnType("Saída"), in[0].Type)
	assert.Equal(t, "5", in[0].Amount.String())
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize([]model.Transaction{txn("Saída", "5"), txn("Entrada", "-5")})
	twice := Normalize(once)
	for i := range once {
		assert.True(t, once[i].Equal(twice[i]))
	}
}
