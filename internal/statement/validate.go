package statement

import (
	"fmt"
	"strings"

	"github.com/extrato-dev/extrato/internal/coerce"
	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/model"
)

// Mode selects how strictly table-level problems are treated.
type Mode int

const (
	// Strict halts on missing required columns and header collisions.
	Strict Mode = iota
	// Lenient records those problems as issues and fills defaults.
	Lenient
)

func (m Mode) String() string {
	if m == Lenient {
		return "lenient"
	}
	return "strict"
}

// Result is the outcome of a validation pass.
type Result struct {
	Transactions []model.Transaction
	Issues       []Issue
}

// Validate turns a normalized table into canonical transactions, one per
// row, in row order. Cell-level problems never fail the pass; they are
// replaced by defaults and reported as issues.
func Validate(t Table, mode Mode) (*Result, error) {
	res := &Result{}

	if len(t.Duplicates) > 0 {
		if mode == Strict {
			return nil, &DuplicateColumnError{Columns: t.Duplicates}
		}
		for _, k := range t.Duplicates {
			res.Issues = append(res.Issues, Issue{Column: k, Reason: "duplicate column, first occurrence kept"})
		}
	}

	for _, col := range columns.Required {
		if t.Has(col) {
			continue
		}
		if mode == Strict {
			return nil, &MissingColumnError{Column: col}
		}
		res.Issues = append(res.Issues, Issue{Column: col, Reason: "column not found"})
	}

	hasType := t.Has(columns.Type)
	res.Transactions = make([]model.Transaction, 0, len(t.Rows))
	for i, row := range t.Rows {
		rowNum := i + 1

		date := coerce.Date(row[columns.Date])
		if date.Defaulted && t.Has(columns.Date) {
			res.Issues = append(res.Issues, cellIssue(rowNum, columns.Date, row, date.Err))
		}

		amount := coerce.Amount(row[columns.Amount])
		if amount.Defaulted && t.Has(columns.Amount) {
			res.Issues = append(res.Issues, cellIssue(rowNum, columns.Amount, row, amount.Err))
		}

		txnType := model.TypeFromAmount(amount.Value)
		if hasType {
			if label := text(row[columns.Type]); label != "" {
				txnType = model.TxnType(label)
			}
		}

		res.Transactions = append(res.Transactions, model.Transaction{
			Date:        date.Value,
			Description: textOrNA(row[columns.Description]),
			Amount:      amount.Value,
			Type:        txnType,
			Category:    textOrNA(row[columns.Category]),
		})
	}
	return res, nil
}

func cellIssue(row int, col string, r Row, err error) Issue {
	reason := "defaulted"
	if err != nil {
		reason = err.Error()
	}
	return Issue{Row: row, Column: col, Raw: text(r[col]), Reason: reason}
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case fmt.Stringer:
		return strings.TrimSpace(s.String())
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func textOrNA(v any) string {
	if s := text(v); s != "" {
		return s
	}
	return model.NotAvailable
}
