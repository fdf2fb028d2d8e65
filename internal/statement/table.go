// Package statement validates normalized statement tables into canonical
// transactions.
package statement

import (
	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/model"
)

// Row maps a canonical column key to a raw cell value.
type Row map[string]any

// Table is a decoded statement whose headers went through the column normalizer.
type Table struct {
	Columns    []string
	Rows       []Row
	Duplicates []string // keys produced by more than one header
}

// Has reports whether the table has a column with the given key.
func (t Table) Has(key string) bool {
	for _, c := range t.Columns {
		if c == key {
			return true
		}
	}
	return false
}

// FromGrid builds a Table from a header row and its data rows. When two
// headers normalize to the same key the first one wins and the key is
// recorded in Duplicates. Columns with a blank header are dropped. Short
// rows leave trailing cells absent.
func FromGrid(headers []any, cells [][]any) Table {
	keys := columns.Normalize(headers)
	t := Table{Duplicates: columns.Duplicates(keys)}

	firstIdx := make(map[string]int, len(keys))
	for i, k := range keys {
		if k == "" {
			continue
		}
		if _, seen := firstIdx[k]; seen {
			continue
		}
		firstIdx[k] = i
		t.Columns = append(t.Columns, k)
	}

	t.Rows = make([]Row, 0, len(cells))
	for _, rec := range cells {
		row := make(Row, len(t.Columns))
		for _, k := range t.Columns {
			i := firstIdx[k]
			if i < len(rec) {
				row[k] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// FromStrings is FromGrid for all-text sources such as CSV.
func FromStrings(headers []string, records [][]string) Table {
	h := make([]any, len(headers))
	for i, s := range headers {
		h[i] = s
	}
	cells := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, s := range rec {
			row[j] = s
		}
		cells[i] = row
	}
	return FromGrid(h, cells)
}

// FromTransactions renders transactions as a canonical Table so they can
// take another validation pass.
func FromTransactions(txns []model.Transaction) Table {
	t := Table{
		Columns: append([]string(nil), columns.Canonical...),
		Rows:    make([]Row, 0, len(txns)),
	}
	for _, txn := range txns {
		t.Rows = append(t.Rows, Row{
			columns.Date:        txn.Date,
			columns.Description: txn.Description,
			columns.Amount:      txn.Amount,
			columns.Type:        string(txn.Type),
			columns.Category:    txn.Category,
		})
	}
	return t
}
