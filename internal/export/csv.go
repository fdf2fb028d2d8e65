// Package export writes canonical transactions as delimited text that the
// CSV decoder reads back unchanged.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/source"
)

const (
	numFields   = 5
	colDate     = 0
	colDesc     = 1
	colAmount   = 2
	colType     = 3
	colCategory = 4
)

// Options selects the delimiter and character encoding of the output.
type Options struct {
	Delimiter string
	Encoding  string
}

// Header returns the canonical header row.
func Header() []string {
	return append([]string(nil), columns.Canonical...)
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(t model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = t.Date.String()
	row[colDesc] = t.Description
	row[colAmount] = t.Amount.StringFixed(2)
	row[colType] = string(t.Type)
	row[colCategory] = t.Category
	return row
}

// UnmarshalTransaction parses a CSV row written by MarshalTransaction.
// An empty date is read back as model.MissingDate.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date := model.MissingDate
	if record[colDate] != "" {
		t, err := time.Parse(model.DateLayout, record[colDate])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
		date = model.DateOf(t)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing valor %q: %w", record[colAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Type:        model.TxnType(record[colType]),
		Category:    record[colCategory],
	}, nil
}

// ReadTransactions reads an export written with the same options.
// Unlike the statement pipeline it rejects malformed rows.
func ReadTransactions(r io.Reader, opts Options) ([]model.Transaction, error) {
	comma, enc, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(enc.NewDecoder().Reader(r))
	cr.Comma = comma
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading export CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		t, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// WriteTransactions writes the header and one row per transaction.
// Characters the target encoding cannot represent are replaced.
func WriteTransactions(w io.Writer, txns []model.Transaction, opts Options) error {
	comma, enc, err := opts.resolve()
	if err != nil {
		return err
	}

	ew := transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
	cw := csv.NewWriter(ew)
	cw.Comma = comma

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(MarshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return ew.Close()
}

func (o Options) resolve() (rune, encoding.Encoding, error) {
	if o.Delimiter == "" {
		o.Delimiter = source.DefaultDelimiter
	}
	if o.Encoding == "" {
		o.Encoding = source.DefaultEncoding
	}
	comma, size := utf8.DecodeRuneInString(o.Delimiter)
	if size != len(o.Delimiter) {
		return 0, nil, fmt.Errorf("delimiter %q must be a single character", o.Delimiter)
	}
	enc, err := source.Encoding(o.Encoding)
	if err != nil {
		return 0, nil, err
	}
	return comma, enc, nil
}
