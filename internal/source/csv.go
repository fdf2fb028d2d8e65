package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/extrato-dev/extrato/internal/statement"
)

const (
	DefaultDelimiter = ";"
	DefaultEncoding  = "latin1"
)

var encodings = map[string]encoding.Encoding{
	"latin1":       charmap.ISO8859_1,
	"latin-1":      charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"utf-8":        unicode.UTF8,
	"utf8":         unicode.UTF8,
}

// CSVDecoder reads delimited text with a header row.
type CSVDecoder struct {
	comma    rune
	encoding encoding.Encoding
}

// NewCSVDecoder returns a decoder for the given single-character delimiter
// and character encoding name. Empty values select the defaults.
func NewCSVDecoder(delimiter, enc string) (*CSVDecoder, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	if enc == "" {
		enc = DefaultEncoding
	}
	comma, size := utf8.DecodeRuneInString(delimiter)
	if size != len(delimiter) {
		return nil, fmt.Errorf("delimiter %q must be a single character", delimiter)
	}
	e, err := Encoding(enc)
	if err != nil {
		return nil, err
	}
	return &CSVDecoder{comma: comma, encoding: e}, nil
}

// Encoding resolves a character encoding name such as "latin1" or "utf-8".
func Encoding(name string) (encoding.Encoding, error) {
	e, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return e, nil
}

// Format returns the decoder name.
func (d *CSVDecoder) Format() Format { return FormatCSV }

// Extensions returns the file extensions handled.
func (d *CSVDecoder) Extensions() []string { return []string{"csv"} }

// Decode reads the header row and every data row.
func (d *CSVDecoder) Decode(u Upload) (*Document, error) {
	cr := csv.NewReader(d.encoding.NewDecoder().Reader(bytes.NewReader(u.Data)))
	cr.Comma = d.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading CSV: no header row")
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	tbl := statement.FromStrings(headers, records[1:])
	return &Document{Format: FormatCSV, Table: &tbl}, nil
}
