// Package source decodes uploaded statement files into either a normalized
// table or plain text.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrato-dev/extrato/internal/statement"
)

// ErrUnsupportedFormat is returned for uploads no decoder accepts.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names a decoder.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
	FormatPDF  Format = "pdf"
	FormatText Format = "text"
)

// Upload is a file as received from the user.
type Upload struct {
	Name string
	Data []byte
}

// Document is a decoded upload. Exactly one of Table and Text is meaningful:
// tabular formats fill Table, text formats fill Text.
type Document struct {
	Format Format
	Table  *statement.Table
	Text   string
}

// IsText reports whether the document needs ledger text extraction.
func (d *Document) IsText() bool { return d.Table == nil }

// Decoder converts an upload into a Document.
type Decoder interface {
	Format() Format
	Extensions() []string
	Decode(u Upload) (*Document, error)
}

// Registry maps file extensions to decoders.
type Registry struct {
	byExt map[string]Decoder
}

// NewRegistry creates an empty decoder registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Decoder)}
}

// Register adds d under each of its extensions. Panics on a duplicate extension.
func (r *Registry) Register(d Decoder) {
	for _, ext := range d.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.byExt[key]; ok {
			panic("duplicate decoder extension: " + key)
		}
		r.byExt[key] = d
	}
}

// Lookup returns the decoder for a file name, by extension.
func (r *Registry) Lookup(name string) (Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	d, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected CSV, XLSX, XLS, PDF or TXT)", ErrUnsupportedFormat, name)
	}
	return d, nil
}

// Decode looks up the decoder for u and runs it.
func (r *Registry) Decode(u Upload) (*Document, error) {
	d, err := r.Lookup(u.Name)
	if err != nil {
		return nil, err
	}
	doc, err := d.Decode(u)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", u.Name, d.Format(), err)
	}
	return doc, nil
}

// Options tunes the delimited-text decoder.
type Options struct {
	Delimiter string
	Encoding  string
}

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry(opts Options) (*Registry, error) {
	csvDec, err := NewCSVDecoder(opts.Delimiter, opts.Encoding)
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	r.Register(csvDec)
	r.Register(&XLSXDecoder{})
	r.Register(&XLSDecoder{})
	r.Register(&PDFDecoder{})
	r.Register(&TextDecoder{})
	return r, nil
}
