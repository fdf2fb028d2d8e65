package source

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFDecoder extracts plain text page by page.
type PDFDecoder struct{}

// Format returns the decoder name.
func (d *PDFDecoder) Format() Format { return FormatPDF }

// Extensions returns the file extensions handled.
func (d *PDFDecoder) Extensions() []string { return []string{"pdf"} }

// Decode concatenates the text of every page with no separator.
func (d *PDFDecoder) Decode(u Upload) (*Document, error) {
	r, err := pdf.NewReader(bytes.NewReader(u.Data), int64(len(u.Data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		sb.WriteString(text)
	}
	return &Document{Format: FormatPDF, Text: sb.String()}, nil
}

// TextDecoder accepts text that was already extracted from a statement.
type TextDecoder struct{}

// Format returns the decoder name.
func (d *TextDecoder) Format() Format { return FormatText }

// Extensions returns the file extensions handled.
func (d *TextDecoder) Extensions() []string { return []string{"txt"} }

// Decode returns the upload as text.
func (d *TextDecoder) Decode(u Upload) (*Document, error) {
	return &Document{Format: FormatText, Text: string(u.Data)}, nil
}
