// Package columns maps arbitrary statement header labels to canonical keys.
package columns

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical column keys.
const (
	Date        = "data"
	Amount      = "valor"
	Description = "descricao"
	Type        = "tipo"
	Category    = "categoria"
)

// Required lists the columns a strict validation pass insists on, in check order.
var Required = []string{Date, Amount}

// Canonical lists every column of a canonical statement, in export order.
var Canonical = []string{Date, Description, Amount, Type, Category}

// Fold strips diacritics, lowercases and trims s.
// "  Descrição " -> "descricao"
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(strings.ToLower(out))
}

// Key converts a header label of any scalar type to its canonical key.
func Key(label any) string {
	if label == nil {
		return ""
	}
	if s, ok := label.(string); ok {
		return Fold(s)
	}
	return Fold(fmt.Sprint(label))
}

// Normalize maps labels to keys, preserving length and order.
func Normalize(labels []any) []string {
	keys := make([]string, len(labels))
	for i, l := range labels {
		keys[i] = Key(l)
	}
	return keys
}

// Duplicates returns keys that appear more than once, in the order the
// second occurrence is seen. Blank keys come from unnamed spacer columns
// and never collide.
func Duplicates(keys []string) []string {
	seen := make(map[string]int, len(keys))
	var dups []string
	for _, k := range keys {
		if k == "" {
			continue
		}
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
