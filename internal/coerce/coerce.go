// Package coerce parses raw cell values into canonical types, falling back
// to a default instead of failing. Every result records whether the default
// was used so callers can tell a real zero from a parse failure.
package coerce

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/model"
)

// ErrBlank is reported when a value is absent or empty.
var ErrBlank = errors.New("blank value")

// Result carries a parsed value, or the default plus the reason it was used.
type Result[T any] struct {
	Value     T
	Defaulted bool
	Err       error
}

func ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func fallback[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Defaulted: true, Err: err}
}

// dateLayouts are tried in order. Day-first layouts come before ISO ones so
// an ambiguous 01/03/2024 reads as 1 March. Month-first layouts are last
// and only match what cannot be day-first, like 03/25/2024.
var dateLayouts = []string{
	"2/1/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1-2-2006",
	"1/2/06",
}

// Date parses raw day-first. Unparsable or blank input yields MissingDate.
func Date(raw any) Result[model.Date] {
	switch v := raw.(type) {
	case nil:
		return fallback(model.MissingDate, ErrBlank)
	case model.Date:
		if !v.Valid() {
			return fallback(model.MissingDate, ErrBlank)
		}
		return ok(v)
	case time.Time:
		if v.IsZero() {
			return fallback(model.MissingDate, ErrBlank)
		}
		return ok(model.DateOf(v))
	case string:
		return parseDateString(v)
	default:
		return fallback(model.MissingDate, fmt.Errorf("unsupported date value %v (%T)", raw, raw))
	}
}

func parseDateString(s string) Result[model.Date] {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback(model.MissingDate, ErrBlank)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ok(model.DateOf(t))
		}
	}
	return fallback(model.MissingDate, fmt.Errorf("unrecognized date %q", s))
}

// brlNumeral matches amounts written with '.' thousands and ',' decimals,
// optionally signed and prefixed by a currency symbol.
var brlNumeral = regexp.MustCompile(`^([+-]?)\s*(?:R\$)?\s*([+-]?)(\d{1,3}(?:\.\d{3})+|\d+)(,\d+)?$`)

// Amount parses raw as a decimal. Unparsable or blank input yields zero.
func Amount(raw any) Result[decimal.Decimal] {
	switch v := raw.(type) {
	case nil:
		return fallback(decimal.Zero, ErrBlank)
	case decimal.Decimal:
		return ok(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback(decimal.Zero, fmt.Errorf("non-finite amount %v", v))
		}
		return ok(decimal.NewFromFloat(v))
	case float32:
		return Amount(float64(v))
	case int:
		return ok(decimal.NewFromInt(int64(v)))
	case int64:
		return ok(decimal.NewFromInt(v))
	case string:
		return parseAmountString(v)
	default:
		return fallback(decimal.Zero, fmt.Errorf("unsupported amount value %v (%T)", raw, raw))
	}
}

func parseAmountString(s string) Result[decimal.Decimal] {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback(decimal.Zero, ErrBlank)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return ok(d)
	}
	m := brlNumeral.FindStringSubmatch(s)
	if m == nil {
		return fallback(decimal.Zero, fmt.Errorf("unrecognized amount %q", s))
	}
	d, err := BRL(m[3] + m[4])
	if err != nil {
		return fallback(decimal.Zero, err)
	}
	if m[1] == "-" || m[2] == "-" {
		d = d.Neg()
	}
	return ok(d)
}

// BRL converts a numeral like "1.234,56" to a decimal by dropping the
// thousands separators and turning the decimal comma into a point.
func BRL(numeral string) (decimal.Decimal, error) {
	std := strings.ReplaceAll(numeral, ".", "")
	std = strings.ReplaceAll(std, ",", ".")
	d, err := decimal.NewFromString(std)
	if err != nil {
		return decimal.Zero, fmt.Errorf("converting numeral %q: %w", numeral, err)
	}
	return d, nil
}
