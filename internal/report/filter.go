// Package report answers dashboard queries over a canonical, sign-normalized
// transaction set. Every function only selects or sums; none rewrites a record.
package report

import (
	"sort"

	"github.com/extrato-dev/extrato/internal/model"
)

// All disables a category or type constraint.
const All = "All"

// Filter selects transactions by date range, category and type.
type Filter struct {
	Start    model.Date // inclusive; missing = unbounded
	End      model.Date // inclusive; missing = unbounded
	Category string     // All or "" = any
	Type     model.TxnType
}

func (f Filter) dateBounded() bool {
	return f.Start.Valid() || f.End.Valid()
}

// Match reports whether t satisfies every active constraint. Records
// without a real date never match a date-bounded filter.
func (f Filter) Match(t model.Transaction) bool {
	if f.dateBounded() {
		if !t.Date.Valid() {
			return false
		}
		if f.Start.Valid() && t.Date.Before(f.Start) {
			return false
		}
		if f.End.Valid() && t.Date.After(f.End) {
			return false
		}
	}
	if f.Category != "" && f.Category != All && t.Category != f.Category {
		return false
	}
	if f.Type != "" && f.Type != All && t.Type != f.Type {
		return false
	}
	return true
}

// Apply returns the matching subsequence of txns in its original order.
func (f Filter) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Categories returns the category selector options: All followed by the
// observed categories in sorted order.
func Categories(txns []model.Transaction) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, t := range txns {
		if !seen[t.Category] {
			seen[t.Category] = true
			cats = append(cats, t.Category)
		}
	}
	sort.Strings(cats)
	return append([]string{All}, cats...)
}

// Types returns the type selector options.
func Types() []string {
	return []string{All, string(model.Income), string(model.Expense)}
}

// DateRange returns the earliest and latest real dates. ok is false when
// no record has a date.
func DateRange(txns []model.Transaction) (first, last model.Date, ok bool) {
	for _, t := range txns {
		if !t.Date.Valid() {
			continue
		}
		if !ok || t.Date.Before(first) {
			first = t.Date
		}
		if !ok || t.Date.After(last) {
			last = t.Date
		}
		ok = true
	}
	return first, last, ok
}

// DefaultFilter spans the full date range of txns with no facet constraints.
func DefaultFilter(txns []model.Transaction) Filter {
	first, last, _ := DateRange(txns)
	return Filter{Start: first, End: last, Category: All, Type: All}
}
