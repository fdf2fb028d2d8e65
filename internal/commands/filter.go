package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/coerce"
	"github.com/extrato-dev/extrato/internal/columns"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/report"
	"github.com/extrato-dev/extrato/internal/session"
	"github.com/extrato-dev/extrato/internal/sign"
)

// filterFlags mirrors the dashboard's sidebar controls.
type filterFlags struct {
	from     string
	to       string
	category string
	txnType  string
	lenient  bool
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "first day, DD/MM/YYYY (default: earliest date)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day, DD/MM/YYYY (default: latest date)")
	cmd.Flags().StringVar(&f.category, "category", report.All, "category to keep")
	cmd.Flags().StringVar(&f.txnType, "type", report.All, "transaction type: All, Income or Expense")
	cmd.Flags().BoolVar(&f.lenient, "lenient", false, "accept statements without data/valor columns")
}

// build turns the flags into a filter, defaulting the date range to the
// session's first and last dates.
func (f *filterFlags) build(s *session.Session) (report.Filter, error) {
	flt := s.DefaultFilter()

	if f.from != "" {
		d, err := parseDay("--from", f.from)
		if err != nil {
			return report.Filter{}, err
		}
		flt.Start = d
	}
	if f.to != "" {
		d, err := parseDay("--to", f.to)
		if err != nil {
			return report.Filter{}, err
		}
		flt.End = d
	}
	if flt.Start.Valid() && flt.End.Valid() && flt.Start.After(flt.End) {
		return report.Filter{}, fmt.Errorf("--from %s is after --to %s", flt.Start, flt.End)
	}

	flt.Category = f.category
	if flt.Category == "" {
		flt.Category = report.All
	}

	switch {
	case f.txnType == "" || strings.EqualFold(f.txnType, report.All):
		flt.Type = report.All
	default:
		flt.Type = sign.Classify(f.txnType)
		if flt.Type == model.Income && !isIncomeLabel(f.txnType) {
			return report.Filter{}, fmt.Errorf("unknown --type %q (expected All, Income or Expense)", f.txnType)
		}
	}
	return flt, nil
}

func isIncomeLabel(s string) bool {
	switch columns.Fold(s) {
	case "income", "entrada", "receita", "credito", "credit":
		return true
	}
	return false
}

func parseDay(flag, raw string) (model.Date, error) {
	res := coerce.Date(raw)
	if res.Defaulted {
		return model.MissingDate, fmt.Errorf("invalid %s %q: %v", flag, raw, res.Err)
	}
	return res.Value, nil
}
