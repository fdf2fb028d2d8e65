package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/ingest"
	"github.com/extrato-dev/extrato/internal/report"
	"github.com/extrato-dev/extrato/internal/session"
)

func newReportCommand(g *globals) *cobra.Command {
	var flags filterFlags
	var topN int

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Summarize a bank statement",
		Long:  "Load a CSV, XLSX, XLS, PDF or TXT statement and print income, expense and net totals, the daily series, per-category totals, the top expenses and the filtered transactions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.load(cmd, args[0], flags.lenient)
			if err != nil {
				return err
			}
			flt, err := flags.build(s)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top") {
				topN = g.cfg.Report.TopN
			}
			fm := report.NewFormatter(g.cfg.Report.CurrencySymbol, g.cfg.Report.Locale)
			return renderDashboard(cmd.OutOrStdout(), s, s.Dashboard(flt, topN), fm)
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVar(&topN, "top", report.DefaultTopN, "number of expense descriptions to rank")

	return cmd
}

func (g *globals) load(cmd *cobra.Command, path string, lenient bool) (*session.Session, error) {
	cfg := *g.cfg
	if lenient {
		cfg.Import.Strict = false
	}
	p, err := ingest.New(&cfg, g.logger(cmd))
	if err != nil {
		return nil, err
	}
	return p.LoadFile(path)
}

func renderDashboard(w io.Writer, s *session.Session, d report.Dashboard, fm *report.Formatter) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Extrato\t%s (%s)\n", s.Source, s.Format)
	fmt.Fprintf(tw, "Período\t%s – %s\n", orDash(d.Filter.Start.String()), orDash(d.Filter.End.String()))
	fmt.Fprintf(tw, "Categoria\t%s\n", d.Filter.Category)
	fmt.Fprintf(tw, "Tipo\t%s\n", d.Filter.Type)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Receita\t%s\n", fm.Money(d.Summary.Income))
	fmt.Fprintf(tw, "Despesa\t%s\n", fm.Money(d.Summary.Expense))
	fmt.Fprintf(tw, "Lucro\t%s\n", fm.Money(d.Summary.Net))

	fmt.Fprintln(tw, "\nEvolução do valor no tempo")
	for _, p := range d.Series {
		fmt.Fprintf(tw, "%s\t%s\n", p.Date, fm.Number(p.Total))
	}

	fmt.Fprintln(tw, "\nDistribuição por categoria")
	for _, c := range d.Categories {
		fmt.Fprintf(tw, "%s\t%s\n", c.Label, fm.Number(c.Total))
	}

	fmt.Fprintf(tw, "\nTop %d despesas\n", len(d.TopExpenses))
	for _, e := range d.TopExpenses {
		fmt.Fprintf(tw, "%s\t%s\n", e.Label, fm.Number(e.Total))
	}

	fmt.Fprintf(tw, "\nTransações filtradas (%d)\n", d.Summary.Count)
	fmt.Fprintln(tw, "DATA\tDESCRIÇÃO\tVALOR\tTIPO\tCATEGORIA")
	for _, t := range d.Transactions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", orDash(t.Date.String()), t.Description, fm.Number(t.Amount), t.Type, t.Category)
	}

	if issues := s.Issues(); len(issues) > 0 {
		fmt.Fprintf(tw, "\n%d valores substituídos por padrão\n", len(issues))
		for _, is := range issues {
			fmt.Fprintf(tw, "  %s\n", is)
		}
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
