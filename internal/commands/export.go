package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/export"
)

func newExportCommand(g *globals) *cobra.Command {
	var flags filterFlags
	var out string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the normalized, filtered statement as CSV",
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
			txns := s.Filter(flt)
			opts := export.Options{Delimiter: g.cfg.Import.Delimiter, Encoding: g.cfg.Import.Encoding}

			if out == "" || out == "-" {
				return export.WriteTransactions(cmd.OutOrStdout(), txns, opts)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := export.WriteTransactions(f, txns, opts); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}
			if err := verifyExport(out, len(txns), opts); err != nil {
				return err
			}
			log := g.logger(cmd)
			log.Info().Str("path", out).Int("transactions", len(txns)).Msg("exported")
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}

// verifyExport reads a written file back and checks that every row parses.
func verifyExport(path string, want int, opts export.Options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	defer f.Close()

	got, err := export.ReadTransactions(f, opts)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", path, err)
	}
	if len(got) != want {
		return fmt.Errorf("verifying %s: wrote %d transactions, read back %d", path, want, len(got))
	}
	return nil
}
