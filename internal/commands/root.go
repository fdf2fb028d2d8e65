package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/extrato-dev/extrato/internal/buildinfo"
	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/logger"
)

// globals holds the settings resolved before any subcommand runs.
type globals struct {
	configPath string
	envFile    string
	logLevel   string
	cfg        *config.Config
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "extrato",
		Short:   "Bank statement dashboard",
		Long:    "Normalize CSV, spreadsheet and PDF bank statements and summarize income and expenses.",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.FileName, "config file")
	rootCmd.PersistentFlags().StringVar(&g.envFile, "env-file", "", "dotenv file with EXTRATO_* overrides (default ./.env when present)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand(g))
	rootCmd.AddCommand(newExportCommand(g))

	return rootCmd
}

func (g *globals) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(g.configPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg, g.envFile); err != nil {
		return err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	g.cfg = cfg
	cmd.SetContext(logger.WithContext(cmd.Context(), log))
	return nil
}

func (g *globals) logger(cmd *cobra.Command) zerolog.Logger {
	return logger.FromContext(cmd.Context())
}
