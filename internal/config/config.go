package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file looked up in the working directory.
const FileName = "extrato.yaml"

// Config represents the top-level extrato.yaml configuration.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Ledger LedgerConfig `yaml:"ledger"`
	Report ReportConfig `yaml:"report"`
	Log    LogConfig    `yaml:"log"`
}

// ImportConfig controls how uploads are decoded and validated.
type ImportConfig struct {
	Delimiter string `yaml:"delimiter"`
	Encoding  string `yaml:"encoding"`
	Strict    bool   `yaml:"strict"` // halt when data/valor columns are missing
}

// LedgerConfig controls text extraction from PDF statements.
type LedgerConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// ReportConfig controls dashboard rendering.
type ReportConfig struct {
	TopN           int    `yaml:"top_n"`
	Locale         string `yaml:"locale"` // BCP 47 tag used for number grouping
	CurrencySymbol string `yaml:"currency_symbol"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// Environment variables that override file settings.
const (
	EnvLogLevel       = "EXTRATO_LOG_LEVEL"
	EnvStrict         = "EXTRATO_STRICT"
	EnvCurrencySymbol = "EXTRATO_CURRENCY_SYMBOL"
	EnvEncoding       = "EXTRATO_CSV_ENCODING"
)

// Load reads an extrato.yaml file from disk. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, falling back to Default when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching Brazilian bank exports.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Delimiter: ";",
			Encoding:  "latin1",
			Strict:    true,
		},
		Ledger: LedgerConfig{
			CurrencySymbol: "R$",
		},
		Report: ReportConfig{
			TopN:           5,
			Locale:         "en",
			CurrencySymbol: "R$",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ApplyEnv overrides cfg from the environment. A .env file is loaded first:
// envPath when given (it must exist), otherwise ./.env when present.
// Variables already set in the process environment take precedence over .env.
func ApplyEnv(cfg *Config, envPath string) error {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("loading env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvStrict, err)
		}
		cfg.Import.Strict = strict
	}
	if v := os.Getenv(EnvCurrencySymbol); v != "" {
		cfg.Ledger.CurrencySymbol = v
		cfg.Report.CurrencySymbol = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		cfg.Import.Encoding = v
	}
	return nil
}
