// Package ingest runs one upload through decoding, extraction, validation
// and sign normalization, producing a session.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/session"
	"github.com/extrato-dev/extrato/internal/sign"
	"github.com/extrato-dev/extrato/internal/source"
	"github.com/extrato-dev/extrato/internal/statement"
)

// Pipeline is the single ingestion path shared by every upload format.
type Pipeline struct {
	registry  *source.Registry
	extractor *ledger.Extractor
	mode      statement.Mode
	log       zerolog.Logger
}

// New builds a Pipeline from configuration.
func New(cfg *config.Config, log zerolog.Logger) (*Pipeline, error) {
	reg, err := source.DefaultRegistry(source.Options{
		Delimiter: cfg.Import.Delimiter,
		Encoding:  cfg.Import.Encoding,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring decoders: %w", err)
	}
	mode := statement.Lenient
	if cfg.Import.Strict {
		mode = statement.Strict
	}
	return &Pipeline{
		registry:  reg,
		extractor: ledger.New(cfg.Ledger.CurrencySymbol, log),
		mode:      mode,
		log:       log,
	}, nil
}

// Mode returns the validation mode in effect.
func (p *Pipeline) Mode() statement.Mode { return p.mode }

// Load ingests one upload. Unsupported formats, unreadable files and
// missing required columns are fatal; nothing is returned for them.
func (p *Pipeline) Load(u source.Upload) (*session.Session, error) {
	log := p.log.With().Str("file", u.Name).Logger()

	doc, err := p.registry.Decode(u)
	if err != nil {
		return nil, err
	}

	var tbl statement.Table
	if doc.IsText() {
		txns := p.extractor.Extract(doc.Text)
		log.Debug().Int("records", len(txns)).Msg("extracted ledger lines")
		if len(txns) == 0 {
			log.Warn().Msg("no transactions found in statement text")
		}
		tbl = statement.FromTransactions(txns)
	} else {
		tbl = *doc.Table
		log.Debug().Strs("columns", tbl.Columns).Int("rows", len(tbl.Rows)).Msg("decoded table")
	}

	res, err := statement.Validate(tbl, p.mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", u.Name, err)
	}
	for _, is := range res.Issues {
		log.Warn().Int("row", is.Row).Str("column", is.Column).Str("raw", is.Raw).Msg(is.Reason)
	}

	txns := sign.Normalize(res.Transactions)
	s := session.New(u.Name, doc.Format, txns, res.Issues)
	log.Info().
		Str("session", s.ID.String()).
		Str("format", string(doc.Format)).
		Int("transactions", s.Len()).
		Int("issues", len(res.Issues)).
		Msg("statement loaded")
	return s, nil
}

// LoadFile reads path from disk and ingests it.
func (p *Pipeline) LoadFile(path string) (*session.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.Load(source.Upload{Name: filepath.Base(path), Data: data})
}
