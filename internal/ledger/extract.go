// Package ledger extracts transactions from the plain text of a bank statement.
//
// Statements list a date on its own line followed by the movements booked on
// that day, each ending in a currency-marked amount:
//
//	01/03/2024
//	Supermercado R$ 150,00
//	Farmacia R$ 1.020,35
package ledger

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/extrato-dev/extrato/internal/coerce"
	"github.com/extrato-dev/extrato/internal/model"
)

// DefaultSymbol is the currency marker used when none is configured.
const DefaultSymbol = "R$"

var dateLine = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})$`)

// Extractor scans statement text line by line.
type Extractor struct {
	symbol string
	amount *regexp.Regexp
	log    zerolog.Logger
}

// New returns an Extractor for amounts marked with symbol. Any space
// separator may sit between the symbol and the numeral, including the
// no-break space locale formatting emits.
func New(symbol string, log zerolog.Logger) *Extractor {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Extractor{
		symbol: symbol,
		amount: regexp.MustCompile(regexp.QuoteMeta(symbol) + `[\s\p{Zs}]*([\d.,]+)`),
		log:    log,
	}
}

// Symbol returns the currency marker the extractor looks for.
func (e *Extractor) Symbol() string { return e.symbol }

// Extract returns one transaction per recognized amount line, in the order
// the lines appear. Amount lines seen before any valid date line, and lines
// whose numeral does not convert, produce nothing.
func (e *Extractor) Extract(text string) []model.Transaction {
	var (
		txns    []model.Transaction
		current = model.MissingDate
	)

	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lineNum := n + 1

		if m := dateLine.FindStringSubmatch(line); m != nil && !strings.Contains(line, e.symbol) {
			t, err := time.Parse(model.DateLayout, m[1])
			if err != nil {
				e.log.Debug().Int("line", lineNum).Str("text", line).Msg("unparsable date line, clearing current date")
				current = model.MissingDate
				continue
			}
			current = model.DateOf(t)
			continue
		}

		loc := e.amount.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}
		if !current.Valid() {
			e.log.Debug().Int("line", lineNum).Str("text", line).Msg("amount line without a current date, skipped")
			continue
		}

		numeral := line[loc[2]:loc[3]]
		amount, err := coerce.BRL(numeral)
		if err != nil {
			e.log.Debug().Int("line", lineNum).Str("numeral", numeral).Err(err).Msg("malformed amount, skipped")
			continue
		}

		desc := strings.TrimSpace(line[:loc[0]])
		if desc == "" {
			desc = model.NotAvailable
		}

		txns = append(txns, model.Transaction{
			Date:        current,
			Description: desc,
			Amount:      amount,
			Type:        model.TypeFromAmount(amount),
			Category:    model.NotAvailable,
		})
	}
	return txns
}
