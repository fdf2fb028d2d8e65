// Package session holds the canonical transactions of one uploaded statement.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/report"
	"github.com/extrato-dev/extrato/internal/source"
	"github.com/extrato-dev/extrato/internal/statement"
)

// Session is owned by the caller and never shared between uploads. Its
// transactions are read-only once the session is created.
type Session struct {
	ID       uuid.UUID
	Source   string
	Format   source.Format
	LoadedAt time.Time

	transactions []model.Transaction
	issues       []statement.Issue
}

// New creates a session over an already sign-normalized transaction set.
func New(name string, format source.Format, txns []model.Transaction, issues []statement.Issue) *Session {
	return &Session{
		ID:           uuid.New(),
		Source:       name,
		Format:       format,
		LoadedAt:     time.Now(),
		transactions: txns,
		issues:       issues,
	}
}

// Transactions returns a copy of the canonical set in source order.
func (s *Session) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.transactions...)
}

// Issues returns the cells that were replaced by defaults during validation.
func (s *Session) Issues() []statement.Issue {
	return append([]statement.Issue(nil), s.issues...)
}

// Len returns the number of transactions.
func (s *Session) Len() int { return len(s.transactions) }

// DefaultFilter spans every dated transaction with no facet constraints.
func (s *Session) DefaultFilter() report.Filter {
	return report.DefaultFilter(s.transactions)
}

// Categories returns the category selector options.
func (s *Session) Categories() []string {
	return report.Categories(s.transactions)
}

// Filter returns the transactions matching f.
func (s *Session) Filter(f report.Filter) []model.Transaction {
	return f.Apply(s.transactions)
}

// Dashboard runs every dashboard query for f.
func (s *Session) Dashboard(f report.Filter, topN int) report.Dashboard {
	return report.Build(s.transactions, f, topN)
}
