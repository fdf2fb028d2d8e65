package statement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequiredColumn halts ingestion when data or valor is absent.
	ErrMissingRequiredColumn = errors.New("missing required column")
	// ErrDuplicateColumn halts strict ingestion when headers collide.
	ErrDuplicateColumn = errors.New("duplicate column")
)

// MissingColumnError names the required column that was not found.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("invalid statement: column '%s' not found", e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingRequiredColumn }

// DuplicateColumnError lists headers that normalize to the same key.
type DuplicateColumnError struct {
	Columns []string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("invalid statement: columns collide after normalization: %s", strings.Join(e.Columns, ", "))
}

func (e *DuplicateColumnError) Unwrap() error { return ErrDuplicateColumn }

// Issue describes a cell that was replaced by its default value.
type Issue struct {
	Row    int // 1-based data row; 0 for table-level issues
	Column string
	Raw    string
	Reason string
}

func (i Issue) String() string {
	if i.Row == 0 {
		return fmt.Sprintf("[%s]: %s", i.Column, i.Reason)
	}
	return fmt.Sprintf("row %d [%s] %q: %s", i.Row, i.Column, i.Raw, i.Reason)
}
