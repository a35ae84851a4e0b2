package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrFilingNotFound       = errors.New("filing not found")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrExtractionIncomplete = errors.New("extraction incomplete")
	ErrInvalidInput         = errors.New("invalid input")
	ErrTemporary            = errors.New("temporary failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

// MissingFieldsError reports exactly which required financial fields could
// not be located in a filing. Callers need the list for diagnosis; a partial
// field mapping is never returned alongside it.
type MissingFieldsError struct {
	Missing []FinancialField
}

func (e *MissingFieldsError) Error() string {
	if e == nil || len(e.Missing) == 0 {
		return "extraction incomplete"
	}
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return "missing required financial data fields: " + strings.Join(names, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrExtractionIncomplete
}
