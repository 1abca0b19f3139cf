package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrEntryUnbalanced indicates that the debit and credit totals of an entry differ.
var ErrEntryUnbalanced = fmt.Errorf("%w: entry debits and credits do not balance", ErrValidation)

// ErrOpeningEntryExists indicates that the ledger already holds an opening entry.
var ErrOpeningEntryExists = fmt.Errorf("%w: opening entry already recorded", ErrDuplicate)

// ErrLedgerInconsistent indicates that derived statements violate the accounting equation.
// It is never corrected automatically.
var ErrLedgerInconsistent = errors.New("ledger inconsistent: assets do not equal liabilities plus equity")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
