package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrInvalidArgument      = NewDomainError("invalid argument")
	ErrNotFound             = NewDomainError("currency not found")
	ErrAlreadyExists        = NewDomainError("currency already registered")
	ErrAmbiguousCurrency    = NewDomainError("currency code is ambiguous across namespaces")
	ErrCurrencyMismatch     = NewDomainError("currency mismatch")
	ErrInvalidDecimalDigits = NewDomainError("decimal digits out of range")
	ErrInvalidValidity      = NewDomainError("invalid validity window")
	ErrDivisionByZero       = NewDomainError("division by zero")
	ErrInvalidRoundingMode  = NewDomainError("unknown rounding mode")
)
