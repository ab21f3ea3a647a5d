package bookkeeping

import "errors"

// The error taxonomy of the core. All of these are recoverable values
// returned to the caller, wrapped with fmt.Errorf("%w") to carry context.
// The core never logs and never converts a failure into a default value.
var (
	// ErrCurrencyMismatch is returned by any binary Money operation whose
	// operands carry different commodities.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrPrecisionOverflow is returned when a Money amount cannot be
	// expressed exactly as numerator/10^digits within int64.
	ErrPrecisionOverflow = errors.New("amount overflows commodity precision")

	// ErrInvalidFraction is returned when a Price carries a zero denominator.
	ErrInvalidFraction = errors.New("invalid fraction: zero denominator")

	// ErrMalformedRecord is returned when parsing a serialized record fails
	// field-count or numeric-format validation.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrPlaceholderAccount is returned when an operation requires a
	// non-placeholder account but receives a placeholder.
	ErrPlaceholderAccount = errors.New("placeholder account cannot hold splits")
)
