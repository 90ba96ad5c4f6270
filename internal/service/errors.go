package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError marks a caller mistake rather than a system failure.
// The api layer maps these to a {success:false, message} body with a
// 4xx status instead of a 500.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func UnknownInstrumentError(symbol string) error {
	return ValidationError{msg: fmt.Sprintf("unknown instrument %s - no market quote available", symbol)}
}

func InvalidQuantityError(shares decimal.Decimal) error {
	return ValidationError{msg: fmt.Sprintf("invalid quantity %s - shares must be greater than zero", shares)}
}

func NoSuchHoldingError(symbol string) error {
	return ValidationError{msg: fmt.Sprintf("no holding found for %s", symbol)}
}

func InsufficientSharesError(symbol string, requested, held decimal.Decimal) error {
	return ValidationError{msg: fmt.Sprintf("insufficient shares of %s - requested %s but only %s held", symbol, requested, held)}
}

func InvalidRiskToleranceError(value string) error {
	return ValidationError{msg: fmt.Sprintf("invalid risk tolerance %q - must be conservative, moderate or aggressive", value)}
}

func InvalidRebalanceFrequencyError(value string) error {
	return ValidationError{msg: fmt.Sprintf("invalid rebalancing frequency %q - must be monthly, quarterly or annually", value)}
}

func InvalidAllocationError(sum float64) error {
	return ValidationError{msg: fmt.Sprintf("target allocation must sum to 1.0 - got %.4f", sum)}
}
