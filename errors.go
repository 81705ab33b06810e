package fixedpoint

import "github.com/zeebo/errs"

// Error classes returned by this package.
// Use the Has method of a class to check whether an error belongs to it:
//
//	if fixedpoint.DivisionByZero.Has(err) { ... }
var (
	// ParseError is returned when an input does not represent a decimal
	// number, or has a type that cannot be converted to a decimal.
	ParseError = errs.Class("parse")

	// DivisionByZero is returned when a divisor is zero.
	DivisionByZero = errs.Class("division by zero")

	// PrecisionMismatch is returned by the strict arithmetic methods when
	// the operands have different precisions.
	PrecisionMismatch = errs.Class("precision mismatch")

	// PrecisionError is returned when a precision is negative.
	PrecisionError = errs.Class("precision out of range")

	// RangeError is returned when a decimal does not fit into the
	// requested target representation.
	RangeError = errs.Class("out of range")
)

func checkPrecision(prec int) error {
	if prec < 0 {
		return PrecisionError.New("%d", prec)
	}
	return nil
}
