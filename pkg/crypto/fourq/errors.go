package fourq

import "fmt"

// Sentinel errors returned by this package. Failures are reported by wrapping
// one of these, so callers can classify with errors.Is.
var (
	// ErrInvalidLength indicates hex input whose length is not exactly
	// 2*RawSize characters.
	ErrInvalidLength = fmt.Errorf("invalid hex input length")

	// ErrInvalidHexDigit indicates input containing a non-hexadecimal
	// character.
	ErrInvalidHexDigit = fmt.Errorf("invalid hex digit")

	// ErrDivisionByZero indicates scalar division by the zero scalar.
	ErrDivisionByZero = fmt.Errorf("scalar division by zero")

	// ErrInversionOfZero indicates inversion of the zero scalar.
	ErrInversionOfZero = fmt.Errorf("inversion of zero scalar")

	// ErrPointDecode indicates raw bytes that do not decode to a curve point.
	ErrPointDecode = fmt.Errorf("point decoding failed")

	// ErrPointValidation indicates a point that failed curve or subgroup
	// validation, or a hex string that failed to yield a valid point.
	ErrPointValidation = fmt.Errorf("point validation failed")

	// ErrScalarMul indicates a failure inside a scalar multiplication
	// primitive.
	ErrScalarMul = fmt.Errorf("scalar multiplication failed")

	// ErrSignatureOperation indicates an empty message or a failure inside
	// the signing primitive.
	ErrSignatureOperation = fmt.Errorf("signature operation failed")
)
