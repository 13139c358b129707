package freqresp

import "errors"

// Common errors returned by constructors and operators.
var (
	// ErrInvalidArguments indicates a constructor was called with nil or
	// otherwise unusable arguments.
	ErrInvalidArguments = errors.New("invalid constructor arguments")

	// ErrShapeMismatch indicates the response tensor and frequency axis
	// disagree in size.
	ErrShapeMismatch = errors.New("response data shape mismatch")

	// ErrDimensionMismatch indicates incompatible input/output counts
	// between the operands of a connection.
	ErrDimensionMismatch = errors.New("input/output dimension mismatch")

	// ErrNotImplemented indicates the requested operation is not available
	// for the given operand shapes (MIMO division).
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrInvalidExponent indicates a non-integer exponent was passed to Pow.
	ErrInvalidExponent = errors.New("exponent must be an integer")

	// ErrNoOverlap indicates two frequency axes share no common range.
	ErrNoOverlap = errors.New("frequency ranges do not overlap")

	// ErrUnsupportedConversion indicates an operand could not be coerced to
	// a frequency response model.
	ErrUnsupportedConversion = errors.New("unsupported conversion to FRD")

	// ErrNonIncreasingAxis indicates a frequency axis with duplicate or
	// descending values. Interpolation requires a strictly increasing axis,
	// so such axes are rejected at construction.
	ErrNonIncreasingAxis = errors.New("frequency axis must be strictly increasing")
)
