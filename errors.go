package printf

import "errors"

var (
	// ErrMissingSpecifier indicates a conversion specification with no
	// specifier character, e.g. a template ending in "%05".
	ErrMissingSpecifier = errors.New("printf: conversion specifier missing")

	// ErrUnknownSpecifier indicates a specifier outside the implemented set
	// (%d, %i, %s). Recognized-but-unimplemented specifiers such as %x or %f
	// are rejected with this error instead of being mis-formatted.
	ErrUnknownSpecifier = errors.New("printf: unknown conversion specifier")

	// ErrUnknownFlag indicates a byte in the flags field outside the
	// recognized flag alphabet.
	ErrUnknownFlag = errors.New("printf: unknown conversion flag")

	// ErrDuplicateFlag indicates the same flag character appeared twice in
	// one specification.
	ErrDuplicateFlag = errors.New("printf: duplicated conversion flag")

	// ErrInvalidWidth indicates a field width that does not parse as a
	// non-negative decimal integer.
	ErrInvalidWidth = errors.New("printf: invalid field width")

	// ErrInvalidPrecision indicates a precision field that does not consist
	// of '.' followed by a decimal integer.
	ErrInvalidPrecision = errors.New("printf: invalid precision")

	// ErrUnknownLength indicates a length modifier outside the recognized
	// set (h, hh, l, ll, j, z, Z, t, L).
	ErrUnknownLength = errors.New("printf: unknown length modifier")

	// ErrUnsupported indicates a grammatically valid specification using a
	// feature this package deliberately does not implement, such as the
	// grouping (') or alternative-digits (I) flags.
	ErrUnsupported = errors.New("printf: feature not implemented")

	// ErrBadType indicates an argument whose kind does not match the
	// conversion, e.g. a byte string passed to %d.
	ErrBadType = errors.New("printf: argument type not compatible with conversion")

	// ErrInvalidCombination indicates a flag that is meaningless for the
	// chosen conversion, e.g. zero padding with %s. C printf leaves these
	// combinations undefined; this package rejects them.
	ErrInvalidCombination = errors.New("printf: invalid flag and conversion combination")

	// ErrOverflow indicates an integer argument outside the range implied by
	// the specification's length modifier.
	ErrOverflow = errors.New("printf: value out of range for length modifier")

	// ErrNotEnoughArgs indicates the template requested more conversions
	// than arguments were supplied.
	ErrNotEnoughArgs = errors.New("printf: not enough arguments")

	// ErrExcessArgs indicates the argument list was not fully consumed.
	// Formatting has completed and all output has been written when this is
	// returned; callers wanting printf-like tolerance may ignore it.
	ErrExcessArgs = errors.New("printf: format did not use all arguments")

	// ErrSink wraps an error returned by the output sink. The sink's own
	// error remains reachable through errors.Is and errors.As.
	ErrSink = errors.New("printf: sink write failed")
)
