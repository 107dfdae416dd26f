package stext

import "errors"

// Faults of this package are programming errors, not data errors: a grammar
// implementation violating the Processor contract, or an index pointing
// outside the lean text. They are signalled synchronously by panicking with
// one of the sentinel errors below (possibly wrapped with position
// information), never by corrupting the conversion silently.
var (
	// ErrMissingOverride is the panic value raised when a Processor declares
	// a positive specials count but relies on the default implementations of
	// IndexOfSpecial or ProcessSpecial.
	ErrMissingOverride = errors.New("stext: processor with specials count > 0 must override IndexOfSpecial and ProcessSpecial")

	// ErrIndexOutOfRange is the panic value raised when a character position
	// handed to one of the Context primitives lies outside the lean text.
	// Positions are never clamped, as clamping would corrupt mark positions.
	ErrIndexOutOfRange = errors.New("stext: position outside of lean text")

	// ErrMarkOrder is the panic value raised when marks are inserted with
	// decreasing positions. Mark positions must be non-decreasing over one
	// conversion; inserting the same position twice is allowed and collapses
	// to a single mark.
	ErrMarkOrder = errors.New("stext: mark positions must be inserted in ascending order")

	// ErrBadCaseNumber is the panic value raised when a special-case number
	// leaves the interval [1 … specials count], either as a continuation
	// recorded by ProcessSpecial or as a state installed by a caller.
	ErrBadCaseNumber = errors.New("stext: special-case number outside of declared range")
)
