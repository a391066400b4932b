// Package eccerr defines the typed error kinds the core scalar-multiplication
// and ECDH packages may surface.
package eccerr

import "errors"

// ErrorKind identifies a specific kind of error.
type ErrorKind string

// Error satisfies the error interface and prints human-readable errors for
// specific error kinds.
func (e ErrorKind) Error() string {
	return string(e)
}

// These constants are used to identify a specific Error.
const (
	// ErrInvalidInput is returned when a scalar string, precomputed table, or
	// key-derivation argument fails a precondition: an empty or non-hex
	// scalar string, a table of the wrong length, or a nil shared secret or
	// non-positive key length. Point coordinates and table entries are not
	// validated.
	ErrInvalidInput = ErrorKind("ErrInvalidInput")

	// ErrInverseDoesNotExist is returned when ModInverse is asked to invert a
	// value that shares a factor with the modulus. For the prime moduli used
	// here this can only happen for a zero input, but the check is kept as a
	// defensive backstop.
	ErrInverseDoesNotExist = ErrorKind("ErrInverseDoesNotExist")

	// ErrInconsistentResult is returned by the ECDH driver when the two
	// independently computed shared points disagree, which indicates a bug
	// in the underlying arithmetic rather than a bad caller input.
	ErrInconsistentResult = ErrorKind("ErrInconsistentResult")
)

// Error identifies an error related to scalar multiplication or ECDH
// agreement. It carries a kind (for caller-side matching via errors.Is) and a
// description (for human-readable output).
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints a human-readable message.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying error kind so errors.Is/errors.As work
// against both Error values and bare ErrorKind values.
func (e Error) Unwrap() error {
	return e.Err
}

// Is implements the interface used by errors.Is to allow Error values to be
// compared directly to an ErrorKind.
func (e Error) Is(target error) bool {
	var kind ErrorKind
	if errors.As(target, &kind) {
		return e.Err == kind
	}
	var other Error
	if errors.As(target, &other) {
		return e.Err == other.Err
	}
	return false
}

// New creates an Error from a kind and a description.
func New(kind ErrorKind, description string) Error {
	return Error{Err: kind, Description: description}
}
