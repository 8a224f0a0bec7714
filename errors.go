package shortuuid

import "errors"

var (
	// ErrIncompatibleValue is returned when a value contains a symbol that is not part
	// of the alphabet it is declared to be written in.
	ErrIncompatibleValue = errors.New("value incompatible with alphabet")

	// ErrBadAlphabet is returned by Expand when the converted value does not form a
	// valid UUID. This usually means the value was shortened with another alphabet.
	ErrBadAlphabet = errors.New("bad alphabet")

	// ErrInvalidAlphabet is returned when an alphabet cannot define a numeral system:
	// fewer than two symbols, or a symbol that appears more than once.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)
