package shortuuid

import (
	"fmt"

	"github.com/vdparikh/shortuuid/subtle"
)

// Converter re-renders values written in one alphabet into another alphabet,
// preserving the non-negative integer they denote.
//
// A Converter holds only its two alphabets and is safe for concurrent use.
type Converter struct {
	from Alphabet
	to   Alphabet
}

// NewConverter returns a Converter from alphabet from to alphabet to.
func NewConverter(from, to Alphabet) *Converter {
	return &Converter{from: from, to: to}
}

// Convert returns value, read as a number in the source alphabet, written in the
// target alphabet, most significant symbol first.
//
// When both alphabets are equal the value is returned verbatim, leading zero symbols
// included. Otherwise leading zero symbols do not survive, and zero is written as a
// single zero symbol. A symbol outside the source alphabet fails with
// ErrIncompatibleValue before any conversion work is done.
func (c *Converter) Convert(value string) (string, error) {
	if !c.from.valid() {
		return "", fmt.Errorf("source %w: base %d", ErrInvalidAlphabet, c.from.Base())
	}
	if !c.to.valid() {
		return "", fmt.Errorf("target %w: base %d", ErrInvalidAlphabet, c.to.Base())
	}

	if c.from.Equal(c.to) {
		return value, nil
	}

	digits, err := stringToDigits(value, c.from)
	if err != nil {
		return "", err
	}

	converted, err := subtle.ConvertDigits(digits, c.from.Base(), c.to.Base())
	if err != nil {
		return "", fmt.Errorf("failed to convert from base %d to base %d: %w", c.from.Base(), c.to.Base(), err)
	}

	return digitsToString(converted, c.to), nil
}

// Convert is shorthand for NewConverter(from, to).Convert(value).
func Convert(value string, from, to Alphabet) (string, error) {
	return NewConverter(from, to).Convert(value)
}
