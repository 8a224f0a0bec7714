// Package shortuuid renders UUIDs as compact strings over an arbitrary alphabet and
// parses them back.
//
// A UUID is taken as its 32 hexadecimal digits and converted, as one big number, to
// the base defined by the alphabet. The conversion is plain long division over a digit
// array (see the subtle package), so no 128-bit integer type is needed and any
// alphabet of two or more distinct symbols works.
//
// Example usage:
//
//	id := uuid.New()
//
//	short, err := shortuuid.Shorten(id, shortuuid.Base62)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// short might be "5wbwf6yUxVBcr48AMbz9cb" (22 symbols instead of 36)
//
//	back, err := shortuuid.Expand(short, shortuuid.Base62)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// back == id
//
// Shortened values are not fixed width: leading zero digits are dropped. PadShort
// gives a fixed width; padded values then sort in numeric order provided the
// alphabet's symbols are themselves in ascending order (Base10, Base16, Base36).
package shortuuid

import (
	"fmt"

	"github.com/google/uuid"
)

// dashedLen is the length of the canonical 8-4-4-4-12 form.
const dashedLen = 36

// Shortener converts UUIDs to and from their short form in one alphabet.
type Shortener interface {
	// Shorten returns the short form of u.
	Shorten(u uuid.UUID) (string, error)

	// Expand parses a short form back into the UUID it was made from.
	// It is the inverse of Shorten for the same alphabet.
	Expand(short string) (uuid.UUID, error)
}

// Encoder is a Shortener bound to a single alphabet. It is safe for concurrent use.
type Encoder struct {
	alphabet Alphabet
}

// Default shortens with Base62.
var Default = NewEncoder(Base62)

var _ Shortener = (*Encoder)(nil)

// NewEncoder returns an Encoder for alphabet a.
func NewEncoder(a Alphabet) *Encoder {
	return &Encoder{alphabet: a}
}

// Alphabet returns the alphabet e writes short forms in.
func (e *Encoder) Alphabet() Alphabet {
	return e.alphabet
}

func (e *Encoder) Shorten(u uuid.UUID) (string, error) {
	return Shorten(u, e.alphabet)
}

func (e *Encoder) Expand(short string) (uuid.UUID, error) {
	return Expand(short, e.alphabet)
}

// Shorten returns u written in alphabet a, most significant symbol first.
func Shorten(u uuid.UUID, a Alphabet) (string, error) {
	short, err := Convert(Undashed(u), Base16, a)
	if err != nil {
		return "", fmt.Errorf("failed to shorten %s: %w", u, err)
	}
	return short, nil
}

// Expand parses short, written in alphabet a, back into a UUID.
//
// A symbol outside a fails with ErrIncompatibleValue. A value that does not convert
// to a well-formed UUID fails with ErrBadAlphabet; this is typically a value that was
// shortened with a different alphabet. A value too large for 128 bits keeps only its
// low 128 bits.
func Expand(short string, a Alphabet) (uuid.UUID, error) {
	hexDigits, err := Convert(short, a, Base16)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to expand %q: %w", short, err)
	}

	canonical := InsertDashes(LeftPad(hexDigits, undashedLen, Base16.SymbolAt(0)))
	if len(canonical) != dashedLen {
		return uuid.Nil, fmt.Errorf("%w: %q does not form a UUID", ErrBadAlphabet, short)
	}
	u, err := uuid.Parse(canonical)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q does not form a UUID: %v", ErrBadAlphabet, short, err)
	}
	return u, nil
}

// NewShort returns a new random (version 4) UUID in its short form.
func NewShort(a Alphabet) (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return Shorten(u, a)
}

// NewShortV7 returns a new time-ordered (version 7) UUID in its short form.
// Pass the result through PadShort if values must sort by creation time.
func NewShortV7(a Alphabet) (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return Shorten(u, a)
}

// MaxLen returns the longest short form alphabet a can produce, which is the length
// of the all-ones UUID.
func MaxLen(a Alphabet) (int, error) {
	short, err := Shorten(uuid.Max, a)
	if err != nil {
		return 0, err
	}
	return len([]rune(short)), nil
}

// PadShort left-pads a short form with the zero symbol of a up to MaxLen(a), so that
// padded values of one alphabet have a fixed width. Padding does not change the
// value: Expand accepts padded and unpadded forms alike.
func PadShort(short string, a Alphabet) (string, error) {
	n, err := MaxLen(a)
	if err != nil {
		return "", err
	}
	if len([]rune(short)) >= n {
		return short, nil
	}
	return LeftPad(short, n, a.SymbolAt(0)), nil
}
