package shortuuid

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Preset alphabets. Each one is a plain symbol sequence; the base is its length.
var (
	// Base10 uses decimal digits only.
	Base10 = MustAlphabet("0123456789")
	// Base16 is lowercase hexadecimal, the alphabet UUIDs are rendered in.
	Base16 = MustAlphabet("0123456789abcdef")
	// Base36 uses all lowercase alphanumeric characters.
	Base36 = MustAlphabet("0123456789abcdefghijklmnopqrstuvwxyz")
	// Base58 is Flickr-like, leaving out look-alike characters (0, O, I and l).
	Base58 = MustAlphabet("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ")
	// Base62 uses all alphanumeric characters.
	Base62 = MustAlphabet("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	// Base64 is Base62 plus dash and underscore, safe in URLs.
	Base64 = MustAlphabet("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_")
	// Base90 uses every character that is safe inside a cookie value.
	Base90 = MustAlphabet("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ!#$%&'()*+-./:<=>?@[]^_`{|}~")
)

var presets = map[string]Alphabet{
	"base10": Base10,
	"base16": Base16,
	"hex":    Base16,
	"base36": Base36,
	"base58": Base58,
	"base62": Base62,
	"base64": Base64,
	"base90": Base90,
}

// Alphabet is an ordered set of distinct symbols defining a numeral system.
// The position of a symbol is its digit value and the number of symbols is the base.
//
// An Alphabet is immutable once built and safe for concurrent use. The zero value
// has base 0 and is rejected by every conversion.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet builds an Alphabet from the runes of symbols, in order.
// It fails with ErrInvalidAlphabet when there are fewer than two symbols or when a
// symbol is repeated; every problem found is reported.
func NewAlphabet(symbols string) (Alphabet, error) {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))

	var result *multierror.Error
	if len(runes) < 2 {
		result = multierror.Append(result, fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidAlphabet, len(runes)))
	}
	reported := make(map[rune]bool)
	for i, r := range runes {
		if first, ok := index[r]; ok {
			if !reported[r] {
				result = multierror.Append(result, fmt.Errorf("%w: symbol %q repeated at positions %d and %d", ErrInvalidAlphabet, r, first, i))
				reported[r] = true
			}
			continue
		}
		index[r] = i
	}
	if err := result.ErrorOrNil(); err != nil {
		return Alphabet{}, err
	}

	return Alphabet{symbols: runes, index: index}, nil
}

// MustAlphabet is like NewAlphabet but panics on an invalid alphabet.
// It is meant for package-level presets.
func MustAlphabet(symbols string) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// LookupAlphabet resolves a preset by name ("base62", "hex", ...), ignoring case.
// Any other name is taken as the literal symbols of a custom alphabet.
func LookupAlphabet(name string) (Alphabet, error) {
	if a, ok := presets[strings.ToLower(name)]; ok {
		return a, nil
	}
	a, err := NewAlphabet(name)
	if err != nil {
		return Alphabet{}, fmt.Errorf("alphabet %q is neither a preset nor a valid custom alphabet: %w", name, err)
	}
	return a, nil
}

// Base returns the number of symbols.
func (a Alphabet) Base() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol for digit value i. It panics if i is out of range.
func (a Alphabet) SymbolAt(i int) rune {
	return a.symbols[i]
}

// ValueOf returns the digit value of r, and false if r is not in the alphabet.
func (a Alphabet) ValueOf(r rune) (int, bool) {
	v, ok := a.index[r]
	return v, ok
}

// Contains reports whether r is one of the alphabet's symbols.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Equal reports whether both alphabets have the same symbols in the same order.
func (a Alphabet) Equal(other Alphabet) bool {
	if len(a.symbols) != len(other.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if other.symbols[i] != r {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	return string(a.symbols)
}

func (a Alphabet) valid() bool {
	return len(a.symbols) >= 2
}
