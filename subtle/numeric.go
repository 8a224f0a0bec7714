// Package subtle provides the low-level radix conversion used by the shortuuid package.
// It works on raw digit arrays and knows nothing about symbols or UUIDs.
// It should not be used directly by most users; instead use the high-level APIs in the parent package.
package subtle

import (
	"errors"
	"fmt"
)

// MaxBase bounds both radices so that rem*fromBase+digit fits in a 64-bit int.
const MaxBase = 1<<31 - 1

var (
	// ErrInvalidBase is returned when a radix is outside [2, MaxBase].
	ErrInvalidBase = errors.New("invalid base")
	// ErrInvalidDigit is returned when a digit is outside [0, fromBase).
	ErrInvalidDigit = errors.New("invalid digit")
)

// ConvertDigits re-renders the number held in digits (base fromBase, most significant
// digit first) in base toBase, most significant digit first.
//
// The conversion is repeated long division by toBase over the digit array. Each pass
// leaves its quotient in the front of digits, so the input slice is used as workspace
// and is clobbered. Zero, including an empty input, yields the single digit 0.
//
// Thread safety: ConvertDigits holds no state; callers must not share the digits slice.
func ConvertDigits(digits []int, fromBase, toBase int) ([]int, error) {
	if err := checkBase(fromBase); err != nil {
		return nil, fmt.Errorf("source %w", err)
	}
	if err := checkBase(toBase); err != nil {
		return nil, fmt.Errorf("target %w", err)
	}
	for i, d := range digits {
		if d < 0 || d >= fromBase {
			return nil, fmt.Errorf("%w: %d at position %d for base %d", ErrInvalidDigit, d, i, fromBase)
		}
	}

	// Output digits are produced least significant first; collect and reverse once.
	out := make([]int, 0, estimateLen(len(digits), fromBase, toBase))
	length := len(digits)
	for {
		rem := 0
		newLen := 0
		for i := 0; i < length; i++ {
			rem = rem*fromBase + digits[i]
			if rem >= toBase {
				digits[newLen] = rem / toBase
				rem %= toBase
				newLen++
			} else if newLen > 0 {
				digits[newLen] = 0
				newLen++
			}
		}
		length = newLen
		out = append(out, rem)
		if length == 0 {
			break
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func checkBase(base int) error {
	if base < 2 || base > MaxBase {
		return fmt.Errorf("%w: %d (must be 2..%d)", ErrInvalidBase, base, MaxBase)
	}
	return nil
}

// estimateLen returns an upper-ish bound on the number of output digits, used only
// as a capacity hint: n * ceil(bits(fromBase) / floor-bits(toBase)).
func estimateLen(n, fromBase, toBase int) int {
	if n == 0 {
		return 1
	}
	from := bitLength(fromBase - 1)
	to := bitLength(toBase) - 1
	if to < 1 {
		to = 1
	}
	return n*((from+to-1)/to) + 1
}

// bitLength returns the number of bits needed to represent v.
func bitLength(v int) int {
	if v <= 0 {
		return 1
	}
	bits := 0
	for ; v > 0; v >>= 1 {
		bits++
	}
	return bits
}
