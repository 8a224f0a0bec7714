package shortuuid

import (
	"fmt"
	"strings"
)

// stringToDigits maps each symbol of s to its digit value in alphabet, keeping order.
// It fails with ErrIncompatibleValue on the first symbol the alphabet does not contain.
func stringToDigits(s string, alphabet Alphabet) ([]int, error) {
	result := make([]int, 0, len(s))
	pos := 0
	for _, char := range s {
		idx, ok := alphabet.ValueOf(char)
		if !ok {
			return nil, fmt.Errorf("%w: symbol %q at position %d is not in base %d alphabet", ErrIncompatibleValue, char, pos, alphabet.Base())
		}
		result = append(result, idx)
		pos++
	}
	return result, nil
}

// digitsToString maps digit values back to symbols of alphabet.
func digitsToString(digits []int, alphabet Alphabet) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteRune(alphabet.SymbolAt(d))
	}
	return sb.String()
}
