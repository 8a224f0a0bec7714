package shortuuid

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// undashedLen is the number of hex digits in a UUID.
const undashedLen = 32

var uuidGroups = regexp.MustCompile(`^(\w{8})(\w{4})(\w{4})(\w{4})(\w{12})$`)

// Undashed renders u as 32 lowercase hex digits without separators.
func Undashed(u uuid.UUID) string {
	buf := make([]byte, undashedLen)
	hex.Encode(buf, u[:])
	return string(buf)
}

// LeftPad pads s on the left with pad until it is n runes long.
// A string already longer than n is cut down to its rightmost n runes.
func LeftPad(s string, n int, pad rune) string {
	runes := []rune(s)
	if len(runes) < n {
		return strings.Repeat(string(pad), n-len(runes)) + s
	}
	return string(runes[len(runes)-n:])
}

// InsertDashes regroups a string of exactly 32 word characters into the 8-4-4-4-12
// UUID layout. Anything else, including a string that already has a dash, is
// returned unchanged.
func InsertDashes(s string) string {
	if strings.Contains(s, "-") {
		return s
	}
	m := uuidGroups.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return strings.Join(m[1:], "-")
}
