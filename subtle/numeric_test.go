package subtle

import (
	"math/big"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDigits_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		digits   []int
		fromBase int
		toBase   int
		want     []int
	}{
		{"hex ff to decimal", []int{15, 15}, 16, 10, []int{2, 5, 5}},
		{"decimal 10 to binary", []int{1, 0}, 10, 2, []int{1, 0, 1, 0}},
		{"binary to hex", []int{1, 1, 1, 1, 0, 0, 0, 1}, 2, 16, []int{15, 1}},
		{"decimal 61 to base62", []int{6, 1}, 10, 62, []int{61}},
		{"decimal 62 to base62", []int{6, 2}, 10, 62, []int{1, 0}},
		{"single digit below target base", []int{7}, 10, 16, []int{7}},
		{"interior zero quotient digits kept", []int{1, 0, 0, 0, 0}, 10, 3, []int{1, 1, 1, 2, 0, 1, 1, 0, 1}},
		{"leading zeros dropped", []int{0, 0, 4, 2}, 10, 10, []int{4, 2}},
		{"zero", []int{0, 0, 0, 0}, 16, 62, []int{0}},
		{"empty is zero", []int{}, 16, 62, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertDigits(tt.digits, tt.fromBase, tt.toBase)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertDigits_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bases := []int{2, 3, 10, 16, 36, 58, 62, 64, 90, 1000}

	for i := 0; i < 500; i++ {
		fromBase := bases[rng.IntN(len(bases))]
		toBase := bases[rng.IntN(len(bases))]
		n := 1 + rng.IntN(40)

		digits := make([]int, n)
		for j := range digits {
			digits[j] = rng.IntN(fromBase)
		}
		want := digitsOf(valueOf(digits, fromBase), toBase)

		got, err := ConvertDigits(append([]int(nil), digits...), fromBase, toBase)
		require.NoError(t, err)
		require.Equal(t, want, got, "digits=%v from=%d to=%d", digits, fromBase, toBase)
	}
}

func TestConvertDigits_RoundTrip(t *testing.T) {
	// 32 hex digits, the width of an undashed UUID.
	src := []int{15, 4, 7, 10, 12, 1, 0, 11, 5, 8, 13, 2, 4, 3, 7, 9, 10, 0, 0, 2, 6, 1, 14, 15, 3, 3, 8, 5, 12, 9, 1, 7}
	for _, base := range []int{10, 36, 58, 62, 64, 90} {
		there, err := ConvertDigits(append([]int(nil), src...), 16, base)
		require.NoError(t, err)
		back, err := ConvertDigits(there, base, 16)
		require.NoError(t, err)
		assert.Equal(t, src, back, "base %d", base)
	}
}

func TestConvertDigits_Errors(t *testing.T) {
	_, err := ConvertDigits([]int{1}, 1, 10)
	assert.ErrorIs(t, err, ErrInvalidBase)

	_, err = ConvertDigits([]int{1}, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidBase)

	_, err = ConvertDigits([]int{1}, 10, MaxBase+1)
	assert.ErrorIs(t, err, ErrInvalidBase)

	_, err = ConvertDigits([]int{1, 16}, 16, 10)
	assert.ErrorIs(t, err, ErrInvalidDigit)

	_, err = ConvertDigits([]int{-1}, 16, 10)
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestBitLength(t *testing.T) {
	assert.Equal(t, 1, bitLength(0))
	assert.Equal(t, 1, bitLength(1))
	assert.Equal(t, 4, bitLength(15))
	assert.Equal(t, 5, bitLength(16))
}

func valueOf(digits []int, base int) *big.Int {
	v := new(big.Int)
	b := big.NewInt(int64(base))
	for _, d := range digits {
		v.Mul(v, b)
		v.Add(v, big.NewInt(int64(d)))
	}
	return v
}

func digitsOf(v *big.Int, base int) []int {
	if v.Sign() == 0 {
		return []int{0}
	}
	var out []int
	b := big.NewInt(int64(base))
	rem := new(big.Int)
	tmp := new(big.Int).Set(v)
	for tmp.Sign() > 0 {
		tmp.DivMod(tmp, b, rem)
		out = append([]int{int(rem.Int64())}, out...)
	}
	return out
}

func BenchmarkConvertDigits(b *testing.B) {
	src := make([]int, 32)
	for i := range src {
		src[i] = (i * 7) % 16
	}
	work := make([]int, len(src))

	for _, base := range []int{36, 62, 90} {
		b.Run("hex_to_"+strconv.Itoa(base), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work, src)
				if _, err := ConvertDigits(work, 16, base); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
