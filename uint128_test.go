package acorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	for _, s := range []string{
		"0",
		"9",
		"1000000",
		"18446744073709551615",
		"18446744073709551616",
		"707329019109624976857103382873185628",
		"340282366920938463463374607431768211455",
	} {
		v, err := ParseUint128(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}

	v, err := ParseUint128("18446744073709551616")
	require.NoError(t, err)
	assert.Equal(t, NewUint128(1, 0), v)
}

func TestParseRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"12a",
		"-1",
		"340282366920938463463374607431768211456", // max + 1
		"9999999999999999999999999999999999999999",
	} {
		_, err := ParseUint128(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestAddSubWrap(t *testing.T) {
	assert.True(t, MaxUint128.Add(one).IsZero())
	assert.Equal(t, MaxUint128, Uint128{}.Sub(one))
	assert.Equal(t, NewUint128(1, 0), U128(^uint64(0)).Add(one))
	assert.Equal(t, U128(^uint64(0)), NewUint128(1, 0).Sub(one))
}

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, U128(7).Cmp(U128(7)))
	assert.Equal(t, -1, U128(7).Cmp(U128(8)))
	assert.Equal(t, 1, U128(8).Cmp(U128(7)))
	assert.Equal(t, -1, U128(^uint64(0)).Cmp(NewUint128(1, 0)))
	assert.Equal(t, 1, MaxUint128.Cmp(pow127))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 1, Uint128{}.digits())
	assert.Equal(t, 1, U128(9).digits())
	assert.Equal(t, 2, U128(10).digits())
	assert.Equal(t, 3, U128(999).digits())
	assert.Equal(t, 4, U128(1000).digits())
	assert.Equal(t, 38, pow10[38].Sub(one).digits())
	assert.Equal(t, 39, pow10[38].digits())
	assert.Equal(t, 39, MaxUint128.digits())
}

func TestPow2Helpers(t *testing.T) {
	assert.True(t, one.isPow2())
	assert.True(t, U128(1024).isPow2())
	assert.True(t, pow127.isPow2())
	assert.False(t, Uint128{}.isPow2())
	assert.False(t, U128(3).isPow2())
	assert.False(t, MaxUint128.isPow2())

	assert.Equal(t, one, one.nextPow2())
	assert.Equal(t, U128(4), U128(3).nextPow2())
	assert.Equal(t, U128(1024), U128(707).nextPow2())
	assert.Equal(t, NewUint128(1, 0), U128(^uint64(0)).nextPow2())
	assert.Equal(t, pow127, pow127.Sub(one).nextPow2())
}

func TestPow10Table(t *testing.T) {
	assert.Equal(t, one, pow10[0])
	assert.Equal(t, U128(10), pow10[1])
	assert.Equal(t, U128(10_000_000_000_000_000_000), pow10[19])
	p38, err := ParseUint128("100000000000000000000000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, p38, pow10[38])
}
