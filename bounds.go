package acorn

import "math"

// numWidth is the output width a draw is destined for. It only matters at the
// digit length where a type's maximum falls short of the full decimal bound:
// there the upper bound is clamped to the type maximum so rejection converges
// instead of looping on unrepresentable values.
type numWidth int

const (
	w8 numWidth = iota
	w16
	w32
	w64
	w128
)

// pow10[l] is 10^l for l in [0, 38].
var pow10 [39]Uint128

func init() {
	pow10[0] = one
	for i := 1; i < len(pow10); i++ {
		pow10[i] = pow10[i-1].mul10()
	}
}

func (x Uint128) mul10() Uint128 {
	return x.lsh(3).Add(x.lsh(1))
}

// rangeForLen maps a decimal digit length in [1, 39] to the inclusive range
// of values with that many digits. Length 1 includes zero; length 39 runs to
// MaxUint128 rather than the unrepresentable 10^39 - 1. Lengths outside
// [1, 39] violate the calling contract: public entry points clamp first.
func rangeForLen(length int, w numWidth) (lo, hi Uint128) {
	if length < 1 || length > 39 {
		panic("acorn: digit length out of range [1, 39]")
	}
	if length > 1 {
		lo = pow10[length-1]
	}
	if length == 39 {
		hi = MaxUint128
	} else {
		hi = pow10[length].Sub(one)
	}
	switch {
	case w == w8 && length == 3:
		hi = U128(math.MaxUint8)
	case w == w16 && length == 5:
		hi = U128(math.MaxUint16)
	case w == w32 && length == 10:
		hi = U128(math.MaxUint32)
	case w == w64 && length == 20:
		hi = U128(math.MaxUint64)
	}
	return lo, hi
}
