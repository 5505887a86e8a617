package acorn

import (
	"fmt"
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit words.
// The zero value is zero. Values are immutable; operations return new values.
type Uint128 struct {
	Hi, Lo uint64
}

// MaxUint128 is the largest representable Uint128, 2^128 - 1.
var MaxUint128 = Uint128{^uint64(0), ^uint64(0)}

var (
	one    = Uint128{0, 1}
	pow127 = Uint128{1 << 63, 0}
)

// U128 returns v widened to a Uint128.
func U128(v uint64) Uint128 {
	return Uint128{0, v}
}

// NewUint128 assembles a Uint128 from its high and low 64-bit words.
func NewUint128(hi, lo uint64) Uint128 {
	return Uint128{hi, lo}
}

// ParseUint128 parses a base-10 unsigned integer of up to 39 digits.
func ParseUint128(s string) (Uint128, error) {
	if s == "" {
		return Uint128{}, fmt.Errorf("parse uint128: empty string")
	}
	var x Uint128
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint128{}, fmt.Errorf("parse uint128 %q: bad digit %q", s, c)
		}
		h1, l1 := bits.Mul64(x.Lo, 10)
		hh, hl := bits.Mul64(x.Hi, 10)
		hiw, carry := bits.Add64(hl, h1, 0)
		if hh != 0 || carry != 0 {
			return Uint128{}, fmt.Errorf("parse uint128 %q: overflow", s)
		}
		lo, c1 := bits.Add64(l1, uint64(c-'0'), 0)
		hi, c2 := bits.Add64(hiw, 0, c1)
		if c2 != 0 {
			return Uint128{}, fmt.Errorf("parse uint128 %q: overflow", s)
		}
		x = Uint128{hi, lo}
	}
	return x, nil
}

// Add returns x + y, wrapping on overflow.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{hi, lo}
}

// Sub returns x - y, wrapping on underflow.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{hi, lo}
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to or
// greater than y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// IsZero reports whether x is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Uint64 returns the low 64 bits of x.
func (x Uint128) Uint64() uint64 {
	return x.Lo
}

// String formats x in base 10.
func (x Uint128) String() string {
	if x.Hi == 0 {
		return strconv.FormatUint(x.Lo, 10)
	}
	var buf [39]byte
	i := len(buf)
	for !x.IsZero() {
		var r uint64
		x, r = x.divmod10()
		i--
		buf[i] = byte('0' + r)
	}
	return string(buf[i:])
}

func (x Uint128) divmod10() (Uint128, uint64) {
	hi, r := x.Hi/10, x.Hi%10
	lo, rem := bits.Div64(r, x.Lo, 10)
	return Uint128{hi, lo}, rem
}

func (x Uint128) and(y Uint128) Uint128 {
	return Uint128{x.Hi & y.Hi, x.Lo & y.Lo}
}

func (x Uint128) bitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

func (x Uint128) isPow2() bool {
	return bits.OnesCount64(x.Hi)+bits.OnesCount64(x.Lo) == 1
}

func (x Uint128) lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return x
	case n >= 64:
		return Uint128{x.Lo << (n - 64), 0}
	}
	return Uint128{x.Hi<<n | x.Lo>>(64-n), x.Lo << n}
}

// nextPow2 returns the smallest power of two >= x. The caller keeps x below
// 2^127 so the shift cannot overflow.
func (x Uint128) nextPow2() Uint128 {
	if x.isPow2() {
		return x
	}
	return one.lsh(uint(x.bitLen()))
}

// digits returns the number of base-10 digits of x; zero counts as one digit.
func (x Uint128) digits() int {
	for l := 1; l < 39; l++ {
		if x.Cmp(pow10[l]) < 0 {
			return l
		}
	}
	return 39
}
