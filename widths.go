package acorn

import "math"

// Width-narrowed draws: each clamps the digit length to the type's decimal
// capacity, draws with the matching bound clamp, redraws on the rare result
// past the type maximum and truncates down.

// FixedLenUint8 returns a uint8 with the given number of decimal digits,
// clamped to [1, 3].
func (a *Acorn) FixedLenUint8(length int) uint8 {
	if length < 1 {
		length = 1
	}
	if length > 3 {
		length = 3
	}
	n := a.fixedLen(length, w8)
	for U128(math.MaxUint8).Cmp(n) < 0 {
		n = a.fixedLen(length, w8)
	}
	return uint8(n.Lo)
}

// FixedLenUint16 returns a uint16 with the given number of decimal digits,
// clamped to [1, 5].
func (a *Acorn) FixedLenUint16(length int) uint16 {
	if length < 1 {
		length = 1
	}
	if length > 5 {
		length = 5
	}
	n := a.fixedLen(length, w16)
	for U128(math.MaxUint16).Cmp(n) < 0 {
		n = a.fixedLen(length, w16)
	}
	return uint16(n.Lo)
}

// FixedLenUint32 returns a uint32 with the given number of decimal digits,
// clamped to [1, 10].
func (a *Acorn) FixedLenUint32(length int) uint32 {
	if length < 1 {
		length = 1
	}
	if length > 10 {
		length = 10
	}
	n := a.fixedLen(length, w32)
	for U128(math.MaxUint32).Cmp(n) < 0 {
		n = a.fixedLen(length, w32)
	}
	return uint32(n.Lo)
}

// FixedLenUint64 returns a uint64 with the given number of decimal digits,
// clamped to [1, 20].
func (a *Acorn) FixedLenUint64(length int) uint64 {
	if length < 1 {
		length = 1
	}
	if length > 20 {
		length = 20
	}
	n := a.fixedLen(length, w64)
	for n.Hi != 0 {
		n = a.fixedLen(length, w64)
	}
	return n.Lo
}

// BetweenUint8 returns a uint8 in the inclusive range [lo, hi].
func (a *Acorn) BetweenUint8(lo, hi uint8) uint8 {
	return uint8(a.Between(U128(uint64(lo)), U128(uint64(hi))).Lo)
}

// BetweenUint16 returns a uint16 in the inclusive range [lo, hi].
func (a *Acorn) BetweenUint16(lo, hi uint16) uint16 {
	return uint16(a.Between(U128(uint64(lo)), U128(uint64(hi))).Lo)
}

// BetweenUint32 returns a uint32 in the inclusive range [lo, hi].
func (a *Acorn) BetweenUint32(lo, hi uint32) uint32 {
	return uint32(a.Between(U128(uint64(lo)), U128(uint64(hi))).Lo)
}

// BetweenUint64 returns a uint64 in the inclusive range [lo, hi].
func (a *Acorn) BetweenUint64(lo, hi uint64) uint64 {
	return a.Between(U128(lo), U128(hi)).Lo
}
