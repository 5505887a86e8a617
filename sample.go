package acorn

// fromZero returns a value uniformly distributed in [0, width]. If the span
// width+1 is an exact power of two a single draw reduced by the span mask is
// already exact, because the raw output space 2^120 is itself a power of two.
// Otherwise the span is widened to the next power of two, capped at 2^127
// when the span exceeds it or wraps past 2^128, and out-of-range draws are
// rejected. Retries are unbounded but each draw accepts with probability
// above one half.
func (a *Acorn) fromZero(width Uint128) Uint128 {
	span := width.Add(one)
	var mask Uint128
	switch {
	case span.IsZero() || pow127.Cmp(span) < 0:
		mask = pow127.Sub(one)
	case span.isPow2():
		return a.Next().and(span.Sub(one))
	default:
		mask = span.nextPow2().Sub(one)
	}
	n := a.Next().and(mask)
	for width.Cmp(n) < 0 {
		n = a.Next().and(mask)
	}
	return n
}

func (a *Acorn) betweenDirect(lo, hi Uint128) Uint128 {
	return a.fromZero(hi.Sub(lo)).Add(lo)
}

// Between returns a value uniformly distributed in the inclusive range
// [lo, hi]. The caller must guarantee lo <= hi; the precondition is not
// checked. For ranges spanning several decimal digit lengths the configured
// SpanStrategy decides how digit lengths are weighted.
func (a *Acorn) Between(lo, hi Uint128) Uint128 {
	if a.span == SpanBalanced {
		return a.betweenBalanced(lo, hi)
	}
	return a.betweenDirect(lo, hi)
}

// betweenBalanced draws one candidate from each digit length's slice of the
// range, then lets pickIndex choose the length class. A single rejection pass
// over the whole span would under-sample short lengths, which cover
// exponentially less of it.
func (a *Acorn) betweenBalanced(lo, hi Uint128) Uint128 {
	dlo, dhi := lo.digits(), hi.digits()
	if dlo == dhi {
		return a.betweenDirect(lo, hi)
	}
	cands := make([]Uint128, 0, dhi-dlo+1)
	for l := dlo; l <= dhi; l++ {
		blo, bhi := rangeForLen(l, w128)
		if blo.Cmp(lo) < 0 {
			blo = lo
		}
		if hi.Cmp(bhi) < 0 {
			bhi = hi
		}
		cands = append(cands, a.betweenDirect(blo, bhi))
	}
	return cands[a.pickIndex(len(cands))]
}

// pickIndex selects one index in [0, n) with exactly uniform probability
// using only fair coin flips. Each round flips one coin per live index;
// rounds where every coin agrees are discarded, otherwise the indices that
// flipped heads are eliminated. n == 1 returns immediately with no draws.
func (a *Acorn) pickIndex(n int) int {
	if n < 2 {
		return 0
	}
	live := make([]int, n)
	for i := range live {
		live[i] = i
	}
	flips := make([]uint64, n)
	for len(live) > 1 {
		same := true
		for i := range live {
			flips[i] = a.flip()
			if flips[i] != flips[0] {
				same = false
			}
		}
		if same {
			continue
		}
		keep := live[:0]
		for i, idx := range live {
			if flips[i] == 0 {
				keep = append(keep, idx)
			}
		}
		live = keep
	}
	return live[0]
}

func (a *Acorn) fixedLen(length int, w numWidth) Uint128 {
	if length < 1 {
		length = 1
	}
	if length > 39 {
		length = 39
	}
	lo, hi := rangeForLen(length, w)
	return a.betweenDirect(lo, hi)
}

// FixedLen returns a value with the given number of decimal digits. The
// length is clamped to [1, 39]; length 1 may return zero and length 39 covers
// [10^38, MaxUint128].
func (a *Acorn) FixedLen(length int) Uint128 {
	return a.fixedLen(length, w128)
}
