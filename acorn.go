// Package acorn implements the ACORN (Additive Congruential Random Number)
// generator: a deterministic, reproducible source of 128-bit unsigned values
// and bounded draws derived from them. The modulus is fixed at 2^120 and the
// sequence is a pure function of the order and seed, so the same pair always
// replays the same stream. The output is not cryptographically secure, and a
// generator must not be shared between goroutines; independent sequences each
// get their own instance.
package acorn

// modMask reduces a value modulo 2^120. Sums of two reduced values stay below
// 2^121, so a single mask after each add is a full reduction.
var modMask = Uint128{1<<56 - 1, ^uint64(0)}

// warmup is the number of construction-time draws discarded so the state has
// wrapped past the modulus even for the smallest order and seed. The first
// few raw outputs of a freshly seeded buffer carry visible short-cycle
// artifacts; 67 steps clears them.
const warmup = 67

// Order is the recurrence depth of a generator: the length of its history
// buffer. Immutable once created.
type Order struct {
	k int
}

// NewOrder clamps n to [45, 65535] rather than rejecting it.
func NewOrder(n int) Order {
	if n < 45 {
		n = 45
	}
	if n > 65535 {
		n = 65535
	}
	return Order{n}
}

// Int returns the clamped order value.
func (o Order) Int() int {
	return o.k
}

// Seed is the initial state value of a generator. Immutable once created.
type Seed struct {
	v Uint128
}

// NewSeed clamps v to [1000000, MaxUint128] rather than rejecting it.
func NewSeed(v Uint128) Seed {
	if v.Cmp(U128(1000000)) < 0 {
		v = U128(1000000)
	}
	return Seed{v}
}

// NewSeed64 is NewSeed for a 64-bit value.
func NewSeed64(v uint64) Seed {
	return NewSeed(U128(v))
}

// Uint128 returns the clamped seed value.
func (s Seed) Uint128() Uint128 {
	return s.v
}

// SpanStrategy selects how Between draws from a range whose endpoints have
// different decimal digit lengths. The two strategies produce different
// distributions; see their constants.
type SpanStrategy int

const (
	// SpanDirect runs one power-of-two rejection pass over the whole range.
	// Draws land in proportion to how much of the range each digit length
	// covers. This is the default.
	SpanDirect SpanStrategy = iota

	// SpanBalanced draws one candidate per decimal digit length the range
	// spans, then picks among the candidates by coin-flip elimination, giving
	// every digit length equal weight regardless of how little of the range
	// it covers.
	SpanBalanced
)

// Option configures a generator at construction.
type Option func(*Acorn)

// WithSpanStrategy sets the strategy Between uses for ranges spanning
// several decimal digit lengths.
func WithSpanStrategy(s SpanStrategy) Option {
	return func(a *Acorn) {
		a.span = s
	}
}

// Acorn is an ACORN generator. Every draw mutates the history buffer, so a
// value must be constructed per logical sequence and never used concurrently.
type Acorn struct {
	k       int
	history []Uint128
	span    SpanStrategy
}

// New creates a generator from an order and a seed and warms it up. An even
// seed is bumped to the next odd value and reduced modulo 2^120 before it is
// replicated across the history buffer.
func New(order Order, seed Seed, opts ...Option) *Acorn {
	s := seed.v
	if s.Lo&1 == 0 {
		s = s.Add(one)
	}
	s = s.and(modMask)

	a := &Acorn{
		k:       order.k,
		history: make([]Uint128, order.k),
	}
	for i := range a.history {
		a.history[i] = s
	}
	for _, opt := range opts {
		opt(a)
	}
	for i := 0; i < warmup; i++ {
		a.Next()
	}
	return a
}

// Next advances the recurrence one step and returns the new head value,
// uniformly distributed in [0, 2^120). Every history element accumulates its
// lower neighbour modulo 2^120; the fold order is fixed and must not change,
// since reproducibility of the stream depends on it bit for bit.
func (a *Acorn) Next() Uint128 {
	h := a.history
	for i := 1; i < len(h); i++ {
		h[i] = h[i].Add(h[i-1]).and(modMask)
	}
	return h[len(h)-1]
}

// flip is one fair coin: the top bit of a raw draw. The low bit of an
// additive generator over a power-of-two modulus is strongly serially
// correlated, so the coin comes from the high end of the word.
func (a *Acorn) flip() uint64 {
	return a.Next().Hi >> 55
}
