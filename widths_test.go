package acorn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedLenUint8(t *testing.T) {
	assert.Equal(t, uint8(192), newTestGen().FixedLenUint8(3))
	// Lengths past the type's capacity clamp down to it.
	assert.Equal(t, newTestGen().FixedLenUint8(3), newTestGen().FixedLenUint8(9))
}

func TestFixedLenUint16(t *testing.T) {
	assert.Equal(t, uint16(17516), newTestGen().FixedLenUint16(5))
	assert.Equal(t, newTestGen().FixedLenUint16(5), newTestGen().FixedLenUint16(6))
}

func TestFixedLenUint32(t *testing.T) {
	assert.Equal(t, uint32(1674307420), newTestGen().FixedLenUint32(10))
	assert.Equal(t, newTestGen().FixedLenUint32(10), newTestGen().FixedLenUint32(11))
}

func TestFixedLenUint64(t *testing.T) {
	assert.Equal(t, uint64(11008839946799226204), newTestGen().FixedLenUint64(20))
	assert.Equal(t, newTestGen().FixedLenUint64(20), newTestGen().FixedLenUint64(21))
}

func TestFixedLenWidthContainment(t *testing.T) {
	g := newTestGen()
	for i := 0; i < 500; i++ {
		require.GreaterOrEqual(t, g.FixedLenUint8(3), uint8(100))
		v16 := g.FixedLenUint16(5)
		require.GreaterOrEqual(t, v16, uint16(10000))
		v32 := g.FixedLenUint32(10)
		require.GreaterOrEqual(t, v32, uint32(1_000_000_000))
		v64 := g.FixedLenUint64(20)
		require.GreaterOrEqual(t, v64, uint64(10_000_000_000_000_000_000))
	}
}

func TestBetweenNarrowWidths(t *testing.T) {
	assert.Equal(t, uint16(419), newTestGen().BetweenUint16(71, 777))
	assert.Equal(t, uint32(419), newTestGen().BetweenUint32(71, 777))
	assert.Equal(t, uint64(419), newTestGen().BetweenUint64(71, 777))

	g := newTestGen()
	for i := 0; i < 2000; i++ {
		v := g.BetweenUint8(71, 255)
		require.GreaterOrEqual(t, v, uint8(71))
	}
}
