package props

import (
	"math/bits"
)

// Bitmask is a 128-bit bitmask used for tracking component presence.
// It supports up to 128 unique component types per world.
type Bitmask [2]uint64

// Set sets the bit at the given index.
func (m *Bitmask) Set(id ComponentID) {
	m[id/64] |= 1 << (id % 64)
}

// Clear clears the bit at the given index.
func (m *Bitmask) Clear(id ComponentID) {
	m[id/64] &^= 1 << (id % 64)
}

// Has returns true if the bit at the given index is set.
func (m Bitmask) Has(id ComponentID) bool {
	return m[id/64]&(1<<(id%64)) != 0
}

// IsZero returns true if no bits are set.
func (m Bitmask) IsZero() bool {
	return m[0] == 0 && m[1] == 0
}

// Count returns the number of bits set.
func (m Bitmask) Count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1])
}

// Each calls fn for every set bit in ascending order.
func (m Bitmask) Each(fn func(id ComponentID)) {
	for word := range m {
		w := m[word]
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			fn(ComponentID(word*64 + bit))
			w &= w - 1
		}
	}
}
