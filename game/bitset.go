package game

import (
	"math/bits"

	"github.com/rs/zerolog/log"
)

// Bitset is a set of compact card ids 0..63, one bit per id. The overflow
// card (id 64) is deliberately outside its range; writers must go through
// BitOf so the rejection is explicit rather than silently aliasing bit 0.
type Bitset uint64

// BitOf returns the single-bit mask for a compact id. It reports false for
// ids a 64-bit set cannot represent (the overflow card and out-of-range
// ids); the rejection is logged and the caller is expected to skip the
// card, not abort.
func BitOf(id uint8) (Bitset, bool) {
	if id >= 64 {
		log.Warn().Uint8("id", id).Msg("compact id not representable in 64-bit set")
		return 0, false
	}
	return Bitset(1) << id, true
}

func (b Bitset) Has(id uint8) bool {
	if id >= 64 {
		return false
	}
	return b&(Bitset(1)<<id) != 0
}

// Contains reports whether every bit of mask is set in b.
func (b Bitset) Contains(mask Bitset) bool {
	return b&mask == mask
}

func (b Bitset) With(mask Bitset) Bitset    { return b | mask }
func (b Bitset) Without(mask Bitset) Bitset { return b &^ mask }

func (b Bitset) Count() int { return bits.OnesCount64(uint64(b)) }

func (b Bitset) Empty() bool { return b == 0 }

// LowestID returns the smallest set compact id, or false for the empty set.
func (b Bitset) LowestID() (uint8, bool) {
	if b == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros64(uint64(b))), true
}

// ForEach calls fn for every set id in ascending order.
func (b Bitset) ForEach(fn func(id uint8)) {
	for rest := b; rest != 0; {
		id := uint8(bits.TrailingZeros64(uint64(rest)))
		fn(id)
		rest &= rest - 1
	}
}

// Cards expands the set into card values, ascending by compact id.
func (b Bitset) Cards() []Card {
	out := make([]Card, 0, b.Count())
	b.ForEach(func(id uint8) {
		if c, ok := CardFromCompactID(id); ok {
			out = append(out, c)
		}
	})
	return out
}
