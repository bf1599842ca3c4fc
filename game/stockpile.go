package game

import "github.com/rs/zerolog/log"

// Stockpile is one two-card pairing sitting in a field. Members are compact
// ids. Only ids 0..63 are packable: a stockpile touching the overflow card
// cannot be represented in the 6-bit member slots and is dropped on packing.
// That is a documented lossy case of the compact form, not a silent bug.
type Stockpile struct {
	A uint8
	B uint8
}

const (
	stockpileSlotBits = 12
	memberBits        = 6
	memberMask        = uint64(1)<<memberBits - 1
	slotMask          = uint64(1)<<stockpileSlotBits - 1
)

// PackStockpiles packs up to StockpileSlots pairings into one word, in
// order. A slot is empty when its 12 bits are zero, which is unambiguous:
// a real pairing never holds the same card twice, so {0,0} cannot occur.
// Pairings beyond the slot count or touching the overflow card are dropped
// and counted.
func PackStockpiles(piles []Stockpile) (word uint64, dropped int) {
	slot := 0
	for _, p := range piles {
		if p.A >= OverflowID || p.B >= OverflowID {
			log.Warn().
				Uint8("a", p.A).
				Uint8("b", p.B).
				Msg("stockpile touching overflow card dropped from compact form")
			dropped++
			continue
		}
		if slot >= StockpileSlots {
			dropped++
			continue
		}
		packed := uint64(p.A) | uint64(p.B)<<memberBits
		word |= packed << (slot * stockpileSlotBits)
		slot++
	}
	return word, dropped
}

// UnpackStockpiles expands a stockpile word back into its pairings,
// skipping empty slots.
func UnpackStockpiles(word uint64) []Stockpile {
	out := make([]Stockpile, 0, StockpileSlots)
	for slot := 0; slot < StockpileSlots; slot++ {
		packed := word >> (slot * stockpileSlotBits) & slotMask
		if packed == 0 {
			continue
		}
		out = append(out, Stockpile{
			A: uint8(packed & memberMask),
			B: uint8(packed >> memberBits & memberMask),
		})
	}
	return out
}
