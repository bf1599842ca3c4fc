package game

import "fmt"

type MoveKind uint8

const (
	// SowMove plays one card from the mover's hand face-up into a field.
	SowMove MoveKind = iota
	// HarvestMove plays one card from the mover's hand to collect a set of
	// field cards into the mover's harvest pile.
	HarvestMove
)

// CompactMove is a candidate action expressed purely as bitset operations
// on a CompactState. It is an immutable, equality-comparable value and
// carries no reference to the state it was generated from.
type CompactMove struct {
	Kind  MoveKind
	Field uint8

	// PlayCard is the single-bit mask of the hand card being played.
	PlayCard Bitset

	// Targets is the mask of field cards collected by a harvest. Zero for
	// a sow.
	Targets Bitset
}

func (m CompactMove) String() string {
	if m.Kind == SowMove {
		return fmt.Sprintf("sow(field=%d card=%#x)", m.Field, uint64(m.PlayCard))
	}
	return fmt.Sprintf("harvest(field=%d card=%#x targets=%#x)", m.Field, uint64(m.PlayCard), uint64(m.Targets))
}
