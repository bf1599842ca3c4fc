package game

const (
	NumFields  = 4
	NumPlayers = 4
	NumOkus    = 4

	// StockpileSlots is the number of packed two-card stockpiles each
	// field's stockpile word can hold.
	StockpileSlots = 5
)

// Overflow bitmap layout: one bit per holder of the overflow card.
// Bits 0-3 fields, 4-7 hands, 8-10 harvest piles 0-2, 11 deck. Harvest
// pile 3 has no bit; the overflow card in that pile is a documented lossy
// case of the compact form.
const (
	overflowFieldShift   = 0
	overflowHandShift    = 4
	overflowHarvestShift = 8
	OverflowDeckBit      = uint16(1) << 11
)

func OverflowFieldBit(field uint8) (uint16, bool) {
	if field >= NumFields {
		return 0, false
	}
	return uint16(1) << (overflowFieldShift + field), true
}

func OverflowHandBit(player uint8) (uint16, bool) {
	if player >= NumPlayers {
		return 0, false
	}
	return uint16(1) << (overflowHandShift + player), true
}

// OverflowHarvestBit reports false for player 3: the bitmap budget only
// covers three of the four harvest piles.
func OverflowHarvestBit(player uint8) (uint16, bool) {
	if player >= NumPlayers-1 {
		return 0, false
	}
	return uint16(1) << (overflowHarvestShift + player), true
}

// CompactState is the bit-packed form of one full game position. It is a
// fixed-size value: copying it copies the whole state, and no field points
// into the heap. Every card's location lives in exactly one of the location
// sets (or the overflow bitmap for the overflow card); transitions must
// preserve that exclusivity.
type CompactState struct {
	FieldCards     [NumFields]Bitset
	PlayerHands    [NumPlayers]Bitset
	PlayerHarvests [NumPlayers]Bitset
	DeckRemaining  Bitset

	// Stockpiles holds five 12-bit slots per field (6 bits per card, two
	// cards per slot). A zero slot is empty.
	Stockpiles [NumFields]uint64

	// Metadata packs player/dealer/orientation/round/turn, season parity,
	// okus flags, scores, and phase. See metadata.go for the layout.
	Metadata uint64

	// OverflowLocations tracks the holder of the one card (compact id 64)
	// that does not fit the 64-bit sets.
	OverflowLocations uint16

	// Padding is reserved and always zero.
	Padding uint16
}

// CurrentPlayer reads the mover from the packed metadata.
func (s *CompactState) CurrentPlayer() uint8 {
	return UnpackMetadata(s.Metadata).CurrentPlayer
}

// locationSets returns every 64-bit location set in a fixed order, for
// exclusivity checks.
func (s *CompactState) locationSets() []Bitset {
	sets := make([]Bitset, 0, NumFields+2*NumPlayers+1)
	for f := 0; f < NumFields; f++ {
		sets = append(sets, s.FieldCards[f])
	}
	for p := 0; p < NumPlayers; p++ {
		sets = append(sets, s.PlayerHands[p])
	}
	for p := 0; p < NumPlayers; p++ {
		sets = append(sets, s.PlayerHarvests[p])
	}
	return append(sets, s.DeckRemaining)
}

// CheckExclusivity reports whether any compact id appears in more than one
// location set.
func (s *CompactState) CheckExclusivity() bool {
	var seen Bitset
	for _, set := range s.locationSets() {
		if seen&set != 0 {
			return false
		}
		seen |= set
	}
	return true
}

// AdvanceTurn returns the state with the mover rotated to the next player
// and the turn counter bumped. Transitions themselves never touch the turn
// fields; the search tree calls this when expanding.
func AdvanceTurn(s CompactState) CompactState {
	m := UnpackMetadata(s.Metadata)
	m.CurrentPlayer = (m.CurrentPlayer + 1) % NumPlayers
	if m.Turn < maxTurn {
		m.Turn++
	}
	s.Metadata = PackMetadata(m)
	return s
}

// DealToHand moves up to n cards from the deck set into the player's hand,
// lowest compact ids first. Deck exhaustion deals fewer cards and is not an
// error. The overflow card is dealt through the overflow bitmap.
func DealToHand(s CompactState, player uint8, n int) CompactState {
	if player >= NumPlayers {
		return s
	}
	for i := 0; i < n; i++ {
		id, ok := s.DeckRemaining.LowestID()
		if !ok {
			if s.OverflowLocations&OverflowDeckBit != 0 {
				handBit, _ := OverflowHandBit(player)
				s.OverflowLocations = s.OverflowLocations&^OverflowDeckBit | handBit
				continue
			}
			break
		}
		mask := Bitset(1) << id
		s.DeckRemaining = s.DeckRemaining.Without(mask)
		s.PlayerHands[player] = s.PlayerHands[player].With(mask)
	}
	return s
}
