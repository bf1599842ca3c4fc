package game

import "github.com/rs/zerolog/log"

// ToCompact converts a canonical state to its bit-packed form. The
// conversion is lossy in two documented ways: stockpiles touching the
// overflow card are dropped (see PackStockpiles), and season and okus
// ownership collapse to the parity/flag bits in metadata, from which the
// reverse conversion only approximates the canonical values.
func ToCompact(gs *GameState) CompactState {
	var cs CompactState

	for f := uint8(0); f < NumFields; f++ {
		for _, c := range gs.Fields[f].Cards {
			if c.IsOverflow() {
				bit, _ := OverflowFieldBit(f)
				cs.OverflowLocations |= bit
				continue
			}
			if mask, ok := BitOf(CompactID(c)); ok {
				cs.FieldCards[f] = cs.FieldCards[f].With(mask)
			}
		}
		word, dropped := PackStockpiles(gs.Fields[f].Stockpiles)
		if dropped > 0 {
			log.Warn().Int("dropped", dropped).Uint8("field", f).Msg("stockpiles lost in compact conversion")
		}
		cs.Stockpiles[f] = word
	}

	for p := uint8(0); p < NumPlayers; p++ {
		for _, c := range gs.Hands[p] {
			if c.IsOverflow() {
				bit, _ := OverflowHandBit(p)
				cs.OverflowLocations |= bit
				continue
			}
			if mask, ok := BitOf(CompactID(c)); ok {
				cs.PlayerHands[p] = cs.PlayerHands[p].With(mask)
			}
		}
		for _, c := range gs.Harvests[p] {
			if c.IsOverflow() {
				bit, ok := OverflowHarvestBit(p)
				if !ok {
					log.Warn().Uint8("player", p).Msg("overflow card in untracked harvest pile dropped")
					continue
				}
				cs.OverflowLocations |= bit
				continue
			}
			if mask, ok := BitOf(CompactID(c)); ok {
				cs.PlayerHarvests[p] = cs.PlayerHarvests[p].With(mask)
			}
		}
	}

	for _, c := range gs.Deck {
		if c.IsOverflow() {
			cs.OverflowLocations |= OverflowDeckBit
			continue
		}
		if mask, ok := BitOf(CompactID(c)); ok {
			cs.DeckRemaining = cs.DeckRemaining.With(mask)
		}
	}

	cs.Metadata = PackMetadata(bridgeMetadata(gs))
	return cs
}

func bridgeMetadata(gs *GameState) Metadata {
	m := Metadata{
		CurrentPlayer: uint8(clampInt(gs.CurrentPlayer, 0, NumPlayers-1)),
		Dealer:        uint8(clampInt(gs.Dealer, 0, NumPlayers-1)),
		Orientation:   uint8(clampInt(gs.Orientation, 0, 3)),
		Round:         uint8(clampInt(gs.Round, 0, maxRound)),
		Turn:          uint16(clampInt(gs.Turn, 0, maxTurn)),
		Phase:         gs.Phase,
	}
	for f := 0; f < NumFields; f++ {
		m.SeasonParity[f] = uint8(gs.Seasons[f])&1 != 0
	}
	for i := 0; i < NumOkus; i++ {
		m.OkusHeld[i] = gs.OkusOwners[i] >= 0
	}
	for p := 0; p < NumPlayers; p++ {
		m.Scores[p] = uint8(clampInt(gs.Scores[p], 0, maxScore))
	}
	return m
}

// FromCompact reconstructs a canonical state from the packed form. Seasons
// and okus ownership are approximations: a field's season is rebuilt from
// the board orientation and corrected to the stored parity bit, and a held
// okus is attributed to the current player because the compact form only
// records that it left the board. Callers must not assume bit-for-bit
// round-trip equality for those fields.
func FromCompact(cs *CompactState) *GameState {
	gs := NewGameState()
	m := UnpackMetadata(cs.Metadata)

	overflowCard, _ := CardFromCompactID(OverflowID)

	for f := uint8(0); f < NumFields; f++ {
		gs.Fields[f].Cards = cs.FieldCards[f].Cards()
		if bit, ok := OverflowFieldBit(f); ok && cs.OverflowLocations&bit != 0 {
			gs.Fields[f].Cards = append(gs.Fields[f].Cards, overflowCard)
		}
		gs.Fields[f].Stockpiles = UnpackStockpiles(cs.Stockpiles[f])
		gs.Seasons[f] = approximateSeason(m.Orientation, f, m.SeasonParity[f])
	}

	for p := uint8(0); p < NumPlayers; p++ {
		gs.Hands[p] = cs.PlayerHands[p].Cards()
		if bit, ok := OverflowHandBit(p); ok && cs.OverflowLocations&bit != 0 {
			gs.Hands[p] = append(gs.Hands[p], overflowCard)
		}
		gs.Harvests[p] = cs.PlayerHarvests[p].Cards()
		if bit, ok := OverflowHarvestBit(p); ok && cs.OverflowLocations&bit != 0 {
			gs.Harvests[p] = append(gs.Harvests[p], overflowCard)
		}
	}

	gs.Deck = cs.DeckRemaining.Cards()
	if cs.OverflowLocations&OverflowDeckBit != 0 {
		gs.Deck = append(gs.Deck, overflowCard)
	}

	gs.CurrentPlayer = int(m.CurrentPlayer)
	gs.Dealer = int(m.Dealer)
	gs.Orientation = int(m.Orientation)
	gs.Round = int(m.Round)
	gs.Turn = int(m.Turn)
	gs.Phase = m.Phase
	for p := 0; p < NumPlayers; p++ {
		gs.Scores[p] = int(m.Scores[p])
	}
	for i := 0; i < NumOkus; i++ {
		if m.OkusHeld[i] {
			gs.OkusOwners[i] = int(m.CurrentPlayer)
		}
	}
	return gs
}

// approximateSeason derives a field's season from the board orientation,
// then flips within the season pair if the stored parity disagrees.
func approximateSeason(orientation, field uint8, parity bool) Season {
	s := Season((orientation + field) & 3)
	if (uint8(s)&1 != 0) != parity {
		s ^= 1
	}
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
