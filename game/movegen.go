package game

// GenerateMoves enumerates candidate moves for the side to move. The set is
// a deliberate superset of the legal moves: every hand card may be sown
// into every field, and every hand card may "harvest" the entirety of any
// non-empty field. Exact combination legality is the canonical rules
// engine's job when a chosen move is finally executed; this generator only
// has to be fast and to cover every legal move.
//
// An unknown mover id yields no moves rather than an error, and an empty
// result marks the position terminal for search purposes.
func GenerateMoves(s CompactState) []CompactMove {
	player := s.CurrentPlayer()
	if player >= NumPlayers {
		return nil
	}
	hand := s.PlayerHands[player]
	if hand.Empty() {
		return nil
	}

	nonEmptyFields := 0
	for f := 0; f < NumFields; f++ {
		if !s.FieldCards[f].Empty() {
			nonEmptyFields++
		}
	}
	moves := make([]CompactMove, 0, hand.Count()*(NumFields+nonEmptyFields))

	hand.ForEach(func(id uint8) {
		card := Bitset(1) << id
		for f := uint8(0); f < NumFields; f++ {
			moves = append(moves, CompactMove{Kind: SowMove, Field: f, PlayCard: card})
		}
		for f := uint8(0); f < NumFields; f++ {
			targets := s.FieldCards[f]
			if targets.Empty() {
				continue
			}
			moves = append(moves, CompactMove{
				Kind:     HarvestMove,
				Field:    f,
				PlayCard: card,
				Targets:  targets,
			})
		}
	})
	return moves
}
