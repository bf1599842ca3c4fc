package game

// Apply plays a candidate move against a compact state and returns the
// resulting state. It is pure and all-or-nothing: when any precondition
// fails (unknown mover, card no longer in hand, targets no longer in the
// field) it reports false and the input state is returned unchanged, never
// partially mutated. Apply does not advance the turn; see AdvanceTurn.
func Apply(s CompactState, m CompactMove) (CompactState, bool) {
	player := s.CurrentPlayer()
	if player >= NumPlayers || m.Field >= NumFields {
		return s, false
	}
	if m.PlayCard == 0 || !s.PlayerHands[player].Contains(m.PlayCard) {
		return s, false
	}

	switch m.Kind {
	case SowMove:
		s.PlayerHands[player] = s.PlayerHands[player].Without(m.PlayCard)
		s.FieldCards[m.Field] = s.FieldCards[m.Field].With(m.PlayCard)
		return s, true
	case HarvestMove:
		if !s.FieldCards[m.Field].Contains(m.Targets) {
			return s, false
		}
		s.PlayerHands[player] = s.PlayerHands[player].Without(m.PlayCard)
		s.FieldCards[m.Field] = s.FieldCards[m.Field].Without(m.Targets)
		s.PlayerHarvests[player] = s.PlayerHarvests[player].With(m.PlayCard | m.Targets)
		return s, true
	}
	return s, false
}
