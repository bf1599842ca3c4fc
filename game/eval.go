package game

// Evaluate scores a compact position for the side to move as a value in
// [0,1], higher meaning more favorable. Implementations must be pure
// functions of the state only.
type Evaluate func(CompactState) float32

// Heuristic weights. These are tuning parameters, not contracts: the
// evaluation only has to stay pure, bounded, and cheap.
const (
	looseCardWeight = 0.010
	handSizeWeight  = 0.015
	harvestWeight   = 0.030
)

// EvaluatePosition is the default static evaluation: a weighted tally of
// loose field cards (capture opportunities), the mover's hand size (tempo),
// and the mover's harvested cards relative to the best opponent pile. It
// substitutes for random playouts, trading variance for speed.
func EvaluatePosition(s CompactState) float32 {
	player := s.CurrentPlayer()
	if player >= NumPlayers {
		return 0.5
	}

	loose := 0
	for f := 0; f < NumFields; f++ {
		loose += s.FieldCards[f].Count()
	}

	bestOther := 0
	for p := uint8(0); p < NumPlayers; p++ {
		if p == player {
			continue
		}
		if n := s.PlayerHarvests[p].Count(); n > bestOther {
			bestOther = n
		}
	}
	harvestEdge := s.PlayerHarvests[player].Count() - bestOther

	score := 0.5 +
		looseCardWeight*float32(loose) +
		handSizeWeight*float32(s.PlayerHands[player].Count()) +
		harvestWeight*float32(harvestEdge)

	return clamp01(score)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
