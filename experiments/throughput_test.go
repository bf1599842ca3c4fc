package experiments

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"illimat/game"
)

func TestSampleOpening(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	s := SampleOpening(rng)

	require.True(t, s.CheckExclusivity())

	for p := 0; p < game.NumPlayers; p++ {
		require.Equal(t, 4, s.PlayerHands[p].Count()+overflowInHand(s, uint8(p)),
			"player %d is dealt four cards", p)
		require.True(t, s.PlayerHarvests[p].Empty())
	}
	for f := 0; f < game.NumFields; f++ {
		n := s.FieldCards[f].Count() + overflowInField(s, uint8(f))
		require.Equal(t, 3, n, "field %d is dealt three cards", f)
	}

	deck := s.DeckRemaining.Count()
	if s.OverflowLocations&game.OverflowDeckBit != 0 {
		deck++
	}
	require.Equal(t, game.NumCards-4*game.NumPlayers-3*game.NumFields, deck,
		"undealt cards stay in the deck set")
	require.NotEmpty(t, game.GenerateMoves(s), "a dealt opening always has candidate moves")
}

func overflowInHand(s game.CompactState, p uint8) int {
	bit, ok := game.OverflowHandBit(p)
	if ok && s.OverflowLocations&bit != 0 {
		return 1
	}
	return 0
}

func overflowInField(s game.CompactState, f uint8) int {
	bit, ok := game.OverflowFieldBit(f)
	if ok && s.OverflowLocations&bit != 0 {
		return 1
	}
	return 0
}

func TestSampleOpeningVariesWithSeed(t *testing.T) {
	a := SampleOpening(rand.New(rand.NewSource(1)))
	b := SampleOpening(rand.New(rand.NewSource(2)))
	require.NotEqual(t, a, b, "different seeds deal different openings")
}
