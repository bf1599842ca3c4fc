package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatePositionBounds(t *testing.T) {
	states := []CompactState{
		stateWithMover(0),
		func() CompactState {
			s := stateWithMover(1)
			s.PlayerHands[1] = ^Bitset(0) >> 32
			s.FieldCards[0] = Bitset(0xFF) << 32
			return s
		}(),
		func() CompactState {
			// Opponent far ahead on harvests.
			s := stateWithMover(0)
			s.PlayerHarvests[2] = ^Bitset(0)
			return s
		}(),
	}
	for i, s := range states {
		v := EvaluatePosition(s)
		require.GreaterOrEqual(t, v, float32(0), "state %d", i)
		require.LessOrEqual(t, v, float32(1), "state %d", i)
	}
}

func TestEvaluatePositionIsPure(t *testing.T) {
	s := stateWithMover(2)
	bit1, _ := BitOf(1)
	s.PlayerHands[2] = bit1
	s.PlayerHarvests[2] = bit1 << 1

	before := s
	first := EvaluatePosition(s)
	second := EvaluatePosition(s)

	require.Equal(t, first, second, "evaluation is deterministic")
	require.Equal(t, before, s, "evaluation must not mutate the state")
}

func TestEvaluatePositionPrefersHarvestLead(t *testing.T) {
	behind := stateWithMover(0)
	behind.PlayerHarvests[1] = Bitset(0xFF)

	ahead := stateWithMover(0)
	ahead.PlayerHarvests[0] = Bitset(0xFF)

	require.Greater(t, EvaluatePosition(ahead), EvaluatePosition(behind),
		"a harvest lead for the mover must score higher")
}
